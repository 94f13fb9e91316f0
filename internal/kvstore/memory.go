package kvstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore はメモリ上にデータを保持するStore実装。
// テストおよび使い捨て実行用。
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryStore は空のMemoryStoreを生成する。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

// Get は指定キーの値を取得する。キーが存在しない場合は(nil, nil)を返す。
func (s *MemoryStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	// 呼び出し側での書き換えから保護するためコピーを返す
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out, nil
}

// Set は指定キーに値を保存する。valueがnilの場合はキーを削除する。
func (s *MemoryStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == nil {
		delete(s.data, key)
		return nil
	}
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}
