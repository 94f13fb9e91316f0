package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileStore は単一のJSONファイルにデータを保持するStore実装。
// ブラウザのlocalStorageに相当するローカル単一利用者向けの媒体であり、
// 読み取りのたびにファイルを読み直す（キャッシュを持たない）。
// 書き込みは読み取り・更新・全体書き戻しの3段階で、アトミックではない。
type FileStore struct {
	path string
}

// NewFileStore は指定パスのファイルを媒体とするFileStoreを生成する。
// ファイルは最初の書き込み時に作成される。
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get は指定キーの値を取得する。ファイルまたはキーが存在しない場合は(nil, nil)を返す。
func (s *FileStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// Set は指定キーに値を保存する。valueがnilの場合はキーを削除する。
func (s *FileStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	doc, err := s.read()
	if err != nil {
		return err
	}

	if value == nil {
		delete(doc, key)
	} else {
		doc[key] = value
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// read はファイル全体をキー→JSON値のマップとして読み込む。
// ファイルが存在しない場合は空のマップを返す。
func (s *FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	return doc, nil
}
