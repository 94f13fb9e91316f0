package kvstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TestFileStore_GetWithoutFile はファイル未作成時に(nil, nil)を返すことを検証する。
func TestFileStore_GetWithoutFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	v, err := s.Get(context.Background(), "users")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if v != nil {
		t.Errorf("Get = %s, want nil", v)
	}
}

// TestFileStore_SetAndGet は保存した値がファイル経由で取得できることを検証する。
func TestFileStore_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Set(ctx, "boulders", json.RawMessage(`[{"id":"b1"}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	// 別インスタンスから読めること（キャッシュを持たない）
	s2 := NewFileStore(path)
	v, err := s2.Get(ctx, "boulders")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(v) != `[{"id":"b1"}]` {
		t.Errorf("Get(boulders) = %s, want [{\"id\":\"b1\"}]", v)
	}
}

// TestFileStore_MultipleKeys は複数キーが1つのファイルに共存することを検証する。
func TestFileStore_MultipleKeys(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	ctx := context.Background()

	if err := s.Set(ctx, "users", json.RawMessage(`[]`)); err != nil {
		t.Fatalf("Set(users) returned error: %v", err)
	}
	if err := s.Set(ctx, "climbs", json.RawMessage(`[{"id":"c1"}]`)); err != nil {
		t.Fatalf("Set(climbs) returned error: %v", err)
	}

	u, _ := s.Get(ctx, "users")
	if string(u) != `[]` {
		t.Errorf("Get(users) = %s, want []", u)
	}
	c, _ := s.Get(ctx, "climbs")
	if string(c) != `[{"id":"c1"}]` {
		t.Errorf("Get(climbs) = %s, want [{\"id\":\"c1\"}]", c)
	}
}

// TestFileStore_SetNilDeletes はnil値の保存がキー削除になることを検証する。
func TestFileStore_SetNilDeletes(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	ctx := context.Background()

	if err := s.Set(ctx, "loggedInUserId", json.RawMessage(`"u1"`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Set(ctx, "loggedInUserId", nil); err != nil {
		t.Fatalf("Set(nil) returned error: %v", err)
	}

	v, err := s.Get(ctx, "loggedInUserId")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if v != nil {
		t.Errorf("Get after delete = %s, want nil", v)
	}
}

// TestFileStore_CorruptFile は破損したファイルの読み取りがエラーになることを検証する。
func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s := NewFileStore(path)
	if _, err := s.Get(context.Background(), "users"); err == nil {
		t.Error("expected error for corrupt store file, got nil")
	}
}
