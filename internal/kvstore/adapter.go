package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hitoshi/boulderlog/internal/metrics"
)

// Adapter は媒体障害を握りつぶすベストエフォートのキーバリューアダプタ。
// 容量超過や破損JSONなどの永続化失敗はログとメトリクスに記録した上で
// 呼び出し側にはデフォルト値で応答し、決してクラッシュとして伝播しない。
// ローカルの非クリティカルなストアに適したポリシーであり、サーバ移植時には
// ハードエラー＋リトライへ引き上げること。
type Adapter struct {
	store Store
	rec   metrics.Recorder
}

// NewAdapter はAdapterを生成する。recがnilの場合は何も記録しない。
func NewAdapter(store Store, rec metrics.Recorder) *Adapter {
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &Adapter{store: store, rec: rec}
}

// Load は指定キーのJSON値をdestにデコードする。
// キーが存在しない・媒体障害・破損JSONのいずれの場合もfalseを返し、
// destは変更しない。障害はログとメトリクスに記録する。
func (a *Adapter) Load(ctx context.Context, key string, dest any) bool {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		slog.Error("kv read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		a.rec.RecordStoreReadError(key)
		return false
	}
	if raw == nil || string(raw) == "null" {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		slog.Error("kv value corrupted",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		a.rec.RecordStoreReadError(key)
		return false
	}
	return true
}

// Save は値をJSONにエンコードして指定キーに保存する。
// 失敗はログとメトリクスに記録するのみで、呼び出し側には伝播しない。
func (a *Adapter) Save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Error("kv value not serializable",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		a.rec.RecordStoreWriteError(key)
		return
	}
	if err := a.store.Set(ctx, key, raw); err != nil {
		slog.Error("kv write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		a.rec.RecordStoreWriteError(key)
	}
}

// Clear は指定キーを削除する。失敗はログとメトリクスに記録するのみ。
func (a *Adapter) Clear(ctx context.Context, key string) {
	if err := a.store.Set(ctx, key, nil); err != nil {
		slog.Error("kv delete failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		a.rec.RecordStoreWriteError(key)
	}
}
