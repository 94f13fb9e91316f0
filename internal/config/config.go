package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ストレージバックエンドの種別。
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Storage
	StorageBackend string // memory | file | postgres
	DataFile       string // fileバックエンドのデータファイルパス
	DatabaseURL    string // postgresバックエンドの接続URL

	// Climb submission
	SubmitMinInterval time.Duration // ユーザーごとのスコア登録の最短間隔
}

// Load は環境変数からConfigを読み込む。
// .envファイルが存在すればベストエフォートで先に読み込む。
// postgresバックエンド指定時にDATABASE_URLが未設定の場合はエラーを返す。
func Load() (*Config, error) {
	// .envが無くてもエラーにしない
	_ = godotenv.Load(".env")

	cfg := &Config{}

	cfg.StorageBackend = getEnvString("STORAGE_BACKEND", BackendFile)
	switch cfg.StorageBackend {
	case BackendMemory, BackendFile, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND: %q", cfg.StorageBackend)
	}

	cfg.DataFile = getEnvString("DATA_FILE", "boulderlog.json")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.StorageBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("required environment variables are not set: [DATABASE_URL]")
	}

	cfg.SubmitMinInterval = getEnvDuration("SUBMIT_MIN_INTERVAL", 500*time.Millisecond)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
