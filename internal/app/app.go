// Package app はアプリケーションの起動とワイヤリングを提供する。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/boulderlog/internal/catalog"
	"github.com/hitoshi/boulderlog/internal/climblog"
	"github.com/hitoshi/boulderlog/internal/config"
	"github.com/hitoshi/boulderlog/internal/identity"
	"github.com/hitoshi/boulderlog/internal/kvstore"
	"github.com/hitoshi/boulderlog/internal/logger"
	"github.com/hitoshi/boulderlog/internal/metrics"
	"github.com/hitoshi/boulderlog/internal/ranking"
	"github.com/hitoshi/boulderlog/internal/security"
	"github.com/hitoshi/boulderlog/internal/seed"
)

// Init はアプリケーションの初期化を行う。
// JSON構造化ログをセットアップし、環境変数からConfigを読み込む。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで実行する。
// argsにはos.Args[1:]を渡す。出力（ログとリーダーボード表示）はwに書く。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("storage_backend", cfg.StorageBackend),
	)

	switch cmd {
	case CommandLeaderboard:
		return runLeaderboard(w, cfg)
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runInit(cfg)
	}
}

// services はワイヤリング済みの全サービスを束ねる。
type services struct {
	identity *identity.Service
	catalog  *catalog.Service
	climbs   *climblog.Service
	ranking  *ranking.Service
	kv       *kvstore.Adapter
	cleanup  func()
}

// buildServices は設定に応じたストレージバックエンドを開き、
// 全依存関係をワイヤリングする。
func buildServices(cfg *config.Config) (*services, error) {
	var store kvstore.Store
	cleanup := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = kvstore.NewMemoryStore()
	case config.BackendFile:
		store = kvstore.NewFileStore(cfg.DataFile)
	case config.BackendPostgres:
		db, err := kvstore.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store = kvstore.NewPostgresStore(db)
		cleanup = func() { db.Close() }
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.StorageBackend)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	kv := kvstore.NewAdapter(store, collector)
	sanitizer := security.NewTextSanitizer()

	catalogSvc := catalog.NewService(kv, sanitizer, collector)
	climbSvc := climblog.NewService(kv, catalogSvc, collector, cfg.SubmitMinInterval)
	identitySvc := identity.NewService(kv, collector)
	rankingSvc := ranking.NewService(identitySvc, climbSvc, catalogSvc)

	return &services{
		identity: identitySvc,
		catalog:  catalogSvc,
		climbs:   climbSvc,
		ranking:  rankingSvc,
		kv:       kv,
		cleanup:  cleanup,
	}, nil
}

// runInit はストレージを開いて基準データの初期化を実行する。
func runInit(cfg *config.Config) error {
	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer svcs.cleanup()

	ctx := context.Background()
	seed.Initialize(ctx, seed.Deps{
		KV:       svcs.kv,
		Identity: svcs.identity,
		Catalog:  svcs.catalog,
		Climbs:   svcs.climbs,
	})

	slog.Info("baseline data initialized",
		slog.Int("sets", len(svcs.catalog.ListSets(ctx))),
		slog.Int("boulders", len(svcs.catalog.ListBoulders(ctx))),
		slog.Int("users", len(svcs.identity.ListUsers(ctx))),
	)
	return nil
}

// runLeaderboard は現在のリーダーボードを導出してwに表示する。
func runLeaderboard(w io.Writer, cfg *config.Config) error {
	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer svcs.cleanup()

	entries := svcs.ranking.Leaderboard(context.Background())
	for _, e := range entries {
		fmt.Fprintf(w, "%3d  %-20s  %6d pts\n", e.Rank, e.User.UserID, e.TotalScore)
	}
	return nil
}

// runMigrate はPostgreSQLバックエンドのマイグレーションを適用する。
func runMigrate(cfg *config.Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for migrate")
	}

	slog.Info("running migrations")
	if err := kvstore.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	slog.Info("migrations completed")
	return nil
}
