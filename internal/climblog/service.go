// Package climblog は完登記録の保存とスコア登録フローを提供する。
//
// 記録は追記専用コレクションとして保持し、更新・削除は行わない。
// 「同一ユーザー・同一ボルダーでスコアが付く記録は最大1件」という制約は
// SubmitClimbの送信前チェックで守る呼び出し側契約であり、AddClimb自体は
// 重複排除を行わない。
package climblog

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hitoshi/boulderlog/internal/kvstore"
	"github.com/hitoshi/boulderlog/internal/metrics"
	"github.com/hitoshi/boulderlog/internal/model"
	"github.com/hitoshi/boulderlog/internal/scoring"
)

// CatalogReader はスコア登録フローが必要とするカタログ参照のインターフェース。
type CatalogReader interface {
	// GetActiveSet は現在アクティブなセットを返す。存在しない場合はnil。
	GetActiveSet(ctx context.Context) *model.BoulderSet
	// GetBoulderByID は指定IDのボルダーを返す。見つからない場合はnil。
	GetBoulderByID(ctx context.Context, boulderID string) *model.Boulder
}

// Service は完登記録のサービス層。
type Service struct {
	kv      *kvstore.Adapter
	catalog CatalogReader
	rec     metrics.Recorder
	now     func() time.Time

	// ユーザーごとの送信ペーサー。二重送信の抑止用で、
	// 元システムのUIが持っていた送信間の固定待ち時間に相当する。
	pacerMu  sync.Mutex
	pacers   map[string]*rate.Limiter
	minEvery time.Duration
}

// NewService はServiceを生成する。
// minSubmitIntervalはユーザーごとのスコア登録の最短間隔。0以下で無効化する。
// recがnilの場合は何も記録しない。
func NewService(kv *kvstore.Adapter, catalog CatalogReader, rec metrics.Recorder, minSubmitInterval time.Duration) *Service {
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &Service{
		kv:       kv,
		catalog:  catalog,
		rec:      rec,
		now:      time.Now,
		pacers:   make(map[string]*rate.Limiter),
		minEvery: minSubmitInterval,
	}
}

// ListClimbs は全完登記録を返す。保存順は保証しない。
// 表示順が必要な場合は呼び出し側でソートすること。
func (s *Service) ListClimbs(ctx context.Context) []model.ClimbLog {
	var climbs []model.ClimbLog
	s.kv.Load(ctx, kvstore.KeyClimbs, &climbs)
	return climbs
}

// ListByUser は指定ユーザーの完登記録を完登日時の降順で返す。
func (s *Service) ListByUser(ctx context.Context, userID string) []model.ClimbLog {
	var result []model.ClimbLog
	for _, climb := range s.ListClimbs(ctx) {
		if climb.UserID == userID {
			result = append(result, climb)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DateCompleted.After(result[j].DateCompleted)
	})
	return result
}

// AddClimb は記録をそのまま追記する。
// 一意性や外部キーの検証は行わない。「未完登であること」「ボルダーが
// アクティブセットに属すること」の確認は呼び出し側の契約。
func (s *Service) AddClimb(ctx context.Context, climb model.ClimbLog) {
	climbs := s.ListClimbs(ctx)
	climbs = append(climbs, climb)
	s.kv.Save(ctx, kvstore.KeyClimbs, climbs)
}

// CompletedBoulderIDs は指定ユーザーがスコア付きで完登済みの
// ボルダーID集合を返す。再登録の無効化判定に使用する。
func (s *Service) CompletedBoulderIDs(ctx context.Context, userID string) map[string]struct{} {
	completed := make(map[string]struct{})
	for _, climb := range s.ListClimbs(ctx) {
		if climb.UserID == userID && climb.Score > 0 {
			completed[climb.BoulderID] = struct{}{}
		}
	}
	return completed
}

// SubmitClimb はスコア登録フローを実行する。
// 検証順序: トライ数 → ペーサー → ボルダー存在 → アクティブセット所属 →
// 未完登。すべて通過した場合のみスコアを計算し、ボルダーの名前とグレードを
// スナップショットとして非正規化した記録を追記する。
// ボルダーの完登状態はユーザーごとに未完登→完登の一方向にのみ遷移する。
func (s *Service) SubmitClimb(ctx context.Context, userID, boulderID string, tries int) (*model.ClimbLog, error) {
	if tries < 1 {
		return nil, model.NewInvalidTriesError(tries)
	}
	if !s.allowSubmit(userID) {
		return nil, model.NewSubmitTooFastError()
	}

	boulder := s.catalog.GetBoulderByID(ctx, boulderID)
	if boulder == nil {
		return nil, model.NewBoulderNotFoundError(boulderID)
	}

	activeSet := s.catalog.GetActiveSet(ctx)
	if activeSet == nil {
		return nil, model.NewNoActiveSetError()
	}
	if boulder.SetID != activeSet.ID {
		return nil, model.NewBoulderNotInActiveSetError(boulder.Name)
	}

	if _, done := s.CompletedBoulderIDs(ctx, userID)[boulderID]; done {
		return nil, model.NewAlreadyCompletedError(boulder.Name)
	}

	climb := model.ClimbLog{
		ID:            uuid.New().String(),
		UserID:        userID,
		BoulderID:     boulder.ID,
		BoulderName:   boulder.Name,
		BoulderGrade:  boulder.Grade,
		Tries:         tries,
		Score:         scoring.CalculateClimbScore(boulder.BasePoints, tries),
		DateCompleted: s.now(),
	}
	s.AddClimb(ctx, climb)
	s.rec.RecordClimbLogged(climb.Score)

	slog.Info("climb logged",
		slog.String("user_id", userID),
		slog.String("boulder_id", boulder.ID),
		slog.Int("tries", tries),
		slog.Int("score", climb.Score),
	)
	return &climb, nil
}

// allowSubmit はユーザーごとの送信ペーサーを確認する。
// 最短間隔が無効（0以下）の場合は常に許可する。
func (s *Service) allowSubmit(userID string) bool {
	if s.minEvery <= 0 {
		return true
	}

	s.pacerMu.Lock()
	limiter, ok := s.pacers[userID]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(s.minEvery), 1)
		s.pacers[userID] = limiter
	}
	s.pacerMu.Unlock()

	return limiter.Allow()
}
