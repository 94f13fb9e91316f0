package ranking

import (
	"context"

	"github.com/hitoshi/boulderlog/internal/model"
	"github.com/hitoshi/boulderlog/internal/scoring"
)

// UserLister はユーザー一覧取得のインターフェース。
type UserLister interface {
	ListUsers(ctx context.Context) []model.User
}

// ClimbLister は完登記録一覧取得のインターフェース。
type ClimbLister interface {
	ListClimbs(ctx context.Context) []model.ClimbLog
}

// CatalogLister はカタログ一覧取得のインターフェース。
type CatalogLister interface {
	ListSets(ctx context.Context) []model.BoulderSet
	ListBoulders(ctx context.Context) []model.Boulder
}

// Service は各ストアを結合して集計ビューを導出する薄いサービス層。
// キャッシュは持たず、呼び出しのたびにストアから読み直す。
type Service struct {
	users   UserLister
	climbs  ClimbLister
	catalog CatalogLister
}

// NewService はServiceを生成する。
func NewService(users UserLister, climbs ClimbLister, catalog CatalogLister) *Service {
	return &Service{users: users, climbs: climbs, catalog: catalog}
}

// Leaderboard は現在の全ユーザーのリーダーボードを返す。
func (s *Service) Leaderboard(ctx context.Context) []Entry {
	return BuildLeaderboard(s.users.ListUsers(ctx), s.climbs.ListClimbs(ctx))
}

// ScoreBySet は指定ユーザーのセット別スコア内訳を返す。
func (s *Service) ScoreBySet(ctx context.Context, userID string) []SetScore {
	return BuildScoreBySet(
		userID,
		s.climbs.ListClimbs(ctx),
		s.catalog.ListBoulders(ctx),
		s.catalog.ListSets(ctx),
	)
}

// TotalScore は指定ユーザーの合計スコアを返す。
func (s *Service) TotalScore(ctx context.Context, userID string) int {
	return scoring.CalculateTotalUserScore(userID, s.climbs.ListClimbs(ctx))
}
