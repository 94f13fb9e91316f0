package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/boulderlog/internal/catalog"
	"github.com/hitoshi/boulderlog/internal/climblog"
	"github.com/hitoshi/boulderlog/internal/identity"
	"github.com/hitoshi/boulderlog/internal/kvstore"
	"github.com/hitoshi/boulderlog/internal/model"
	"github.com/hitoshi/boulderlog/internal/scoring"
)

// Deps はInitializeが必要とする依存の束。
// Nowはテストで時刻を固定するための差し替え点で、nilならtime.Nowを使う。
type Deps struct {
	KV       *kvstore.Adapter
	Identity *identity.Service
	Catalog  *catalog.Service
	Climbs   *climblog.Service
	Now      func() time.Time
}

// Initialize はホストアプリケーションが起動時に1回呼ぶ明示的な
// 初期化エントリポイントであり、投入済みの基準状態を保証する。
// 暗黙のトップレベル副作用は持たない。
//
// 処理内容（すべて冪等）:
//  1. usersキーが未永続化なら空コレクションを保存する
//  2. セットとボルダーが未永続化なら基準カタログを投入する
//  3. 2つの固定アカウントを正準値に揃える
//  4. 両固定アカウントのダミー完登記録を一度だけ生成する
func Initialize(ctx context.Context, deps Deps) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	var users []model.User
	if !deps.KV.Load(ctx, kvstore.KeyUsers, &users) {
		deps.KV.Save(ctx, kvstore.KeyUsers, []model.User{})
	}

	var sets []model.BoulderSet
	if !deps.KV.Load(ctx, kvstore.KeyBoulderSets, &sets) {
		deps.KV.Save(ctx, kvstore.KeyBoulderSets, Sets())
		slog.Info("seeded boulder sets", slog.Int("count", len(Sets())))
	}

	var boulders []model.Boulder
	if !deps.KV.Load(ctx, kvstore.KeyBoulders, &boulders) {
		deps.KV.Save(ctx, kvstore.KeyBoulders, Boulders())
		slog.Info("seeded boulders", slog.Int("count", len(Boulders())))
	}

	admin := AdminUser(now())
	second := SecondDummyUser()
	deps.Identity.ReconcileAccount(ctx, admin)
	deps.Identity.ReconcileAccount(ctx, second)

	populateDummyClimbs(ctx, deps, now, admin, kvstore.KeyAdminDummyClimbsInitialized)
	populateDummyClimbs(ctx, deps, now, second, kvstore.KeySecondDummyClimbsInitialized)
}

// populateDummyClimbs は固定アカウントのダミー完登記録を一度だけ生成する。
// 生成対象は非アクティブなセットのボルダーのみで、各セット最大2件。
// トライ数は1,2,3を循環し、完登日は過去へずらして分散させる。
// 実行済みフラグ、または既存の記録がある場合は生成しない。
func populateDummyClimbs(ctx context.Context, deps Deps, now func() time.Time, user model.User, flagKey string) {
	var initialized bool
	if deps.KV.Load(ctx, flagKey, &initialized) && initialized {
		return
	}

	for _, climb := range deps.Climbs.ListClimbs(ctx) {
		if climb.UserID == user.ID {
			deps.KV.Save(ctx, flagKey, true)
			return
		}
	}

	added := 0
	setIndex := 0
	for _, set := range deps.Catalog.ListSets(ctx) {
		if set.IsActive {
			continue
		}
		bouldersInSet := deps.Catalog.ListBouldersBySet(ctx, set.ID)
		for i := 0; i < len(bouldersInSet) && i < 2; i++ {
			boulder := bouldersInSet[i]
			tries := (i % 3) + 1
			dateCompleted := now().AddDate(0, 0, -(setIndex*7 + i*2 + 5))

			deps.Climbs.AddClimb(ctx, model.ClimbLog{
				ID:            uuid.New().String(),
				UserID:        user.ID,
				BoulderID:     boulder.ID,
				BoulderName:   boulder.Name,
				BoulderGrade:  boulder.Grade,
				Tries:         tries,
				Score:         scoring.CalculateClimbScore(boulder.BasePoints, tries),
				DateCompleted: dateCompleted,
			})
			added++
		}
		setIndex++
	}

	if added > 0 {
		slog.Info("seeded dummy climbs",
			slog.String("user_id", user.ID),
			slog.Int("count", added),
		)
	}
	deps.KV.Save(ctx, flagKey, true)
}
