package climblog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hitoshi/boulderlog/internal/kvstore"
	"github.com/hitoshi/boulderlog/internal/model"
)

// --- モック ---

type mockCatalog struct {
	activeSet *model.BoulderSet
	boulders  map[string]*model.Boulder
}

func (m *mockCatalog) GetActiveSet(ctx context.Context) *model.BoulderSet {
	return m.activeSet
}

func (m *mockCatalog) GetBoulderByID(ctx context.Context, boulderID string) *model.Boulder {
	return m.boulders[boulderID]
}

func newFixtureCatalog() *mockCatalog {
	return &mockCatalog{
		activeSet: &model.BoulderSet{ID: "set-active", Name: "Active Set", IsActive: true},
		boulders: map[string]*model.Boulder{
			"b-active": {
				ID: "b-active", SetID: "set-active", Name: "Roof Crack",
				Grade: model.GradeV3, BasePoints: 400,
			},
			"b-old": {
				ID: "b-old", SetID: "set-old", Name: "Faded Slab",
				Grade: model.GradeV1, BasePoints: 200,
			},
		},
	}
}

func newTestService(t *testing.T, catalog CatalogReader, minInterval time.Duration) *Service {
	t.Helper()
	kv := kvstore.NewAdapter(kvstore.NewMemoryStore(), nil)
	return NewService(kv, catalog, nil, minInterval)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var appErr *model.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want *model.AppError", err)
	}
	if appErr.Code != code {
		t.Errorf("error code = %s, want %s", appErr.Code, code)
	}
}

// --- テスト ---

// TestSubmitClimb_Succeeds は正常なスコア登録を検証する。
// トライ数1はボーナス倍率1.5が適用される。
func TestSubmitClimb_Succeeds(t *testing.T) {
	s := newTestService(t, newFixtureCatalog(), 0)
	fixed := time.Date(2026, 7, 25, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	climb, err := s.SubmitClimb(context.Background(), "u1", "b-active", 1)
	if err != nil {
		t.Fatalf("SubmitClimb returned error: %v", err)
	}

	if climb.Score != 600 {
		t.Errorf("Score = %d, want 600", climb.Score)
	}
	if climb.BoulderName != "Roof Crack" || climb.BoulderGrade != model.GradeV3 {
		t.Errorf("snapshot = %s/%s, want Roof Crack/V3", climb.BoulderName, climb.BoulderGrade)
	}
	if !climb.DateCompleted.Equal(fixed) {
		t.Errorf("DateCompleted = %v, want %v", climb.DateCompleted, fixed)
	}
	if climb.ID == "" {
		t.Error("expected generated ID")
	}

	logged := s.ListByUser(context.Background(), "u1")
	if len(logged) != 1 || logged[0].ID != climb.ID {
		t.Errorf("ListByUser = %+v", logged)
	}
}

// TestSubmitClimb_InvalidTries はトライ数0以下が拒否されることを検証する。
func TestSubmitClimb_InvalidTries(t *testing.T) {
	s := newTestService(t, newFixtureCatalog(), 0)

	for _, tries := range []int{0, -1} {
		_, err := s.SubmitClimb(context.Background(), "u1", "b-active", tries)
		assertAppErrorCode(t, err, model.ErrCodeInvalidTries)
	}
	if len(s.ListClimbs(context.Background())) != 0 {
		t.Error("rejected submissions must not be persisted")
	}
}

// TestSubmitClimb_BoulderNotFound は存在しないボルダーの登録が拒否される
// ことを検証する。
func TestSubmitClimb_BoulderNotFound(t *testing.T) {
	s := newTestService(t, newFixtureCatalog(), 0)

	_, err := s.SubmitClimb(context.Background(), "u1", "missing", 1)
	assertAppErrorCode(t, err, model.ErrCodeBoulderNotFound)
}

// TestSubmitClimb_NoActiveSet はアクティブセット不在時の拒否を検証する。
func TestSubmitClimb_NoActiveSet(t *testing.T) {
	catalog := newFixtureCatalog()
	catalog.activeSet = nil
	s := newTestService(t, catalog, 0)

	_, err := s.SubmitClimb(context.Background(), "u1", "b-active", 1)
	assertAppErrorCode(t, err, model.ErrCodeNoActiveSet)
}

// TestSubmitClimb_BoulderNotInActiveSet はアクティブセット外のボルダーへの
// 登録が拒否されることを検証する。
func TestSubmitClimb_BoulderNotInActiveSet(t *testing.T) {
	s := newTestService(t, newFixtureCatalog(), 0)

	_, err := s.SubmitClimb(context.Background(), "u1", "b-old", 1)
	assertAppErrorCode(t, err, model.ErrCodeBoulderNotInSet)
}

// TestSubmitClimb_AlreadyCompleted は同一ボルダーへの再登録が拒否され、
// 完登状態が維持されることを検証する。別ユーザーの登録は妨げない。
func TestSubmitClimb_AlreadyCompleted(t *testing.T) {
	s := newTestService(t, newFixtureCatalog(), 0)
	ctx := context.Background()

	if _, err := s.SubmitClimb(ctx, "u1", "b-active", 2); err != nil {
		t.Fatalf("first submit returned error: %v", err)
	}

	_, err := s.SubmitClimb(ctx, "u1", "b-active", 1)
	assertAppErrorCode(t, err, model.ErrCodeAlreadyCompleted)

	// 別ユーザーは同じボルダーに登録できる
	if _, err := s.SubmitClimb(ctx, "u2", "b-active", 1); err != nil {
		t.Errorf("submit by another user returned error: %v", err)
	}
}

// TestSubmitClimb_Pacer は最短間隔内の連続送信が拒否されることを検証する。
func TestSubmitClimb_Pacer(t *testing.T) {
	catalog := newFixtureCatalog()
	catalog.boulders["b-second"] = &model.Boulder{
		ID: "b-second", SetID: "set-active", Name: "Second", Grade: model.GradeV0, BasePoints: 100,
	}
	s := newTestService(t, catalog, time.Hour)
	ctx := context.Background()

	if _, err := s.SubmitClimb(ctx, "u1", "b-active", 1); err != nil {
		t.Fatalf("first submit returned error: %v", err)
	}

	_, err := s.SubmitClimb(ctx, "u1", "b-second", 1)
	assertAppErrorCode(t, err, model.ErrCodeSubmitTooFast)

	// ペーサーはユーザーごとに独立している
	if _, err := s.SubmitClimb(ctx, "u2", "b-second", 1); err != nil {
		t.Errorf("submit by another user returned error: %v", err)
	}
}

// TestAddClimb_AppendsWithoutValidation はAddClimbが検証なしで追記する
// ことを検証する。シードデータ投入用の生の追記口。
func TestAddClimb_AppendsWithoutValidation(t *testing.T) {
	s := newTestService(t, newFixtureCatalog(), 0)
	ctx := context.Background()

	climb := model.ClimbLog{
		ID: "c1", UserID: "u1", BoulderID: "b-old",
		BoulderName: "Faded Slab", BoulderGrade: model.GradeV1,
		Tries: 3, Score: 220,
		DateCompleted: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	s.AddClimb(ctx, climb)
	s.AddClimb(ctx, climb) // 重複もそのまま入る

	if got := len(s.ListClimbs(ctx)); got != 2 {
		t.Errorf("ListClimbs length = %d, want 2", got)
	}
}

// TestListByUser_SortedByDateDesc はユーザー別一覧が完登日時の降順で
// 返ることを検証する。
func TestListByUser_SortedByDateDesc(t *testing.T) {
	s := newTestService(t, newFixtureCatalog(), 0)
	ctx := context.Background()

	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	s.AddClimb(ctx, model.ClimbLog{ID: "c1", UserID: "u1", DateCompleted: base})
	s.AddClimb(ctx, model.ClimbLog{ID: "c2", UserID: "u1", DateCompleted: base.AddDate(0, 0, 2)})
	s.AddClimb(ctx, model.ClimbLog{ID: "c3", UserID: "u2", DateCompleted: base.AddDate(0, 0, 1)})
	s.AddClimb(ctx, model.ClimbLog{ID: "c4", UserID: "u1", DateCompleted: base.AddDate(0, 0, 1)})

	got := s.ListByUser(ctx, "u1")
	if len(got) != 3 {
		t.Fatalf("ListByUser length = %d, want 3", len(got))
	}
	wantOrder := []string{"c2", "c4", "c1"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("ListByUser[%d] = %s, want %s", i, got[i].ID, want)
		}
	}
}

// TestCompletedBoulderIDs はスコアが付いた記録だけが完登集合に入る
// ことを検証する。スコア0のシード記録は完登扱いにしない。
func TestCompletedBoulderIDs(t *testing.T) {
	s := newTestService(t, newFixtureCatalog(), 0)
	ctx := context.Background()

	s.AddClimb(ctx, model.ClimbLog{ID: "c1", UserID: "u1", BoulderID: "b1", Score: 150})
	s.AddClimb(ctx, model.ClimbLog{ID: "c2", UserID: "u1", BoulderID: "b2", Score: 0})
	s.AddClimb(ctx, model.ClimbLog{ID: "c3", UserID: "u2", BoulderID: "b3", Score: 300})

	completed := s.CompletedBoulderIDs(ctx, "u1")
	if _, ok := completed["b1"]; !ok {
		t.Error("b1 should be completed")
	}
	if _, ok := completed["b2"]; ok {
		t.Error("zero-score climb must not mark completion")
	}
	if _, ok := completed["b3"]; ok {
		t.Error("another user's climb must not mark completion")
	}
}
