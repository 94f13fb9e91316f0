package ranking

import (
	"context"
	"testing"

	"github.com/hitoshi/boulderlog/internal/model"
)

// TestBuildLeaderboard_DescOrderWithConsecutiveRanks はリーダーボードが
// 合計スコアの降順に並び、同点でも連続した順位が付くことを検証する。
func TestBuildLeaderboard_DescOrderWithConsecutiveRanks(t *testing.T) {
	users := []model.User{
		{ID: "u1", UserID: "alice"},
		{ID: "u2", UserID: "bob"},
		{ID: "u3", UserID: "carol"},
		{ID: "u4", UserID: "dave"},
	}
	climbs := []model.ClimbLog{
		{UserID: "u1", Score: 300},
		{UserID: "u2", Score: 500},
		{UserID: "u3", Score: 200},
		{UserID: "u3", Score: 300},
		{UserID: "u4", Score: 100},
	}

	got := BuildLeaderboard(users, climbs)
	if len(got) != 4 {
		t.Fatalf("entry count = %d, want 4", len(got))
	}

	wantScores := []int{500, 500, 300, 100}
	for i, want := range wantScores {
		if got[i].TotalScore != want {
			t.Errorf("entry[%d].TotalScore = %d, want %d", i, got[i].TotalScore, want)
		}
		if got[i].Rank != i+1 {
			t.Errorf("entry[%d].Rank = %d, want %d", i, got[i].Rank, i+1)
		}
	}

	// 同点間は安定ソートにより入力順（u2がu3より先）を保つ
	if got[0].User.ID != "u2" || got[1].User.ID != "u3" {
		t.Errorf("tie order = [%s, %s], want [u2, u3]", got[0].User.ID, got[1].User.ID)
	}
}

// TestBuildLeaderboard_UsersWithoutClimbs は記録のないユーザーも
// 合計0で掲載されることを検証する。
func TestBuildLeaderboard_UsersWithoutClimbs(t *testing.T) {
	users := []model.User{{ID: "u1", UserID: "alice"}}

	got := BuildLeaderboard(users, nil)
	if len(got) != 1 || got[0].TotalScore != 0 || got[0].Rank != 1 {
		t.Errorf("BuildLeaderboard = %+v", got)
	}
}

// TestBuildLeaderboard_Empty はユーザー不在時に空の結果を返すことを検証する。
func TestBuildLeaderboard_Empty(t *testing.T) {
	if got := BuildLeaderboard(nil, nil); len(got) != 0 {
		t.Errorf("BuildLeaderboard = %+v, want empty", got)
	}
}

// TestBuildScoreBySet_CanonicalOrder はセット別内訳がセット一覧の
// 正準順に並ぶことを検証する。記録の出現順には依存しない。
func TestBuildScoreBySet_CanonicalOrder(t *testing.T) {
	sets := []model.BoulderSet{
		{ID: "s1", Name: "Week 1"},
		{ID: "s2", Name: "Week 2"},
		{ID: "s3", Name: "Week 3"},
	}
	boulders := []model.Boulder{
		{ID: "b1", SetID: "s1"},
		{ID: "b2", SetID: "s2"},
		{ID: "b3", SetID: "s3"},
	}
	// s3の記録が先に出現する
	climbs := []model.ClimbLog{
		{UserID: "u1", BoulderID: "b3", Score: 150},
		{UserID: "u1", BoulderID: "b1", Score: 300},
		{UserID: "u1", BoulderID: "b3", Score: 100},
		{UserID: "u2", BoulderID: "b2", Score: 999},
	}

	got := BuildScoreBySet("u1", climbs, boulders, sets)
	if len(got) != 2 {
		t.Fatalf("result count = %d, want 2", len(got))
	}
	if got[0].Set.ID != "s1" || got[0].Score != 300 {
		t.Errorf("result[0] = %+v, want s1/300", got[0])
	}
	if got[1].Set.ID != "s3" || got[1].Score != 250 {
		t.Errorf("result[1] = %+v, want s3/250", got[1])
	}
}

// TestBuildScoreBySet_SkipsDeletedBoulders は削除済みボルダーの記録が
// セット別内訳から除外されることを検証する。
func TestBuildScoreBySet_SkipsDeletedBoulders(t *testing.T) {
	sets := []model.BoulderSet{{ID: "s1", Name: "Week 1"}}
	boulders := []model.Boulder{{ID: "b1", SetID: "s1"}}
	climbs := []model.ClimbLog{
		{UserID: "u1", BoulderID: "b1", Score: 200},
		{UserID: "u1", BoulderID: "b-deleted", Score: 500},
	}

	got := BuildScoreBySet("u1", climbs, boulders, sets)
	if len(got) != 1 {
		t.Fatalf("result count = %d, want 1", len(got))
	}
	if got[0].Score != 200 {
		t.Errorf("score = %d, want 200 (deleted boulder excluded)", got[0].Score)
	}
}

// TestBuildScoreBySet_NoClimbs は記録のないユーザーに空の内訳を返す
// ことを検証する。
func TestBuildScoreBySet_NoClimbs(t *testing.T) {
	sets := []model.BoulderSet{{ID: "s1"}}
	if got := BuildScoreBySet("u1", nil, nil, sets); len(got) != 0 {
		t.Errorf("BuildScoreBySet = %+v, want empty", got)
	}
}

// --- Service ---

type stubUsers struct{ users []model.User }

func (s stubUsers) ListUsers(ctx context.Context) []model.User { return s.users }

type stubClimbs struct{ climbs []model.ClimbLog }

func (s stubClimbs) ListClimbs(ctx context.Context) []model.ClimbLog { return s.climbs }

type stubCatalog struct {
	sets     []model.BoulderSet
	boulders []model.Boulder
}

func (s stubCatalog) ListSets(ctx context.Context) []model.BoulderSet { return s.sets }
func (s stubCatalog) ListBoulders(ctx context.Context) []model.Boulder {
	return s.boulders
}

// TestService_DelegatesToBuilders はServiceが各ストアの現在値で集計する
// ことを検証する。
func TestService_DelegatesToBuilders(t *testing.T) {
	s := NewService(
		stubUsers{users: []model.User{{ID: "u1"}, {ID: "u2"}}},
		stubClimbs{climbs: []model.ClimbLog{
			{UserID: "u1", BoulderID: "b1", Score: 440},
			{UserID: "u2", BoulderID: "b1", Score: 150},
		}},
		stubCatalog{
			sets:     []model.BoulderSet{{ID: "s1"}},
			boulders: []model.Boulder{{ID: "b1", SetID: "s1"}},
		},
	)
	ctx := context.Background()

	board := s.Leaderboard(ctx)
	if len(board) != 2 || board[0].User.ID != "u1" || board[0].TotalScore != 440 {
		t.Errorf("Leaderboard = %+v", board)
	}

	if got := s.TotalScore(ctx, "u2"); got != 150 {
		t.Errorf("TotalScore(u2) = %d, want 150", got)
	}

	bySet := s.ScoreBySet(ctx, "u1")
	if len(bySet) != 1 || bySet[0].Set.ID != "s1" || bySet[0].Score != 440 {
		t.Errorf("ScoreBySet = %+v", bySet)
	}
}
