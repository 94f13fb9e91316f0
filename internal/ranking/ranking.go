// Package ranking はリーダーボードとセット別スコア集計を提供する。
// 集計本体は副作用のない純関数で、ストアの結合は薄いService層が担う。
package ranking

import (
	"sort"

	"github.com/hitoshi/boulderlog/internal/model"
	"github.com/hitoshi/boulderlog/internal/scoring"
)

// Entry はリーダーボードの1行を表す。
type Entry struct {
	User       model.User
	TotalScore int
	Rank       int
}

// SetScore はユーザーの1セット分のスコア合計を表す。
type SetScore struct {
	Set   model.BoulderSet
	Score int
}

// BuildLeaderboard は全ユーザーの合計スコアを計算し、降順に並べて
// 1始まりの順位を付与する。同点のユーザーも連続した別順位を受け取る
// （例: 合計[500,500,300] → 順位[1,2,3]）。同点圧縮をしないのは
// 採用したポリシーであり、安定ソートにより同点間の順序は入力順を保つ。
func BuildLeaderboard(users []model.User, climbs []model.ClimbLog) []Entry {
	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, Entry{
			User:       u,
			TotalScore: scoring.CalculateTotalUserScore(u.ID, climbs),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// BuildScoreBySet は指定ユーザーのスコアをボルダーの所属セットごとに集計する。
// ボルダーが既に存在しない記録はこの集計から静かに除外する
// （合計スコアには含まれ続ける。除外はセット別内訳のみ）。
// 結果はsetsの正準順に並び、解決できないセットは末尾に回る。
func BuildScoreBySet(userID string, climbs []model.ClimbLog, boulders []model.Boulder, sets []model.BoulderSet) []SetScore {
	boulderSet := make(map[string]string, len(boulders))
	for _, b := range boulders {
		boulderSet[b.ID] = b.SetID
	}

	scores := make(map[string]int)
	var order []string
	for _, climb := range climbs {
		if climb.UserID != userID {
			continue
		}
		setID, ok := boulderSet[climb.BoulderID]
		if !ok {
			continue
		}
		if _, seen := scores[setID]; !seen {
			order = append(order, setID)
		}
		scores[setID] += climb.Score
	}

	setIndex := make(map[string]int, len(sets))
	for i, set := range sets {
		setIndex[set.ID] = i
	}

	var result []SetScore
	for _, setID := range order {
		i, ok := setIndex[setID]
		if !ok {
			continue
		}
		result = append(result, SetScore{Set: sets[i], Score: scores[setID]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		ii, iok := setIndex[result[i].Set.ID]
		ji, jok := setIndex[result[j].Set.ID]
		if !iok {
			return false
		}
		if !jok {
			return true
		}
		return ii < ji
	})
	return result
}
