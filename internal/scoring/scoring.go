// Package scoring は完登記録のスコア計算を提供する。
// すべて副作用のない純関数で、永続化層には依存しない。
package scoring

import (
	"math"

	"github.com/hitoshi/boulderlog/internal/model"
)

// triesBonusMultipliers はトライ数に応じたボーナス倍率表。
// 1トライ（フラッシュ）: +50%、2トライ: +25%、3トライ: +10%。
// 表にないトライ数（4以上）は倍率1.0（ボーナスなし）。
var triesBonusMultipliers = map[int]float64{
	1: 1.50,
	2: 1.25,
	3: 1.10,
}

// CalculateClimbScore は基礎ポイントとトライ数から完登スコアを計算する。
// 丸めはmath.Round（0.5を0から遠い方へ丸める。入力が非負のため
// 実質的に四捨五入）で行う。
// 事前条件: basePoints >= 0 かつ tries >= 1。範囲外の入力の検証は
// 呼び出し側の責務であり、ここでは行わない。
func CalculateClimbScore(basePoints, tries int) int {
	multiplier, ok := triesBonusMultipliers[tries]
	if !ok {
		multiplier = 1.0
	}
	return int(math.Round(float64(basePoints) * multiplier))
}

// CalculateTotalUserScore は指定ユーザーの完登記録のスコア合計を返す。
// 該当する記録がない場合は0。加算は可換なので順序に依存しない。
func CalculateTotalUserScore(userID string, climbs []model.ClimbLog) int {
	total := 0
	for _, climb := range climbs {
		if climb.UserID == userID {
			total += climb.Score
		}
	}
	return total
}
