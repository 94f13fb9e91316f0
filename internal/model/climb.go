// Package model はドメインモデルを定義する。
package model

import "time"

// ClimbLog は完登記録を表す。追記専用で、作成後の更新・削除は行わない。
// BoulderNameとBoulderGradeは記録時点のボルダーのスナップショットであり、
// 後からボルダーが編集・削除されても意図的に同期しない
// （過去の記録の表示を保存するための非正規化）。
type ClimbLog struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	BoulderID     string    `json:"boulderId"`
	BoulderName   string    `json:"boulderName"`
	BoulderGrade  Grade     `json:"boulderGrade"`
	Tries         int       `json:"tries"`
	Score         int       `json:"score"`
	DateCompleted time.Time `json:"dateCompleted"`
}
