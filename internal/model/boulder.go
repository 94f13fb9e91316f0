// Package model はドメインモデルを定義する。
package model

// BoulderSet はボルダーのセット（週替わりの課題群）を表す。
// コレクション全体で同時にアクティブなセットは最大1つという不変条件を持つ。
// アクティブなセットのみがスコア登録の対象になる。
type BoulderSet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// Boulder はセットに属する1つの課題を表す。
// IDはセット内ではなく全コレクションで一意。
// BasePointsは常にグレードの基礎ポイント表と一致しなければならず、
// グレード変更時には必ず再計算される。
type Boulder struct {
	ID         string `json:"id"`
	SetID      string `json:"setId"`
	Name       string `json:"name"`
	Grade      Grade  `json:"grade"`
	BasePoints int    `json:"basePoints"`
	ImageURL   string `json:"imageUrl,omitempty"`
}
