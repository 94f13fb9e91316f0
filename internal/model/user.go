// Package model はドメインモデルを定義する。
package model

import "time"

// MembershipType は会員種別を表す。
type MembershipType string

const (
	// MembershipNone は会員権なしを示す。
	MembershipNone MembershipType = "none"
	// MembershipTimeBased は期限付き会員権を示す。
	MembershipTimeBased MembershipType = "time_based"
	// MembershipPassBased は回数券会員権を示す。
	MembershipPassBased MembershipType = "pass_based"
)

// User はジム利用者を表す。
// IDはシステム生成の内部識別子、UserIDは利用者が選ぶログイン名
// （大文字小文字を区別して一意）。
// パスワードは平文で保持する。認証セキュリティは本システムの明示的な
// 非目標であり、ハッシュ化は行わない。
type User struct {
	ID                   string         `json:"id"`
	UserID               string         `json:"userId"`
	Password             string         `json:"password,omitempty"`
	IsAdmin              bool           `json:"isAdmin,omitempty"`
	MembershipType       MembershipType `json:"membershipType,omitempty"`
	MembershipExpiryDate *time.Time     `json:"membershipExpiryDate,omitempty"`
	PassesLeft           *int           `json:"passesLeft,omitempty"`
}
