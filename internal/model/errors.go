// Package model はドメインモデルを定義する。
package model

import "fmt"

// AppError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type AppError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, catalog, climb, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeDuplicateUserID    = "DUPLICATE_USER_ID"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeNoActiveSet        = "NO_ACTIVE_SET"
	ErrCodeBoulderNotFound    = "BOULDER_NOT_FOUND"
	ErrCodeBoulderNotInSet    = "BOULDER_NOT_IN_ACTIVE_SET"
	ErrCodeAlreadyCompleted   = "ALREADY_COMPLETED"
	ErrCodeInvalidTries       = "INVALID_TRIES"
	ErrCodeSubmitTooFast      = "SUBMIT_TOO_FAST"
	ErrCodeInvalidGrade       = "INVALID_GRADE"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
)

// Result は削除系操作の結果を表す。
// 失敗時もエラーではなく、状態を変更せずにメッセージ付きで返す。
type Result struct {
	Success bool
	Message string
}

// NewDuplicateUserIDError はログイン名重複エラーを生成する。
func NewDuplicateUserIDError(userID string) *AppError {
	return &AppError{
		Code:     ErrCodeDuplicateUserID,
		Message:  fmt.Sprintf("このユーザーIDは既に使われています: %s", userID),
		Category: "auth",
		Action:   "別のユーザーIDを入力してください。",
	}
}

// NewInvalidCredentialsError は認証失敗エラーを生成する。
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "ユーザーIDまたはパスワードが正しくありません。",
		Category: "auth",
		Action:   "入力内容を確認して再度お試しください。",
	}
}

// NewNoActiveSetError はアクティブなセットが存在しない場合のエラーを生成する。
func NewNoActiveSetError() *AppError {
	return &AppError{
		Code:     ErrCodeNoActiveSet,
		Message:  "現在スコア登録可能なセットがありません。",
		Category: "climb",
		Action:   "セットがアクティブになるまでお待ちください。",
	}
}

// NewBoulderNotFoundError はボルダー未検出エラーを生成する。
func NewBoulderNotFoundError(boulderID string) *AppError {
	return &AppError{
		Code:     ErrCodeBoulderNotFound,
		Message:  fmt.Sprintf("指定されたボルダーが見つかりません: %s", boulderID),
		Category: "catalog",
		Action:   "ボルダーIDを確認してください。",
	}
}

// NewBoulderNotInActiveSetError はアクティブセット外のボルダーへの
// スコア登録を拒否するエラーを生成する。
func NewBoulderNotInActiveSetError(boulderName string) *AppError {
	return &AppError{
		Code:     ErrCodeBoulderNotInSet,
		Message:  fmt.Sprintf("ボルダー「%s」はアクティブなセットに含まれていません。", boulderName),
		Category: "climb",
		Action:   "アクティブなセットのボルダーを選択してください。",
	}
}

// NewAlreadyCompletedError は完登済みボルダーへの再登録を拒否するエラーを生成する。
func NewAlreadyCompletedError(boulderName string) *AppError {
	return &AppError{
		Code:     ErrCodeAlreadyCompleted,
		Message:  fmt.Sprintf("ボルダー「%s」は既に完登済みです。", boulderName),
		Category: "climb",
		Action:   "まだ完登していないボルダーを選択してください。",
	}
}

// NewInvalidTriesError は無効なトライ数エラーを生成する。
func NewInvalidTriesError(tries int) *AppError {
	return &AppError{
		Code:     ErrCodeInvalidTries,
		Message:  fmt.Sprintf("無効なトライ数です: %d", tries),
		Category: "validation",
		Action:   "トライ数には1以上の整数を指定してください。",
	}
}

// NewSubmitTooFastError は連続送信の抑止エラーを生成する。
func NewSubmitTooFastError() *AppError {
	return &AppError{
		Code:     ErrCodeSubmitTooFast,
		Message:  "送信の間隔が短すぎます。",
		Category: "climb",
		Action:   "少し待ってから再度お試しください。",
	}
}

// NewInvalidGradeError は未定義グレードエラーを生成する。
func NewInvalidGradeError(grade Grade) *AppError {
	return &AppError{
		Code:     ErrCodeInvalidGrade,
		Message:  fmt.Sprintf("無効なグレードです: %s", grade),
		Category: "validation",
		Action:   "グレードにはV0からV10のいずれかを指定してください。",
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError() *AppError {
	return &AppError{
		Code:     ErrCodeUserNotFound,
		Message:  "ユーザーが見つかりません。",
		Category: "auth",
		Action:   "ログインし直してください。",
	}
}
