// Package security はアプリケーションのセキュリティ機能を提供する。
//
// TextSanitizer は管理者が入力するセットやボルダーの名前・説明文から
// HTMLタグを除去し、UI表示時のXSSリスクからユーザーを保護する。
// bluemondayライブラリのStrictPolicy（全タグ除去）を使用する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizer はプレーンテキスト化機能のインターフェースを定義する。
// セット・ボルダーの保存前に使用される。
type TextSanitizer interface {
	// Sanitize は入力からすべてのHTMLタグを除去し、前後の空白を取り除いて返す。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// textSanitizer はTextSanitizerの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer はTextSanitizerの新しいインスタンスを生成する。
// StrictPolicyはいかなるタグも許可せず、テキストのみを通過させる。
func NewTextSanitizer() *textSanitizer {
	return &textSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize は入力からすべてのHTMLタグを除去して返す。
func (s *textSanitizer) Sanitize(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
