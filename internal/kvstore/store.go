// Package kvstore はJSON値を保持するキーバリュー永続化層を提供する。
//
// ストレージ媒体はトランザクション保証を持たない抽象キーバリューストアとして
// 扱う。複数キーにまたがる読み書きはアトミックではなく、呼び出し側は
// 単一書き込み主体の実行モデルを前提とする。
package kvstore

import (
	"context"
	"encoding/json"
)

// 永続化レイアウトの論理キー。値はすべてJSON。
const (
	KeyUsers          = "users"
	KeyClimbs         = "climbs"
	KeyBoulderSets    = "boulderSets"
	KeyBoulders       = "boulders"
	KeyLoggedInUserID = "loggedInUserId"

	// ダミー完登記録の投入済みフラグ
	KeyAdminDummyClimbsInitialized  = "adminDummyClimbsInitialized"
	KeySecondDummyClimbsInitialized = "secondDummyClimbsInitialized"
)

// Store はキーバリュー永続化媒体のインターフェース。
type Store interface {
	// Get は指定キーの値を取得する。キーが存在しない場合は(nil, nil)を返す。
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Set は指定キーに値を保存する。valueがnilの場合はキーを削除する。
	Set(ctx context.Context, key string, value json.RawMessage) error
}
