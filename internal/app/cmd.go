package app

// Command はアプリケーションの起動モードを表す。
type Command string

const (
	// CommandInit は基準データの初期化を実行することを示す。
	CommandInit Command = "init"
	// CommandLeaderboard は現在のリーダーボードを表示することを示す。
	CommandLeaderboard Command = "leaderboard"
	// CommandMigrate はPostgreSQLバックエンドのマイグレーションを実行することを示す。
	CommandMigrate Command = "migrate"
)

// ParseCommand はコマンドライン引数からサブコマンドを解析する。
// 引数が空またはサポート外のコマンドの場合はCommandInitを返す。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandInit
	}

	switch args[0] {
	case "leaderboard":
		return CommandLeaderboard
	case "migrate":
		return CommandMigrate
	case "init":
		return CommandInit
	default:
		return CommandInit
	}
}
