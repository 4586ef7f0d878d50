package cli

import "fmt"

const helpText = `TransWatch - 変圧器の健全性モニタ

Usage:
  transwatch <command> [arguments]

Commands:
  rul <steps> [--lang L] [--mode M] [--json]
                     RUL ステップ数を年・月・日・時間で表示
  fdd <code> [--lang L] [--json]
                     FDD 分類コードの意味を表示
  add [flags]        測定値を追加
  delete <id>        測定値を削除
  history [flags]    測定履歴の一覧
  status [name]      変圧器ごとの最新状態のサマリー
  config [--json]    設定を表示
  config set <key> <value>
                     設定を変更
  tui                TUI ダッシュボードを起動
  help               このヘルプを表示
  version            バージョン情報を表示

Global Flags:
  --config-dir <path>  設定ディレクトリのパス`

// RunHelp は help サブコマンドを実行する。
func RunHelp(configDir string, args []string) {
	fmt.Println(helpText)
}
