package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap はアプリケーション全体のキーバインドを定義する。
type KeyMap struct {
	// グローバルキー
	Tab       key.Binding
	Help      key.Binding
	Language  key.Binding
	Reload    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// ナビゲーション
	Up   key.Binding
	Down key.Binding

	// アクション
	Delete key.Binding
}

// DefaultKeyMap はデフォルトのキーバインドを返す。
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "ペイン切替"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ヘルプ"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "言語切替"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "再読み込み"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "終了"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "強制終了"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "上"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "下"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "削除"),
		),
	}
}

// ShortHelp は help.KeyMap インターフェースを満たす。
// ヘルプバーに表示する主要キーバインドを返す。
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Language, k.Reload, k.Quit}
}

// FullHelp は help.KeyMap インターフェースを満たす。
// 全キーバインドをグループ分けして返す。
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Help, k.Language, k.Reload, k.Quit, k.ForceQuit},
		{k.Up, k.Down},
		{k.Delete},
	}
}
