package atoms

import "github.com/ousiassllc/transwatch/internal/tui"

// RenderRUL は整形済みの残存寿命を描画する。空の場合は "-"。
func RenderRUL(text string) string {
	if text == "" {
		return tui.MutedStyle.Render("-")
	}
	return tui.TextStyle.Render(text)
}
