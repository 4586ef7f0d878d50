package atoms

import (
	"fmt"
	"strings"

	"github.com/ousiassllc/transwatch/internal/fdd"
	"github.com/ousiassllc/transwatch/internal/tui"
)

// RenderHealthBar は健全度をバーと百分率で描画する。
// 形式: "███████░░░  75%"
func RenderHealthBar(percent, width int, s fdd.Severity) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if width < 1 {
		width = 1
	}

	filled := percent * width / 100
	bar := tui.SeverityStyle(s).Render(strings.Repeat("█", filled)) +
		tui.DividerStyle.Render(strings.Repeat("░", width-filled))
	return bar + " " + tui.TextStyle.Render(fmt.Sprintf("%3d%%", percent))
}
