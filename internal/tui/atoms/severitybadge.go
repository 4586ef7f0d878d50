package atoms

import (
	"github.com/ousiassllc/transwatch/internal/fdd"
	"github.com/ousiassllc/transwatch/internal/tui"
)

// 重大度に対応するシンボル
var severitySymbols = map[fdd.Severity]string{
	fdd.Normal:     "●",
	fdd.Warning:    "▲",
	fdd.MinorAlarm: "◆",
	fdd.MajorAlarm: "✗",
}

// SeveritySymbol は重大度のシンボルを返す。未知の重大度は "?"。
func SeveritySymbol(s fdd.Severity) string {
	if sym, ok := severitySymbols[s]; ok {
		return sym
	}
	return "?"
}

// RenderSeverityBadge は重大度をカラーシンボル付きテキストとして描画する。
func RenderSeverityBadge(s fdd.Severity, label string) string {
	return tui.SeverityStyle(s).Render(SeveritySymbol(s) + " " + label)
}
