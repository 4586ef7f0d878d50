package molecules

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ousiassllc/transwatch/internal/tui"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
)

// TransformerRow は変圧器1行分の表示を担う。
type TransformerRow struct {
	Transformer tui.TransformerView
	Selected    bool
}

// View は TransformerRow を描画する。
// 形式: "● Normal mode  t1  1 year, 2 months  2026-01-05 08:00  [3]"
func (r TransformerRow) View() string {
	s := r.Transformer.Summary
	badge := atoms.RenderSeverityBadge(s.Category.Severity, s.Category.Label)

	name := tui.TitleStyle.Render(s.Name)
	remaining := atoms.RenderRUL(r.Transformer.RULText)
	at := tui.MutedStyle.Render(s.Latest.Timestamp.Format("2006-01-02 15:04"))
	count := tui.MutedStyle.Render(fmt.Sprintf("[%d]", s.MeasurementCount))

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		name, "  ", badge, "  ", remaining, "  ", at, "  ", count,
	)

	if r.Selected {
		return tui.SelectedStyle.Render(row)
	}
	return row
}
