package molecules

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ousiassllc/transwatch/internal/tui"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
)

// MeasurementRow は測定値1行分の表示を担う。
type MeasurementRow struct {
	Measurement tui.MeasurementView
	Selected    bool
}

// View は MeasurementRow を描画する。
// 形式: "2026-01-05 08:00  H2 30.0  CO 120.5  C2H2 0.4  C2H4 12.0  [2] Partial discharge  1 year"
func (r MeasurementRow) View() string {
	m := r.Measurement.Measurement
	sev := m.Category().Severity

	at := tui.MutedStyle.Render(m.Timestamp.Format("2006-01-02 15:04"))
	gases := lipgloss.JoinHorizontal(lipgloss.Top,
		atoms.RenderGas("H2", m.H2), "  ",
		atoms.RenderGas("CO", m.CO), "  ",
		atoms.RenderGas("C2H2", m.C2H2), "  ",
		atoms.RenderGas("C2H4", m.C2H4),
	)
	code := tui.SeverityStyle(sev).Render(fmt.Sprintf("[%g] %s", m.FDD, r.Measurement.Label))
	remaining := atoms.RenderRUL(r.Measurement.RULText)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		at, "  ", gases, "  ", code, "  ", remaining,
	)

	if r.Selected {
		return tui.SelectedStyle.Render(row)
	}
	return row
}
