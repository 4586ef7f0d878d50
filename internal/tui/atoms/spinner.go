package atoms

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/ousiassllc/transwatch/internal/tui"
)

// NewSpinner は読み込み中を示すスピナーモデルを返す。
func NewSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = tui.WarningStyle
	return s
}
