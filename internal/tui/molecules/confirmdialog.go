package molecules

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ousiassllc/transwatch/internal/tui"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
)

// confirmMinWidth はダイアログ内容の最小幅。
const confirmMinWidth = 24

// ConfirmResultMsg は削除確認ダイアログの結果を通知するメッセージ。
type ConfirmResultMsg struct {
	ID        string
	Confirmed bool
}

// ConfirmDialog は測定値の削除を確認する Yes/No ダイアログ。
type ConfirmDialog struct {
	id      string
	title   string
	details []string
	yes     string
	no      string
	width   int
	focused bool // true = Yes にフォーカス
}

// NewConfirmDialog は測定値 m の削除確認ダイアログを生成する。
// t は見出しとボタンの翻訳関数。
func NewConfirmDialog(m tui.MeasurementView, t func(key string) string) ConfirmDialog {
	if t == nil {
		t = func(key string) string { return key }
	}
	ts := m.Measurement.Timestamp.Local().Format("2006-01-02 15:04")
	return ConfirmDialog{
		id:    m.Measurement.ID,
		title: t("deleteMeasurement"),
		details: []string{
			fmt.Sprintf("%s  %s", m.Measurement.Transformer, ts),
			fmt.Sprintf("[%d] %s", int(m.Measurement.FDD), m.Label),
			atoms.RenderRUL(m.RULText),
		},
		yes:     t("yes"),
		no:      t("no"),
		focused: false, // デフォルトは No（安全側）
	}
}

// ID は削除対象の測定値 ID を返す。
func (m ConfirmDialog) ID() string {
	return m.id
}

// SetWidth はダイアログの最大幅を設定する。0 以下なら制限しない。
func (m *ConfirmDialog) SetWidth(width int) {
	m.width = width
}

// Init は Bubble Tea の Init メソッド。
func (m ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update は Bubble Tea の Update メソッド。
func (m ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	id := m.id
	switch keyMsg.String() {
	case "left", "h", "right", "l", "tab":
		m.focused = !m.focused
	case "y":
		return m, func() tea.Msg { return ConfirmResultMsg{ID: id, Confirmed: true} }
	case "n", "esc":
		return m, func() tea.Msg { return ConfirmResultMsg{ID: id, Confirmed: false} }
	case "enter":
		confirmed := m.focused
		return m, func() tea.Msg { return ConfirmResultMsg{ID: id, Confirmed: confirmed} }
	}

	return m, nil
}

// View は Bubble Tea の View メソッド。
func (m ConfirmDialog) View() string {
	inner := 0
	if m.width > 0 {
		// 枠線と左右パディングの分を除く
		inner = m.width - 4
		if inner < confirmMinWidth {
			inner = confirmMinWidth
		}
	}
	clip := func(s string, indent int) string {
		if inner > 0 && lipgloss.Width(s) > inner-indent {
			return lipgloss.NewStyle().MaxWidth(inner - indent).Render(s)
		}
		return s
	}

	lines := []string{tui.TitleStyle.Render(clip(m.title, 0))}
	for _, d := range m.details {
		lines = append(lines, "  "+clip(d, 2))
	}

	yesStyle := tui.MutedStyle
	noStyle := tui.MutedStyle
	if m.focused {
		yesStyle = tui.SelectedStyle
	} else {
		noStyle = tui.SelectedStyle
	}
	lines = append(lines,
		"",
		fmt.Sprintf("  %s  %s", yesStyle.Render(" "+m.yes+" "), noStyle.Render(" "+m.no+" ")),
		"",
		atoms.RenderKeyHint(
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", m.yes)),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", m.no)),
			key.NewBinding(key.WithKeys("←/→"), key.WithHelp("←/→", "⇆")),
		),
	)

	return tui.PanelBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
