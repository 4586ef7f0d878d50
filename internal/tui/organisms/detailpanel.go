package organisms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ousiassllc/transwatch/internal/tui"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
	"github.com/ousiassllc/transwatch/internal/tui/molecules"
)

const healthBarWidth = 20

// DetailPanel は選択中の変圧器の最新状態と測定履歴を表示するパネル。
type DetailPanel struct {
	detail  *tui.DetailView
	cursor  int
	focused bool
	rtl     bool
	t       func(key string) string
	width   int
	height  int
}

// NewDetailPanel は新しい DetailPanel を生成する。
func NewDetailPanel() DetailPanel {
	return DetailPanel{t: func(key string) string { return key }}
}

// SetFocused はフォーカス状態を設定する。
func (p *DetailPanel) SetFocused(focused bool) {
	p.focused = focused
}

// SetTranslate は見出しの翻訳関数と文字方向を設定する。
func (p *DetailPanel) SetTranslate(t func(key string) string, rtl bool) {
	if t != nil {
		p.t = t
	}
	p.rtl = rtl
}

// SetDetail は表示する変圧器を設定する。nil で表示をクリアする。
func (p *DetailPanel) SetDetail(d *tui.DetailView) {
	p.detail = d
	n := 0
	if d != nil {
		n = len(d.History)
	}
	if p.cursor >= n {
		p.cursor = 0
		if n > 0 {
			p.cursor = n - 1
		}
	}
}

// SetSize はパネルのサイズを設定する。
func (p *DetailPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SelectedMeasurementID はカーソル位置の測定値 ID を返す。
func (p DetailPanel) SelectedMeasurementID() string {
	if p.detail == nil || p.cursor >= len(p.detail.History) {
		return ""
	}
	return p.detail.History[p.cursor].Measurement.ID
}

// Measurement は表示中の履歴から id の測定値を探す。
func (p DetailPanel) Measurement(id string) (tui.MeasurementView, bool) {
	if p.detail == nil {
		return tui.MeasurementView{}, false
	}
	for _, m := range p.detail.History {
		if m.Measurement.ID == id {
			return m, true
		}
	}
	return tui.MeasurementView{}, false
}

// Update はキー入力を処理する。
func (p DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {
	if !p.focused || p.detail == nil {
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	keys := tui.DefaultKeyMap()

	switch {
	case key.Matches(keyMsg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if p.cursor < len(p.detail.History)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, keys.Delete):
		if id := p.SelectedMeasurementID(); id != "" {
			return p, func() tea.Msg {
				return tui.MeasurementDeleteRequestMsg{ID: id}
			}
		}
	}

	return p, nil
}

// View はパネルを描画する。
func (p DetailPanel) View() string {
	innerWidth := p.width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	var rows []string
	if p.detail == nil {
		rows = append(rows, tui.MutedStyle.Render(p.t("noMeasurements")))
	} else {
		rows = p.renderDetail(innerWidth)
	}

	style := tui.PanelBorder
	if p.focused {
		style = tui.PanelBorderFocused
	}
	if p.rtl {
		style = style.Align(lipgloss.Right)
	}

	height := p.height - 2
	if height < 1 {
		height = 1
	}
	return style.Width(innerWidth).Height(height).Render(strings.Join(rows, "\n"))
}

func (p DetailPanel) renderDetail(innerWidth int) []string {
	tv := p.detail.Transformer
	s := tv.Summary
	cat := s.Category

	field := func(key, value string) string {
		return tui.MutedStyle.Render(fmt.Sprintf("%-18s", p.t(key))) + " " + value
	}

	rows := []string{
		tui.TitleStyle.Render(s.Name),
		atoms.RenderDivider(innerWidth),
		field("fddStatus", atoms.RenderSeverityBadge(cat.Severity, cat.Label)),
		field("fddStatusDescription", tui.TextStyle.Render(cat.Description)),
		field("healthIndex", atoms.RenderHealthBar(cat.HealthPercent, healthBarWidth, cat.Severity)),
		field("rul", atoms.RenderRUL(tv.RULText)),
		field("temperature", atoms.RenderTemperature(s.Latest.Temperature)),
		field("timestamp", tui.TextStyle.Render(s.Latest.Timestamp.Format("2006-01-02 15:04"))),
		"",
		tui.SectionTitleStyle.Render(fmt.Sprintf("%s (%d)", p.t("history"), len(p.detail.History))),
	}

	// 履歴部分に使える行数
	maxRows := p.height - 2 - len(rows)
	if maxRows < 1 {
		maxRows = 1
	}
	offset := 0
	if p.cursor >= maxRows {
		offset = p.cursor - maxRows + 1
	}
	end := offset + maxRows
	if end > len(p.detail.History) {
		end = len(p.detail.History)
	}

	for i := offset; i < end; i++ {
		row := molecules.MeasurementRow{
			Measurement: p.detail.History[i],
			Selected:    p.focused && i == p.cursor,
		}
		rows = append(rows, row.View())
	}
	return rows
}
