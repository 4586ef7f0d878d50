package organisms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ousiassllc/transwatch/internal/rul"
	"github.com/ousiassllc/transwatch/internal/tui"
)

// StatusBarStats はステータスバーに表示する統計情報。
type StatusBarStats struct {
	Transformers int
	Alarms       int
	Measurements int
}

// StatusBar はアプリケーション下部に表示するステータスバー。
type StatusBar struct {
	stats       StatusBarStats
	lang        rul.Language
	watching    bool
	focusedPane tui.FocusPane
	width       int
}

// NewStatusBar は新しい StatusBar を生成する。
func NewStatusBar() StatusBar {
	return StatusBar{lang: rul.English}
}

// SetStats は統計情報を更新する。
func (s *StatusBar) SetStats(stats StatusBarStats) {
	s.stats = stats
}

// SetLanguage は表示言語を更新する。
func (s *StatusBar) SetLanguage(lang rul.Language) {
	s.lang = lang
}

// SetWatching はファイル監視の有無を更新する。
func (s *StatusBar) SetWatching(watching bool) {
	s.watching = watching
}

// SetFocusedPane はフォーカス中のペインを更新する。
func (s *StatusBar) SetFocusedPane(pane tui.FocusPane) {
	s.focusedPane = pane
}

// SetWidth は表示幅を設定する。
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View はステータスバーを描画する。
func (s StatusBar) View() string {
	sep := tui.DividerStyle.Render(" │ ")

	alarms := tui.NormalStyle.Render(fmt.Sprintf("%d", s.stats.Alarms))
	if s.stats.Alarms > 0 {
		alarms = tui.ErrorStyle.Render(fmt.Sprintf("%d", s.stats.Alarms))
	}

	stats := fmt.Sprintf(
		"%s transformers  %s alarms%s%s measurements%s%s",
		tui.TitleStyle.Render(fmt.Sprintf("%d", s.stats.Transformers)),
		alarms,
		sep,
		tui.TitleStyle.Render(fmt.Sprintf("%d", s.stats.Measurements)),
		sep,
		tui.KeyStyle.Render(strings.ToUpper(s.lang.String())),
	)
	if s.watching {
		stats += sep + tui.MutedStyle.Render("watching")
	}

	// ペインに応じたキーヒント
	var contextHints string
	if s.focusedPane == tui.PaneDetail {
		contextHints = fmt.Sprintf(
			"%s %s",
			tui.KeyStyle.Render("[x]"), tui.DescStyle.Render("Delete"),
		)
	}

	globalHints := fmt.Sprintf(
		"%s %s  %s %s  %s %s  %s %s",
		tui.KeyStyle.Render("[Tab]"), tui.DescStyle.Render("Switch"),
		tui.KeyStyle.Render("[l]"), tui.DescStyle.Render("Lang"),
		tui.KeyStyle.Render("[r]"), tui.DescStyle.Render("Reload"),
		tui.KeyStyle.Render("[q]"), tui.DescStyle.Render("Quit"),
	)

	hints := globalHints
	if contextHints != "" {
		hints = contextHints + sep + globalHints
	}

	left := tui.MutedStyle.Render(" ") + stats
	right := hints

	if s.width <= 0 {
		return left + sep + right
	}

	// 幅が足りない場合は統計のみ表示
	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 3 {
		return left
	}

	padding := lipgloss.NewStyle().Width(gap).Render("")
	return left + padding + right
}
