package pages

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ousiassllc/transwatch/internal/fdd"
	"github.com/ousiassllc/transwatch/internal/rul"
	"github.com/ousiassllc/transwatch/internal/tui"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
	"github.com/ousiassllc/transwatch/internal/tui/molecules"
	"github.com/ousiassllc/transwatch/internal/tui/organisms"
)

const logPanelHeight = 4

// DashboardPage は変圧器一覧・詳細・イベントログ・ステータスバーを組み合わせたレイアウト。
type DashboardPage struct {
	transformers organisms.TransformerPanel
	detail       organisms.DetailPanel
	log          organisms.LogPanel
	statusBar    organisms.StatusBar
	spinner      spinner.Model
	keys         tui.KeyMap

	confirm *molecules.ConfirmDialog

	lang        rul.Language
	t           func(key string) string
	version     string
	loaded      bool
	focusedPane tui.FocusPane
	width       int
	height      int
}

// NewDashboardPage は新しい DashboardPage を生成する。
func NewDashboardPage(version string) DashboardPage {
	d := DashboardPage{
		transformers: organisms.NewTransformerPanel(),
		detail:       organisms.NewDetailPanel(),
		log:          organisms.NewLogPanel(),
		statusBar:    organisms.NewStatusBar(),
		spinner:      atoms.NewSpinner(),
		keys:         tui.DefaultKeyMap(),
		lang:         rul.English,
		t:            func(key string) string { return key },
		version:      version,
		focusedPane:  tui.PaneTransformers,
	}
	d.transformers.SetFocused(true)
	return d
}

// Init は初期化コマンドを返す。
func (d DashboardPage) Init() tea.Cmd {
	return d.spinner.Tick
}

// Update はメッセージを処理する。
func (d DashboardPage) Update(msg tea.Msg) (DashboardPage, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil

	case spinner.TickMsg:
		if d.loaded {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tui.MeasurementDeleteRequestMsg:
		target, ok := d.detail.Measurement(msg.ID)
		if !ok {
			target.Measurement.ID = msg.ID
		}
		dialog := molecules.NewConfirmDialog(target, d.t)
		dialog.SetWidth(d.width)
		d.confirm = &dialog
		return d, nil

	case molecules.ConfirmResultMsg:
		if d.confirm == nil || d.confirm.ID() != msg.ID {
			return d, nil
		}
		d.confirm = nil
		if !msg.Confirmed || msg.ID == "" {
			return d, nil
		}
		id := msg.ID
		return d, func() tea.Msg {
			return tui.MeasurementDeleteConfirmedMsg{ID: id}
		}

	case tea.KeyMsg:
		// 確認ダイアログ表示中はダイアログにのみキーを送る
		if d.confirm != nil {
			dialog, cmd := d.confirm.Update(msg)
			d.confirm = &dialog
			return d, cmd
		}

		switch {
		case key.Matches(msg, d.keys.Tab):
			d.cycleFocus()
			return d, nil
		case key.Matches(msg, d.keys.Language):
			next := d.lang.Next()
			return d, func() tea.Msg {
				return tui.LanguageChangedMsg{Lang: next}
			}
		case key.Matches(msg, d.keys.Reload):
			return d, func() tea.Msg {
				return tui.ReloadRequestMsg{}
			}
		}

		// フォーカス中のパネルにキーを送る
		var cmd tea.Cmd
		switch d.focusedPane {
		case tui.PaneTransformers:
			d.transformers, cmd = d.transformers.Update(msg)
		case tui.PaneDetail:
			d.detail, cmd = d.detail.Update(msg)
		}
		return d, cmd
	}

	return d, nil
}

// renderHeader は1行ヘッダーを描画する。
func (d DashboardPage) renderHeader() string {
	appName := tui.HeaderStyle.Render("  TransWatch")
	version := tui.MutedStyle.Render(d.version)

	gap := d.width - lipgloss.Width(appName) - lipgloss.Width(version) - 1
	if gap < 1 {
		return appName
	}

	padding := lipgloss.NewStyle().Width(gap).Render("")
	return appName + padding + version
}

// View はダッシュボードを描画する。
func (d DashboardPage) View() string {
	if d.width == 0 || d.height == 0 {
		return "Loading..."
	}
	if !d.loaded {
		return d.renderHeader() + "\n\n  " + d.spinner.View() + " Loading..."
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		d.transformers.View(),
		d.detail.View(),
	)
	if d.confirm != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, d.confirm.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderHeader(),
		body,
		atoms.RenderDivider(d.width),
		d.log.View(),
		d.statusBar.View(),
	)
}

// --- パネルへのアクセサ ---

// SetTransformers は変圧器一覧と測定値の総数を設定する。
func (d *DashboardPage) SetTransformers(items []tui.TransformerView, measurements int) {
	d.loaded = true
	d.transformers.SetItems(items)

	alarms := 0
	for _, it := range items {
		switch it.Summary.Category.Severity {
		case fdd.MinorAlarm, fdd.MajorAlarm:
			alarms++
		}
	}
	d.statusBar.SetStats(organisms.StatusBarStats{
		Transformers: len(items),
		Alarms:       alarms,
		Measurements: measurements,
	})
}

// SetDetail は詳細パネルの表示内容を設定する。
func (d *DashboardPage) SetDetail(detail *tui.DetailView) {
	d.detail.SetDetail(detail)
}

// SetLocale は表示言語と翻訳関数を設定する。
func (d *DashboardPage) SetLocale(lang rul.Language, t func(key string) string) {
	d.lang = lang
	if t != nil {
		d.t = t
	}
	d.transformers.SetLabels(d.t("transformers"), d.t("noMeasurements"))
	d.detail.SetTranslate(d.t, lang.RTL())
	d.statusBar.SetLanguage(lang)
}

// SetWatching はファイル監視の有無をステータスバーに設定する。
func (d *DashboardPage) SetWatching(watching bool) {
	d.statusBar.SetWatching(watching)
}

// AppendInfo はイベントログに通常メッセージを追加する。
func (d *DashboardPage) AppendInfo(text string) {
	d.log.AppendInfo(text)
}

// AppendError はイベントログにエラーメッセージを追加する。
func (d *DashboardPage) AppendError(text string) {
	d.log.AppendError(text)
}

// SelectedTransformer は変圧器一覧で選択中の変圧器名を返す。
func (d DashboardPage) SelectedTransformer() string {
	return d.transformers.SelectedName()
}

// Language は現在の表示言語を返す。
func (d DashboardPage) Language() rul.Language {
	return d.lang
}

// FocusedPane は現在のフォーカスペインを返す。
func (d DashboardPage) FocusedPane() tui.FocusPane {
	return d.focusedPane
}

// IsConfirming は確認ダイアログを表示中かを返す。
func (d DashboardPage) IsConfirming() bool {
	return d.confirm != nil
}

// SetSize はサイズを設定する。
func (d *DashboardPage) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.updateSizes()
}

// --- 内部メソッド ---

func (d *DashboardPage) cycleFocus() {
	switch d.focusedPane {
	case tui.PaneTransformers:
		d.setFocus(tui.PaneDetail)
	default:
		d.setFocus(tui.PaneTransformers)
	}
}

func (d *DashboardPage) setFocus(pane tui.FocusPane) {
	d.focusedPane = pane
	d.transformers.SetFocused(pane == tui.PaneTransformers)
	d.detail.SetFocused(pane == tui.PaneDetail)
	d.statusBar.SetFocusedPane(pane)
}

func (d *DashboardPage) updateSizes() {
	if d.width <= 0 || d.height <= 0 {
		return
	}

	// レイアウト:
	//   Header:       1 line
	//   Transformers: ~40% of remaining
	//   Detail:       残り
	//   Divider:      1 line
	//   Log:          logPanelHeight lines
	//   StatusBar:    1 line

	fixedLines := 1 + 1 + logPanelHeight + 1
	remaining := d.height - fixedLines
	if remaining < 8 {
		remaining = 8
	}

	listHeight := remaining * 40 / 100
	if listHeight < 4 {
		listHeight = 4
	}
	detailHeight := remaining - listHeight
	if detailHeight < 4 {
		detailHeight = 4
	}

	d.transformers.SetSize(d.width, listHeight)
	d.detail.SetSize(d.width, detailHeight)
	d.log.SetSize(d.width, logPanelHeight)
	if d.confirm != nil {
		d.confirm.SetWidth(d.width)
	}
	d.statusBar.SetWidth(d.width)
}
