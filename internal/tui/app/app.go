package app

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ousiassllc/transwatch/internal/core"
	"github.com/ousiassllc/transwatch/internal/i18n"
	"github.com/ousiassllc/transwatch/internal/rul"
	"github.com/ousiassllc/transwatch/internal/tui"
	"github.com/ousiassllc/transwatch/internal/tui/pages"
)

// MainModel はアプリケーションのルート Bubble Tea モデル。
type MainModel struct {
	dashboard pages.DashboardPage
	history   core.HistoryManager
	keys      tui.KeyMap
	loc       localizer
	summaries []core.TransformerSummary
	views     []tui.TransformerView
	changes   <-chan struct{}
	quitting  bool
}

// NewMainModel は新しい MainModel を生成する。
// changes が nil でなければ、通知のたびに測定履歴を読み直す。
func NewMainModel(
	history core.HistoryManager,
	catalog *i18n.Catalog,
	cfg core.Config,
	changes <-chan struct{},
	version string,
) MainModel {
	m := MainModel{
		dashboard: pages.NewDashboardPage(version),
		history:   history,
		keys:      tui.DefaultKeyMap(),
		loc: localizer{
			catalog: catalog,
			lang:    cfg.Lang(),
			mode:    cfg.Mode(),
		},
		changes: changes,
	}
	m.dashboard.SetLocale(m.loc.lang, catalog.Lookup(m.loc.lang))
	m.dashboard.SetWatching(changes != nil)
	return m
}

// Init は Bubble Tea の Init メソッド。初期読み込みコマンドを返す。
func (m MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadSummaries(false),
		m.listenChanges(),
		m.dashboard.Init(),
	)
}

// Update は Bubble Tea の Update メソッド。
func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		quit := key.Matches(msg, m.keys.ForceQuit) ||
			(key.Matches(msg, m.keys.Quit) && !m.dashboard.IsConfirming())
		if quit {
			cmd := m.shutdown()
			return m, cmd
		}

	case tui.SummariesLoadedMsg:
		if msg.Err != nil {
			m.dashboard.AppendError(fmt.Sprintf("読み込みエラー: %s", msg.Err))
		} else {
			m.summaries = msg.Summaries
			m.refresh()
		}

	case tui.DataChangedMsg:
		cmds = append(cmds, m.loadSummaries(true), m.listenChanges())

	case tui.ReloadRequestMsg:
		cmds = append(cmds, m.loadSummaries(true))

	case tui.TransformerSelectedMsg:
		m.refreshDetail(msg.Name)

	case tui.LanguageChangedMsg:
		m.loc.lang = msg.Lang
		m.dashboard.SetLocale(msg.Lang, m.loc.catalog.Lookup(msg.Lang))
		m.refresh()
		m.dashboard.AppendInfo(fmt.Sprintf("言語を %s に切り替えました", msg.Lang))

	case tui.MeasurementDeleteConfirmedMsg:
		cmds = append(cmds, m.deleteMeasurement(msg.ID))

	case tui.MeasurementDeletedMsg:
		if msg.Err != nil {
			m.dashboard.AppendError(fmt.Sprintf("削除エラー: %s", msg.Err))
		} else {
			m.dashboard.AppendInfo(fmt.Sprintf("測定値 '%s' を削除しました", msg.ID))
			m.summaries = m.history.Summaries()
			m.refresh()
		}
	}

	// ダッシュボードにメッセージを送る
	var dashCmd tea.Cmd
	m.dashboard, dashCmd = m.dashboard.Update(msg)
	if dashCmd != nil {
		cmds = append(cmds, dashCmd)
	}

	return m, tea.Batch(cmds...)
}

// View は Bubble Tea の View メソッド。
func (m MainModel) View() string {
	if m.quitting {
		return "終了中...\n"
	}
	return m.dashboard.View()
}

// --- 表示更新 ---

// refresh は現在のサマリーから一覧と詳細を組み立て直す。
func (m *MainModel) refresh() {
	m.views = m.loc.transformerViews(m.summaries)

	total := 0
	for _, s := range m.summaries {
		total += s.MeasurementCount
	}
	m.dashboard.SetTransformers(m.views, total)
	m.refreshDetail(m.dashboard.SelectedTransformer())
}

func (m *MainModel) refreshDetail(name string) {
	m.dashboard.SetDetail(m.loc.detailView(m.views, name, m.history))
}

// --- 非同期コマンド ---

// loadSummaries は測定履歴からサマリーを読み込む。reload が true ならデータファイルを読み直す。
func (m MainModel) loadSummaries(reload bool) tea.Cmd {
	h := m.history
	return func() tea.Msg {
		if reload {
			if err := h.Reload(); err != nil {
				slog.Warn("history reload failed", "path", h.Path(), "error", err)
				return tui.SummariesLoadedMsg{Err: err}
			}
		}
		return tui.SummariesLoadedMsg{Summaries: h.Summaries()}
	}
}

// listenChanges はデータファイルの変更通知を 1 件待つ。
func (m MainModel) listenChanges() tea.Cmd {
	changes := m.changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return tui.DataChangedMsg{}
	}
}

func (m MainModel) deleteMeasurement(id string) tea.Cmd {
	h := m.history
	return func() tea.Msg {
		return tui.MeasurementDeletedMsg{ID: id, Err: h.Delete(id)}
	}
}

func (m *MainModel) shutdown() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

// Language は現在の表示言語を返す。
func (m MainModel) Language() rul.Language {
	return m.loc.lang
}
