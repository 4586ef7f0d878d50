package cli

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ousiassllc/transwatch/internal/infra"
	"github.com/ousiassllc/transwatch/internal/tui/app"
)

// RunTUI は tui サブコマンドを実行する。
func RunTUI(configDir string, args []string) {
	e := mustLoadEnv(configDir)

	history, err := e.openHistory()
	if err != nil {
		exitError("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// データファイルの変更を監視
	var changes <-chan struct{}
	if e.cfg.Watch.Enabled {
		w, err := infra.NewFileWatcher(history.Path(), e.cfg.Watch.Debounce.Duration)
		if err != nil {
			slog.Warn("file watcher disabled", "path", history.Path(), "error", err)
		} else {
			go w.Run(ctx)
			changes = w.Changes()
		}
	}

	model := app.NewMainModel(history, e.catalog, *e.cfg, changes, Version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		cancel()
		exitError("TUI エラー: %v", err)
	}
}
