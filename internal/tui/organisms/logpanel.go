package organisms

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ousiassllc/transwatch/internal/tui"
)

const logMaxEntries = 100

type logEntry struct {
	at    time.Time
	text  string
	isErr bool
}

// LogPanel は再読み込みや削除などのイベントを表示する読み取り専用パネル。
type LogPanel struct {
	entries []logEntry
	width   int
	height  int
	now     func() time.Time
}

// NewLogPanel は新しい LogPanel を生成する。
func NewLogPanel() LogPanel {
	return LogPanel{now: time.Now}
}

// AppendInfo は通常のイベントを追加する。
func (p *LogPanel) AppendInfo(text string) {
	p.append(text, false)
}

// AppendError はエラーイベントを追加する。
func (p *LogPanel) AppendError(text string) {
	p.append(text, true)
}

func (p *LogPanel) append(text string, isErr bool) {
	at := p.now()
	for _, line := range strings.Split(text, "\n") {
		p.entries = append(p.entries, logEntry{at: at, text: line, isErr: isErr})
	}
	if len(p.entries) > logMaxEntries {
		p.entries = p.entries[len(p.entries)-logMaxEntries:]
	}
}

// Len は保持しているイベント数を返す。
func (p LogPanel) Len() int {
	return len(p.entries)
}

// SetSize はパネルのサイズを設定する。
func (p *LogPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View はパネルを描画する。
func (p LogPanel) View() string {
	contentWidth := p.width
	if contentWidth < 10 {
		contentWidth = 10
	}

	displayLines := p.height
	if displayLines < 1 {
		displayLines = 1
	}

	entries := p.entries
	if len(entries) > displayLines {
		entries = entries[len(entries)-displayLines:]
	}

	rows := make([]string, 0, displayLines)
	for _, e := range entries {
		rows = append(rows, "  "+styleLogEntry(e))
	}
	// 不足分の空行で埋める
	for len(rows) < displayLines {
		rows = append(rows, "")
	}

	content := strings.Join(rows, "\n")
	return lipgloss.NewStyle().Width(contentWidth).Height(p.height).Render(content)
}

func styleLogEntry(e logEntry) string {
	if e.text == "" {
		return ""
	}
	at := tui.DividerStyle.Render(e.at.Format("15:04:05"))
	if e.isErr {
		return at + " " + tui.ErrorStyle.Render("✗") + " " + tui.MutedStyle.Render(e.text)
	}
	return at + " " + tui.NormalStyle.Render("✓") + " " + tui.MutedStyle.Render(e.text)
}
