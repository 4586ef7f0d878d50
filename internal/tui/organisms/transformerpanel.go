package organisms

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ousiassllc/transwatch/internal/tui"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
	"github.com/ousiassllc/transwatch/internal/tui/molecules"
)

// TransformerPanel は変圧器一覧をカーソル付きで表示するパネル。
type TransformerPanel struct {
	items   []tui.TransformerView
	cursor  int
	focused bool
	title   string
	empty   string
	width   int
	height  int
}

// NewTransformerPanel は新しい TransformerPanel を生成する。
func NewTransformerPanel() TransformerPanel {
	return TransformerPanel{
		title: "Transformers",
		empty: "No measurements",
	}
}

// SetFocused はフォーカス状態を設定する。
func (p *TransformerPanel) SetFocused(focused bool) {
	p.focused = focused
}

// SetLabels はタイトルと空表示の文言を設定する。
func (p *TransformerPanel) SetLabels(title, empty string) {
	p.title = title
	p.empty = empty
}

// SetItems は変圧器一覧を設定する。選択中の変圧器が残っていればカーソルを追従させる。
func (p *TransformerPanel) SetItems(items []tui.TransformerView) {
	selected := p.SelectedName()
	p.items = items
	for i, it := range items {
		if it.Summary.Name == selected {
			p.cursor = i
			return
		}
	}
	if p.cursor >= len(items) {
		if len(items) > 0 {
			p.cursor = len(items) - 1
		} else {
			p.cursor = 0
		}
	}
}

// SetSize はパネルのサイズを設定する。
func (p *TransformerPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SelectedName は現在選択中の変圧器名を返す。一覧が空の場合は空文字列。
func (p TransformerPanel) SelectedName() string {
	if len(p.items) == 0 || p.cursor >= len(p.items) {
		return ""
	}
	return p.items[p.cursor].Summary.Name
}

// Items は現在の変圧器一覧を返す。
func (p TransformerPanel) Items() []tui.TransformerView {
	return p.items
}

// Cursor は現在のカーソル位置を返す。
func (p TransformerPanel) Cursor() int {
	return p.cursor
}

// Update はキー入力を処理し、カーソル移動と変圧器選択メッセージを発行する。
func (p TransformerPanel) Update(msg tea.Msg) (TransformerPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	keys := tui.DefaultKeyMap()
	prevCursor := p.cursor

	switch {
	case key.Matches(keyMsg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	default:
		return p, nil
	}

	if prevCursor != p.cursor && len(p.items) > 0 {
		name := p.items[p.cursor].Summary.Name
		return p, func() tea.Msg {
			return tui.TransformerSelectedMsg{Name: name}
		}
	}

	return p, nil
}

// View はパネルを描画する。
func (p TransformerPanel) View() string {
	title := tui.TitleStyle.Render(p.title)

	// パネル内部幅（ボーダーとパディングを除く）
	innerWidth := p.width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	rows := []string{title, atoms.RenderDivider(innerWidth)}

	if len(p.items) == 0 {
		rows = append(rows, tui.MutedStyle.Render(p.empty))
	} else {
		maxRows := p.height - 4 // ボーダー2 + タイトル1 + 区切り線1
		if maxRows < 1 {
			maxRows = 1
		}

		offset := 0
		if p.cursor >= maxRows {
			offset = p.cursor - maxRows + 1
		}
		end := offset + maxRows
		if end > len(p.items) {
			end = len(p.items)
		}

		for i := offset; i < end; i++ {
			row := molecules.TransformerRow{
				Transformer: p.items[i],
				Selected:    i == p.cursor,
			}
			rows = append(rows, row.View())
		}
	}

	style := tui.PanelBorder
	if p.focused {
		style = tui.PanelBorderFocused
	}

	height := p.height - 2
	if height < 1 {
		height = 1
	}
	return style.Width(innerWidth).Height(height).Render(strings.Join(rows, "\n"))
}
