package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ousiassllc/transwatch/internal/fdd"
)

// カラーパレット（単一アクセントカラー: バイオレット + グレースケール + 重大度色）
var (
	Accent      = lipgloss.Color("#7C3AED") // バイオレット: フォーカス、選択
	AccentDim   = lipgloss.Color("#6D28D9") // やや暗いアクセント: セカンダリ
	Text        = lipgloss.Color("#E4E4E7") // 通常テキスト（薄灰）
	Muted       = lipgloss.Color("#71717A") // 補助テキスト、ラベル
	Dim         = lipgloss.Color("#3F3F46") // ボーダー、区切り線
	Healthy     = lipgloss.Color("#22C55E") // 正常
	Warning     = lipgloss.Color("#F59E0B") // 警告
	Alarm       = lipgloss.Color("#F97316") // 軽警報
	Error       = lipgloss.Color("#EF4444") // 重警報
	BgHighlight = lipgloss.Color("#27272A") // 選択行の背景
)

// テキストスタイル
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SelectedStyle = lipgloss.NewStyle().
			Background(BgHighlight).
			Foreground(Accent).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Text)
)

// 重大度カラースタイル
var (
	NormalStyle     = lipgloss.NewStyle().Foreground(Healthy)
	WarningStyle    = lipgloss.NewStyle().Foreground(Warning)
	MinorAlarmStyle = lipgloss.NewStyle().Foreground(Alarm)
	MajorAlarmStyle = lipgloss.NewStyle().Foreground(Error).Bold(true)
	ErrorStyle      = lipgloss.NewStyle().Foreground(Error)
)

// SeverityStyle は重大度に対応するスタイルを返す。
func SeverityStyle(s fdd.Severity) lipgloss.Style {
	switch s {
	case fdd.Normal:
		return NormalStyle
	case fdd.Warning:
		return WarningStyle
	case fdd.MinorAlarm:
		return MinorAlarmStyle
	case fdd.MajorAlarm:
		return MajorAlarmStyle
	default:
		return MutedStyle
	}
}

// キーヒントスタイル
var (
	KeyStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	DescStyle = lipgloss.NewStyle().Foreground(Muted)
)

// 区切り線スタイル
var DividerStyle = lipgloss.NewStyle().Foreground(Dim)

// ヘッダースタイル
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Accent)

// セクションタイトルスタイル
var SectionTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Accent)

// パネルのボーダー
var (
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Dim).
			Padding(0, 1)

	PanelBorderFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Accent).
				Padding(0, 1)
)

// フォーカスインジケーター
var FocusIndicator = lipgloss.NewStyle().
	Foreground(Accent).
	Bold(true).
	Render("▌")
