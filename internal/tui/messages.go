package tui

import (
	"github.com/ousiassllc/transwatch/internal/core"
	"github.com/ousiassllc/transwatch/internal/rul"
)

// FocusPane はフォーカス中のペインを示す。
type FocusPane int

const (
	PaneTransformers FocusPane = iota
	PaneDetail
)

// TransformerView は変圧器一覧の 1 行分の表示データ。Category は表示言語に翻訳済み。
type TransformerView struct {
	Summary core.TransformerSummary
	RULText string
}

// MeasurementView は測定履歴の 1 行分の表示データ。
type MeasurementView struct {
	Measurement core.Measurement
	Label       string
	RULText     string
}

// DetailView は詳細パネルに表示する変圧器のデータ。
type DetailView struct {
	Transformer TransformerView
	History     []MeasurementView
}

// SummariesLoadedMsg は測定履歴の読み込み完了時に発行される。
type SummariesLoadedMsg struct {
	Summaries []core.TransformerSummary
	Err       error
}

// DataChangedMsg はデータファイルの変更を通知する。
type DataChangedMsg struct{}

// TransformerSelectedMsg は変圧器一覧でカーソルが移動したときに発行される。
type TransformerSelectedMsg struct {
	Name string
}

// LanguageChangedMsg は表示言語の切り替えを要求する。
type LanguageChangedMsg struct {
	Lang rul.Language
}

// ReloadRequestMsg は測定履歴の再読み込みを要求する。
type ReloadRequestMsg struct{}

// MeasurementDeleteRequestMsg は測定値の削除確認を要求する。
type MeasurementDeleteRequestMsg struct {
	ID string
}

// MeasurementDeletedMsg は測定値の削除結果を通知する。
type MeasurementDeletedMsg struct {
	ID  string
	Err error
}

// MeasurementDeleteConfirmedMsg は測定値の削除を確定する。
type MeasurementDeleteConfirmedMsg struct {
	ID string
}
