package app

import (
	"github.com/ousiassllc/transwatch/internal/core"
	"github.com/ousiassllc/transwatch/internal/i18n"
	"github.com/ousiassllc/transwatch/internal/rul"
	"github.com/ousiassllc/transwatch/internal/tui"
)

// detailHistoryLimit は詳細パネルに表示する履歴の最大件数。
const detailHistoryLimit = 50

// localizer はサマリーと測定値を表示言語のビューに変換する。
type localizer struct {
	catalog *i18n.Catalog
	lang    rul.Language
	mode    rul.Mode
}

func (l localizer) formatRUL(steps float64) string {
	return rul.FormatSteps(steps, rul.Options{
		Mode:       l.mode,
		Language:   l.lang,
		Translator: l.catalog.Translator(l.lang),
	})
}

// transformerViews はサマリーを表示用データに変換する。並び順は保つ。
func (l localizer) transformerViews(sums []core.TransformerSummary) []tui.TransformerView {
	lookup := l.catalog.Lookup(l.lang)
	out := make([]tui.TransformerView, len(sums))
	for i, s := range sums {
		s.Category = s.Category.Localize(lookup)
		out[i] = tui.TransformerView{
			Summary: s,
			RULText: l.formatRUL(s.Latest.RUL),
		}
	}
	return out
}

// measurementViews は測定値を表示用データに変換する。
func (l localizer) measurementViews(items []core.Measurement) []tui.MeasurementView {
	lookup := l.catalog.Lookup(l.lang)
	out := make([]tui.MeasurementView, len(items))
	for i, m := range items {
		out[i] = tui.MeasurementView{
			Measurement: m,
			Label:       m.Category().Localize(lookup).Label,
			RULText:     l.formatRUL(m.RUL),
		}
	}
	return out
}

// detailView は選択中の変圧器の詳細を組み立てる。該当がなければ nil。
func (l localizer) detailView(views []tui.TransformerView, name string, h core.HistoryManager) *tui.DetailView {
	for _, v := range views {
		if v.Summary.Name != name {
			continue
		}
		items := h.List(core.HistoryFilter{Transformer: name, Limit: detailHistoryLimit})
		return &tui.DetailView{
			Transformer: v,
			History:     l.measurementViews(items),
		}
	}
	return nil
}
