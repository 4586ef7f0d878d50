package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ousiassllc/transwatch/internal/core"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
)

// statusEntry は status サブコマンドの JSON 出力の 1 要素。
type statusEntry struct {
	core.TransformerSummary
	RULText string `json:"rul_text"`
}

// RunStatus は status サブコマンドを実行する。
func RunStatus(configDir string, args []string) {
	e := mustLoadEnv(configDir)
	if err := runStatus(e, args, os.Stdout); err != nil {
		exitError("%v", err)
	}
}

func runStatus(e *env, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	langFlag := fs.String("lang", "", "表示言語: en, ar, ru")
	jsonFlag := fs.Bool("json", false, "JSON 形式で出力")

	if err := fs.Parse(args); err != nil {
		return err
	}

	h, err := e.openHistory()
	if err != nil {
		return err
	}

	lang := e.language(*langFlag)
	lookup := e.catalog.Lookup(lang)
	mode := e.cfg.Mode()

	// 名前が指定された場合はその変圧器のみ
	sums := h.Summaries()
	if fs.NArg() > 0 {
		name := core.NormalizeTransformerName(fs.Arg(0))
		var picked []core.TransformerSummary
		for _, s := range sums {
			if s.Name == name {
				picked = append(picked, s)
			}
		}
		if len(picked) == 0 {
			return fmt.Errorf("%w: %s", core.ErrTransformerNotFound, name)
		}
		sums = picked
	}

	entries := make([]statusEntry, 0, len(sums))
	for _, s := range sums {
		s.Category = s.Category.Localize(lookup)
		entries = append(entries, statusEntry{
			TransformerSummary: s,
			RULText:            e.formatRUL(s.Latest.RUL, lang, mode),
		})
	}

	if *jsonFlag {
		return writeJSON(w, struct {
			Transformers []statusEntry `json:"transformers"`
		}{Transformers: entries})
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, e.catalog.T(lang, "noMeasurements"))
		return nil
	}

	fmt.Fprintf(w, "%s (%d):\n\n", e.catalog.T(lang, "transformers"), len(entries))
	for _, en := range entries {
		badge := atoms.SeveritySymbol(en.Category.Severity) + " " + en.Category.Label
		if e.styled {
			badge = atoms.RenderSeverityBadge(en.Category.Severity, en.Category.Label)
		}
		fmt.Fprintf(w, "%s  %s\n", en.Name, badge)
		fmt.Fprintf(w, "  %-16s %s\n", e.catalog.T(lang, "rul")+":", orDash(en.RULText))
		fmt.Fprintf(w, "  %-16s %d%%\n", e.catalog.T(lang, "healthIndex")+":", en.Category.HealthPercent)
		fmt.Fprintf(w, "  %-16s %s (%d)\n", e.catalog.T(lang, "latestMeasurement")+":",
			en.Latest.Timestamp.Format("2006-01-02 15:04"), en.MeasurementCount)
	}
	return nil
}
