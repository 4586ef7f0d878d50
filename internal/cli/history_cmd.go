package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ousiassllc/transwatch/internal/core"
)

// RunHistory は history サブコマンドを実行する。
func RunHistory(configDir string, args []string) {
	e := mustLoadEnv(configDir)
	if err := runHistory(e, args, os.Stdout); err != nil {
		exitError("%v", err)
	}
}

func runHistory(e *env, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	transformer := fs.String("transformer", "", "特定の変圧器のみ表示")
	since := fs.String("since", "", "この日時以降 (RFC3339)")
	until := fs.String("until", "", "この日時より前 (RFC3339)")
	limit := fs.Int("limit", 0, "表示件数の上限")
	langFlag := fs.String("lang", "", "表示言語: en, ar, ru")
	jsonFlag := fs.Bool("json", false, "JSON 形式で出力")

	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := core.HistoryFilter{Transformer: *transformer, Limit: *limit}
	var err error
	if filter.Since, err = parseTimeFlag("since", *since); err != nil {
		return err
	}
	if filter.Until, err = parseTimeFlag("until", *until); err != nil {
		return err
	}

	h, err := e.openHistory()
	if err != nil {
		return err
	}
	items := h.List(filter)

	if *jsonFlag {
		if items == nil {
			items = []core.Measurement{}
		}
		return writeJSON(w, struct {
			Measurements []core.Measurement `json:"measurements"`
		}{Measurements: items})
	}

	lang := e.language(*langFlag)
	if len(items) == 0 {
		fmt.Fprintln(w, e.catalog.T(lang, "noMeasurements"))
		return nil
	}

	lookup := e.catalog.Lookup(lang)
	mode := e.cfg.Mode()
	fmt.Fprintf(w, "%s (%d):\n\n", e.catalog.T(lang, "history"), len(items))
	for _, m := range items {
		cat := m.Category().Localize(lookup)
		fmt.Fprintf(w, "  %s  %-12s  %-28s  %s\n",
			m.Timestamp.Format("2006-01-02 15:04"),
			m.Transformer,
			cat.Label,
			orDash(e.formatRUL(m.RUL, lang, mode)),
		)
		fmt.Fprintf(w, "    id: %s\n", m.ID)
	}
	return nil
}

// parseTimeFlag は RFC3339 形式の日時フラグを解析する。空文字列はゼロ値を返す。
func parseTimeFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s は RFC3339 形式で指定してください: %q", name, value)
	}
	return t, nil
}
