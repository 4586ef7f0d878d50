package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ousiassllc/transwatch/internal/fdd"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
)

// RunFDD は fdd サブコマンドを実行する。
func RunFDD(configDir string, args []string) {
	e := mustLoadEnv(configDir)
	if err := runFDD(e, args, os.Stdout); err != nil {
		exitError("%v", err)
	}
}

func runFDD(e *env, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("fdd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	langFlag := fs.String("lang", "", "表示言語: en, ar, ru")
	jsonFlag := fs.Bool("json", false, "JSON 形式で出力")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("使い方: transwatch fdd <code> [--lang L] [--json]")
	}

	value, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("FDD コードが不正です: %q", fs.Arg(0))
	}

	lang := e.language(*langFlag)
	cat := fdd.ClassifyValue(value).Localize(e.catalog.Lookup(lang))

	if *jsonFlag {
		return writeJSON(w, cat)
	}

	badge := atoms.SeveritySymbol(cat.Severity) + " " + cat.Label
	if e.styled {
		badge = atoms.RenderSeverityBadge(cat.Severity, cat.Label)
	}
	fmt.Fprintln(w, badge)
	fmt.Fprintf(w, "  %s\n", cat.Description)
	fmt.Fprintf(w, "  %s: %s (%d%%)\n", e.catalog.T(lang, "healthIndex"), cat.Severity, cat.HealthPercent)
	return nil
}
