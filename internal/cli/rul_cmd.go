package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ousiassllc/transwatch/internal/rul"
)

// rulResult は rul サブコマンドの JSON 出力。
type rulResult struct {
	Steps    float64      `json:"steps"`
	Duration rul.Duration `json:"duration"`
	Text     string       `json:"text"`
	Language rul.Language `json:"language"`
	Mode     rul.Mode     `json:"mode"`
}

// RunRUL は rul サブコマンドを実行する。
func RunRUL(configDir string, args []string) {
	e := mustLoadEnv(configDir)
	if err := runRUL(e, args, os.Stdout); err != nil {
		exitError("%v", err)
	}
}

func runRUL(e *env, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("rul", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	langFlag := fs.String("lang", "", "表示言語: en, ar, ru")
	modeFlag := fs.String("mode", "", "整形方式: grammar, catalog, compact")
	jsonFlag := fs.Bool("json", false, "JSON 形式で出力")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("使い方: transwatch rul <steps> [--lang L] [--mode M] [--json]")
	}

	steps, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return fmt.Errorf("ステップ数が不正です: %q", fs.Arg(0))
	}

	lang := e.language(*langFlag)
	mode := e.mode(*modeFlag)
	text := e.formatRUL(steps, lang, mode)

	if *jsonFlag {
		return writeJSON(w, rulResult{
			Steps:    steps,
			Duration: rul.Decompose(steps),
			Text:     text,
			Language: lang,
			Mode:     mode,
		})
	}

	_, err = fmt.Fprintln(w, text)
	return err
}
