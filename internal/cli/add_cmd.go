package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ousiassllc/transwatch/internal/core"
)

// RunAdd は add サブコマンドを実行する。
func RunAdd(configDir string, args []string) {
	e := mustLoadEnv(configDir)
	if err := runAdd(e, args, os.Stdout); err != nil {
		exitError("%v", err)
	}
}

func runAdd(e *env, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	transformer := fs.String("transformer", "", "変圧器名 (必須)")
	co := fs.Float64("co", 0, "CO 濃度 (ppm)")
	h2 := fs.Float64("h2", 0, "H2 濃度 (ppm)")
	c2h2 := fs.Float64("c2h2", 0, "C2H2 濃度 (ppm)")
	c2h4 := fs.Float64("c2h4", 0, "C2H4 濃度 (ppm)")
	fddCode := fs.Float64("fdd", 0, "FDD 分類コード (1〜4)")
	rulSteps := fs.Float64("rul", 0, "RUL (12 時間ステップ数)")
	temp := fs.String("temp", "", "温度 (℃)")
	atFlag := fs.String("at", "", "測定日時 (RFC3339、省略時は現在時刻)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *transformer == "" {
		return fmt.Errorf("--transformer フラグは必須です")
	}

	m := core.Measurement{
		Transformer: *transformer,
		CO:          *co,
		H2:          *h2,
		C2H2:        *c2h2,
		C2H4:        *c2h4,
		FDD:         *fddCode,
		RUL:         *rulSteps,
	}

	if *temp != "" {
		v, err := strconv.ParseFloat(*temp, 64)
		if err != nil {
			return fmt.Errorf("--temp の値が不正です: %q", *temp)
		}
		m.Temperature = &v
	}

	if *atFlag != "" {
		ts, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			return fmt.Errorf("--at は RFC3339 形式で指定してください: %q", *atFlag)
		}
		m.Timestamp = ts
	}

	h, err := e.openHistory()
	if err != nil {
		return err
	}
	added, err := h.Add(m)
	if err != nil {
		return err
	}

	lang := e.cfg.Lang()
	cat := added.Category().Localize(e.catalog.Lookup(lang))
	fmt.Fprintf(w, "測定値 '%s' を追加しました (%s: %s, RUL: %s)\n",
		added.ID, added.Transformer, cat.Label, orDash(e.formatRUL(added.RUL, lang, e.cfg.Mode())))
	return nil
}

// orDash は空文字列を "-" に置き換える。
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
