package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ousiassllc/transwatch/internal/core"
	"github.com/ousiassllc/transwatch/internal/rul"
)

// RunConfig は config サブコマンドを実行する。
func RunConfig(configDir string, args []string) {
	e := mustLoadEnv(configDir)
	if err := runConfig(e, args, os.Stdout); err != nil {
		exitError("%v", err)
	}
}

func runConfig(e *env, args []string, w io.Writer) error {
	if len(args) > 0 && args[0] == "set" {
		return runConfigSet(e, args[1:], w)
	}

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	jsonFlag := fs.Bool("json", false, "JSON 形式で出力")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := e.configMgr.GetConfig()
	if *jsonFlag {
		return writeJSON(w, cfg)
	}

	fmt.Fprintln(w, "TransWatch Config:")
	fmt.Fprintf(w, "  Path:          %s\n", e.configMgr.ConfigPath())
	fmt.Fprintf(w, "  Language:      %s\n", cfg.Lang())
	fmt.Fprintf(w, "  Display Mode:  %s\n", cfg.Mode())
	fmt.Fprintf(w, "  Data File:     %s\n", cfg.DataFile)
	fmt.Fprintf(w, "  Catalog File:  %s\n", cfg.CatalogFile)
	fmt.Fprintln(w, "  Watch:")
	fmt.Fprintf(w, "    Enabled:     %v\n", cfg.Watch.Enabled)
	fmt.Fprintf(w, "    Debounce:    %s\n", cfg.Watch.Debounce.Duration)
	fmt.Fprintln(w, "  Log:")
	fmt.Fprintf(w, "    Level:       %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "    File:        %s\n", cfg.Log.File)
	fmt.Fprintf(w, "    Rotation:    %dMB x %d, %d days\n", cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	return nil
}

// runConfigSet は設定値を 1 つ更新して保存する。
func runConfigSet(e *env, args []string, w io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("使い方: transwatch config set <key> <value>")
	}
	key, value := args[0], args[1]

	apply, err := configSetter(key, value)
	if err != nil {
		return err
	}
	if err := e.configMgr.UpdateConfig(apply); err != nil {
		return fmt.Errorf("設定の保存に失敗しました: %w", err)
	}

	fmt.Fprintf(w, "%s を %s に設定しました\n", key, value)
	return nil
}

// configSetter はキーに対応する設定更新関数を返す。
func configSetter(key, value string) (func(*core.Config), error) {
	switch key {
	case "language":
		lang := rul.Language(value)
		if !lang.Valid() {
			return nil, fmt.Errorf("language は en, ar, ru のいずれかを指定してください")
		}
		return func(c *core.Config) { c.Language = value }, nil
	case "display_mode":
		switch rul.Mode(value) {
		case rul.ModeGrammar, rul.ModeCatalog, rul.ModeCompact:
		default:
			return nil, fmt.Errorf("display_mode は grammar, catalog, compact のいずれかを指定してください")
		}
		return func(c *core.Config) { c.DisplayMode = value }, nil
	case "data_file":
		return func(c *core.Config) { c.DataFile = value }, nil
	case "catalog_file":
		return func(c *core.Config) { c.CatalogFile = value }, nil
	case "watch.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("watch.enabled は true または false を指定してください")
		}
		return func(c *core.Config) { c.Watch.Enabled = b }, nil
	case "watch.debounce":
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("watch.debounce は 200ms のような期間を指定してください")
		}
		return func(c *core.Config) { c.Watch.Debounce = core.Interval{Duration: d} }, nil
	case "log.level":
		switch value {
		case "debug", "info", "warn", "warning", "error":
		default:
			return nil, fmt.Errorf("log.level は debug, info, warn, error のいずれかを指定してください")
		}
		return func(c *core.Config) { c.Log.Level = value }, nil
	case "log.file":
		return func(c *core.Config) { c.Log.File = value }, nil
	default:
		return nil, fmt.Errorf("未知の設定キーです: %s", key)
	}
}
