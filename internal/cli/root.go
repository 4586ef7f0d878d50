package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/ousiassllc/transwatch/internal/core"
	"github.com/ousiassllc/transwatch/internal/i18n"
	"github.com/ousiassllc/transwatch/internal/infra"
	"github.com/ousiassllc/transwatch/internal/rul"
)

// ResolveConfigDir は設定ディレクトリを解決する。
// 優先順位: flagValue > 環境変数 TRANSWATCH_CONFIG_DIR > ~/.config/transwatch/
func ResolveConfigDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envDir := os.Getenv("TRANSWATCH_CONFIG_DIR"); envDir != "" {
		return envDir
	}

	// XDG_CONFIG_HOME を優先
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "transwatch")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "transwatch")
}

// env はサブコマンドが共有する実行環境。
type env struct {
	store     infra.YAMLStore
	configMgr core.ConfigManager
	cfg       *core.Config
	catalog   *i18n.Catalog
	styled    bool
}

// loadEnv は設定ディレクトリから設定とカタログを読み込む。
func loadEnv(configDir string) (*env, error) {
	store := infra.NewYAMLStore()
	configMgr := core.NewConfigManager(store, configDir)
	cfg, err := configMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗しました: %w", err)
	}

	catalogPath := cfg.CatalogFile
	if expanded, err := infra.ExpandTilde(catalogPath); err == nil {
		catalogPath = expanded
	}
	catalog, err := i18n.LoadCatalog(store, catalogPath)
	if err != nil {
		return nil, fmt.Errorf("翻訳カタログの読み込みに失敗しました: %w", err)
	}

	return &env{
		store:     store,
		configMgr: configMgr,
		cfg:       cfg,
		catalog:   catalog,
		styled:    isTerminal(os.Stdout),
	}, nil
}

// dataPath はデータファイルのパスを返す。~ は展開する。
func (e *env) dataPath() string {
	p := e.cfg.DataFile
	if expanded, err := infra.ExpandTilde(p); err == nil {
		p = expanded
	}
	return p
}

// openHistory は測定履歴を読み込む。
func (e *env) openHistory() (core.HistoryManager, error) {
	h, err := core.NewHistoryManager(e.store, e.dataPath())
	if err != nil {
		return nil, fmt.Errorf("測定履歴の読み込みに失敗しました: %w", err)
	}
	return h, nil
}

// language は --lang フラグの値、なければ設定の言語を返す。
func (e *env) language(flagValue string) rul.Language {
	if flagValue != "" {
		return rul.ParseLanguage(flagValue)
	}
	return e.cfg.Lang()
}

// mode は --mode フラグの値、なければ設定の整形方式を返す。
func (e *env) mode(flagValue string) rul.Mode {
	if flagValue != "" {
		return rul.ParseMode(flagValue)
	}
	return e.cfg.Mode()
}

// formatRUL はステップ数の RUL を言語と整形方式に従って文字列にする。
func (e *env) formatRUL(steps float64, lang rul.Language, mode rul.Mode) string {
	return rul.FormatSteps(steps, rul.Options{
		Mode:       mode,
		Language:   lang,
		Translator: e.catalog.Translator(lang),
	})
}

// isTerminal は w が端末に接続されているかを返す。
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// exitError はエラーメッセージを stderr に出力し、終了コード 1 で終了する。
func exitError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "エラー: "+format+"\n", args...)
	os.Exit(1)
}

// writeJSON は値を整形された JSON として w に出力する。
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("JSON 出力に失敗しました: %w", err)
	}
	return nil
}

// mustLoadEnv は loadEnv に失敗した場合に終了する。
func mustLoadEnv(configDir string) *env {
	e, err := loadEnv(configDir)
	if err != nil {
		exitError("%v", err)
	}
	return e
}

// ParseGlobalFlags は os.Args からグローバルフラグを解析する。
// --config-dir フラグの値と残りの引数を返す。
func ParseGlobalFlags() (configDir string, args []string) {
	rawArgs := os.Args[1:]
	for i := 0; i < len(rawArgs); i++ {
		if rawArgs[i] == "--config-dir" && i+1 < len(rawArgs) {
			configDir = rawArgs[i+1]
			i++ // skip next arg (value)
			continue
		}
		if strings.HasPrefix(rawArgs[i], "--config-dir=") {
			configDir = strings.TrimPrefix(rawArgs[i], "--config-dir=")
			continue
		}
		args = append(args, rawArgs[i])
	}
	return configDir, args
}
