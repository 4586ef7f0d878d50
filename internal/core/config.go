package core

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/ousiassllc/transwatch/internal/rul"
)

// YAMLStore は YAML ファイルの読み書きを担う。
// infra.YAMLStore と同じインターフェースで、import cycle を回避するために core で定義する。
type YAMLStore interface {
	Read(path string, dest interface{}) error
	Write(path string, data interface{}) error
	Exists(path string) bool
}

// ConfigManager はアプリケーション設定の管理を担う。
type ConfigManager interface {
	LoadConfig() (*Config, error)
	SaveConfig(config *Config) error
	GetConfig() *Config
	UpdateConfig(fn func(*Config)) error
	ConfigDir() string
	ConfigPath() string
}

type configManager struct {
	mu        sync.RWMutex
	store     YAMLStore
	configDir string
	cached    *Config
}

// NewConfigManager は ConfigManager の実装を返す。
func NewConfigManager(store YAMLStore, configDir string) ConfigManager {
	return &configManager{
		store:     store,
		configDir: configDir,
	}
}

// ConfigPath は config.yaml のパスを返す。
func (m *configManager) ConfigPath() string {
	return filepath.Join(m.configDir, "config.yaml")
}

// LoadConfig は config.yaml を読み込み、キャッシュに保存する。
// ファイルが存在しない場合はデフォルト設定を返す。
// 言語と整形方式は正規化し、空や不正な値はデフォルトに戻す。
func (m *configManager) LoadConfig() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := DefaultConfig()
	if err := m.store.Read(m.ConfigPath(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", m.ConfigPath(), err)
	}
	normalizeConfig(&cfg)
	m.cached = &cfg
	c := cfg
	return &c, nil
}

// SaveConfig は設定を config.yaml に書き込み、キャッシュを更新する。
func (m *configManager) SaveConfig(config *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Write(m.ConfigPath(), config); err != nil {
		return err
	}
	c := *config
	m.cached = &c
	return nil
}

// GetConfig はキャッシュされた設定を返す。
// LoadConfig が呼ばれていない場合はデフォルト設定を返す。
func (m *configManager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.cached == nil {
		cfg := DefaultConfig()
		return &cfg
	}
	c := *m.cached
	return &c
}

// UpdateConfig は設定をアトミックに変更して保存する。
func (m *configManager) UpdateConfig(fn func(*Config)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cfg Config
	if m.cached != nil {
		cfg = *m.cached
	} else {
		cfg = DefaultConfig()
	}

	fn(&cfg)
	normalizeConfig(&cfg)

	if err := m.store.Write(m.ConfigPath(), &cfg); err != nil {
		return err
	}
	m.cached = &cfg
	return nil
}

// ConfigDir は設定ディレクトリのパスを返す。
func (m *configManager) ConfigDir() string {
	return m.configDir
}

// normalizeConfig は設定値を正規化する。
func normalizeConfig(cfg *Config) {
	def := DefaultConfig()

	lang := rul.ParseLanguage(cfg.Language)
	if cfg.Language != "" && string(lang) != cfg.Language {
		slog.Debug("config language normalized", "from", cfg.Language, "to", lang)
	}
	cfg.Language = string(lang)
	cfg.DisplayMode = string(rul.ParseMode(cfg.DisplayMode))

	if cfg.DataFile == "" {
		cfg.DataFile = def.DataFile
	}
	if cfg.Watch.Debounce.Duration <= 0 {
		cfg.Watch.Debounce = def.Watch.Debounce
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}
