package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ousiassllc/transwatch/internal/fdd"
	"github.com/ousiassllc/transwatch/internal/rul"
)

var (
	// ErrInvalidMeasurement は測定値が不正な場合に返される。
	ErrInvalidMeasurement = errors.New("invalid measurement")
	// ErrMeasurementNotFound は指定 ID の測定値が存在しない場合に返される。
	ErrMeasurementNotFound = errors.New("measurement not found")
	// ErrTransformerNotFound は指定した変圧器の測定値が存在しない場合に返される。
	ErrTransformerNotFound = errors.New("transformer not found")
)

// Measurement は1回分の溶存ガス測定と診断結果。
// FDD と RUL は予測モデルの出力をそのまま保持する。
type Measurement struct {
	ID          string    `yaml:"id" json:"id"`
	Transformer string    `yaml:"transformer" json:"transformer"`
	CO          float64   `yaml:"co" json:"co"`
	H2          float64   `yaml:"h2" json:"h2"`
	C2H2        float64   `yaml:"c2h2" json:"c2h2"`
	C2H4        float64   `yaml:"c2h4" json:"c2h4"`
	FDD         float64   `yaml:"fdd" json:"fdd"`
	RUL         float64   `yaml:"rul" json:"rul"`
	Temperature *float64  `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	Timestamp   time.Time `yaml:"timestamp" json:"timestamp"`
}

// NormalizeTransformerName は変圧器名を小文字化し前後の空白を除く。
func NormalizeTransformerName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate は測定値を検証する。ガス濃度は有限かつ 0 以上でなければならない。
func (m Measurement) Validate() error {
	if NormalizeTransformerName(m.Transformer) == "" {
		return fmt.Errorf("%w: transformer name is required", ErrInvalidMeasurement)
	}
	gases := []struct {
		name  string
		value float64
	}{
		{"co", m.CO},
		{"h2", m.H2},
		{"c2h2", m.C2H2},
		{"c2h4", m.C2H4},
	}
	for _, g := range gases {
		if math.IsNaN(g.value) || math.IsInf(g.value, 0) || g.value < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrInvalidMeasurement, g.name, g.value)
		}
	}
	if math.IsNaN(m.RUL) || math.IsInf(m.RUL, 0) {
		return fmt.Errorf("%w: rul must be finite", ErrInvalidMeasurement)
	}
	if m.Temperature != nil && (math.IsNaN(*m.Temperature) || math.IsInf(*m.Temperature, 0)) {
		return fmt.Errorf("%w: temperature must be finite", ErrInvalidMeasurement)
	}
	return nil
}

// Category は FDD 値の診断カテゴリを返す。
func (m Measurement) Category() fdd.Category {
	return fdd.ClassifyValue(m.FDD)
}

// Remaining は RUL を分解した Duration を返す。
func (m Measurement) Remaining() rul.Duration {
	return rul.Decompose(m.RUL)
}

// HistoryFilter は測定履歴の絞り込み条件。ゼロ値は条件なし。
type HistoryFilter struct {
	Transformer string
	Since       time.Time
	Until       time.Time
	Limit       int
}

// Match は測定値が条件に一致するかを返す。Until は含まない。
func (f HistoryFilter) Match(m Measurement) bool {
	if f.Transformer != "" && NormalizeTransformerName(f.Transformer) != m.Transformer {
		return false
	}
	if !f.Since.IsZero() && m.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && !m.Timestamp.Before(f.Until) {
		return false
	}
	return true
}

// TransformerSummary は変圧器ごとの最新状態。
type TransformerSummary struct {
	Name             string       `json:"name"`
	MeasurementCount int          `json:"measurement_count"`
	Latest           Measurement  `json:"latest"`
	Category         fdd.Category `json:"category"`
}

// Interval は time.Duration のラッパーで、YAML シリアライズをサポートする。
type Interval struct {
	time.Duration
}

// MarshalYAML は Interval を文字列としてシリアライズする。
func (d Interval) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// UnmarshalYAML は文字列から Interval をデシリアライズする。
func (d *Interval) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config はアプリケーション設定。
type Config struct {
	Language    string      `yaml:"language"`
	DisplayMode string      `yaml:"display_mode"`
	DataFile    string      `yaml:"data_file"`
	CatalogFile string      `yaml:"catalog_file,omitempty"`
	Watch       WatchConfig `yaml:"watch"`
	Log         LogConfig   `yaml:"log"`
}

// WatchConfig はデータファイル監視の設定。
type WatchConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Debounce Interval `yaml:"debounce"`
}

// LogConfig はログの設定。
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Lang は設定された表示言語を返す。
func (c Config) Lang() rul.Language {
	return rul.ParseLanguage(c.Language)
}

// Mode は設定された RUL の整形方式を返す。
func (c Config) Mode() rul.Mode {
	return rul.ParseMode(c.DisplayMode)
}

// DefaultConfig はデフォルト設定を返す。
func DefaultConfig() Config {
	return Config{
		Language:    string(rul.English),
		DisplayMode: string(rul.ModeGrammar),
		DataFile:    "~/.config/transwatch/measurements.yaml",
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: Interval{Duration: 200 * time.Millisecond},
		},
		Log: LogConfig{
			Level:      "info",
			File:       "~/.config/transwatch/transwatch.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
