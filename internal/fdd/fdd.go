package fdd

import (
	"fmt"
	"math"
	"strings"
)

// Severity は FDD 診断の重大度を表す。表示スタイルの選択に使う。
type Severity int

const (
	Unknown Severity = iota
	Normal
	Warning
	MinorAlarm
	MajorAlarm
)

func (s Severity) String() string {
	switch s {
	case Normal:
		return "normal"
	case Warning:
		return "warning"
	case MinorAlarm:
		return "minor-alarm"
	case MajorAlarm:
		return "major-alarm"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ParseSeverity は文字列から Severity を解析する。
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "warning":
		return Warning, nil
	case "minor-alarm":
		return MinorAlarm, nil
	case "major-alarm":
		return MajorAlarm, nil
	case "unknown":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("unknown severity: %q", s)
	}
}

// Rank は重大度の順位を返す。Normal < Warning < MinorAlarm < MajorAlarm。
// Unknown は判定不能として最も低い順位になる。
func (s Severity) Rank() int {
	switch s {
	case Normal:
		return 1
	case Warning:
		return 2
	case MinorAlarm:
		return 3
	case MajorAlarm:
		return 4
	default:
		return 0
	}
}

// MarshalText は Severity を文字列としてシリアライズする。
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText は文字列から Severity をデシリアライズする。
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Category は FDD コードに対応する診断カテゴリ。
type Category struct {
	Code           int      `json:"code"`
	LabelKey       string   `json:"label_key"`
	DescriptionKey string   `json:"description_key"`
	Label          string   `json:"label"`
	Description    string   `json:"description"`
	Severity       Severity `json:"severity"`
	HealthPercent  int      `json:"health_percent"`
}

// FDD コード
const (
	CodeNormalMode         = 1
	CodePartialDischarge   = 2
	CodeLowEnergyDischarge = 3
	CodeLowTempOverheating = 4
)

var categories = map[int]Category{
	CodeNormalMode: {
		LabelKey:       "normalMode",
		DescriptionKey: "normalModeDesc",
		Label:          "Normal mode",
		Description:    "Normal operating conditions",
		Severity:       Normal,
		HealthPercent:  100,
	},
	CodePartialDischarge: {
		LabelKey:       "partialDischarge",
		DescriptionKey: "partialDischargeDesc",
		Label:          "Partial discharge",
		Description:    "Local dielectric breakdown in gas-filled cavities",
		Severity:       Warning,
		HealthPercent:  75,
	},
	CodeLowEnergyDischarge: {
		LabelKey:       "lowEnergyDischarge",
		DescriptionKey: "lowEnergyDischargeDesc",
		Label:          "Low energy discharge",
		Description:    "Sparking or arc discharges in poor contact connections",
		Severity:       MinorAlarm,
		HealthPercent:  50,
	},
	CodeLowTempOverheating: {
		LabelKey:       "lowTempOverheating",
		DescriptionKey: "lowTempOverheatingDesc",
		Label:          "Low-temperature overheating",
		Description:    "Oil flow disruption in cooling channels",
		Severity:       MajorAlarm,
		HealthPercent:  15,
	},
}

var unknownCategory = Category{
	LabelKey:       "unknown",
	DescriptionKey: "unknownDesc",
	Label:          "Unknown",
	Description:    "Unknown fault condition",
	Severity:       Unknown,
	HealthPercent:  0,
}

// Classify は FDD コードを診断カテゴリに変換する。
// 1〜4 以外のコードは Unknown カテゴリになる。
func Classify(code int) Category {
	c, ok := categories[code]
	if !ok {
		c = unknownCategory
	}
	c.Code = code
	return c
}

// ClassifyValue は保存されている浮動小数点の FDD 値を最も近い整数に丸めて分類する。
// NaN と無限大は Unknown。
func ClassifyValue(v float64) Category {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
		return Classify(0)
	}
	return Classify(int(math.Round(v)))
}

// Codes は既知の FDD コードを昇順で返す。
func Codes() []int {
	return []int{CodeNormalMode, CodePartialDischarge, CodeLowEnergyDischarge, CodeLowTempOverheating}
}

// Localize はラベルと説明文を lookup で翻訳したカテゴリを返す。
// lookup がキーをそのまま返した場合（未翻訳）は既定の英語表記を残す。
func (c Category) Localize(lookup func(key string) string) Category {
	if lookup == nil {
		return c
	}
	if v := lookup(c.LabelKey); v != "" && v != c.LabelKey {
		c.Label = v
	}
	if v := lookup(c.DescriptionKey); v != "" && v != c.DescriptionKey {
		c.Description = v
	}
	return c
}
