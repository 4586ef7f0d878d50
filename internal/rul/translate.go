package rul

import (
	"strconv"
	"strings"
)

// Translator は単位キー（"years" など）と数値から単位名を返す。
// 既存の翻訳カタログを流用する場合に使う。
type Translator func(unitKey string, count int) string

// FormatFunc は tr が返す単位名で Duration を整形する。
// 0 の要素は省略する。全要素が 0 の場合は "0 <hours>" を返す。
func FormatFunc(d Duration, tr Translator) string {
	var parts []string
	for _, u := range Units() {
		n := d.value(u)
		if n < 1 {
			continue
		}
		parts = append(parts, strconv.Itoa(n)+" "+tr(string(u), n))
	}
	if len(parts) == 0 {
		return strconv.Itoa(d.Hours) + " " + tr(string(UnitHour), d.Hours)
	}
	return strings.Join(parts, " ")
}

// FormatCompact は "1y 2m 3d 4h" 形式の短い表記を返す。時間は常に表示する。
func FormatCompact(d Duration) string {
	var b strings.Builder
	if d.Years > 0 {
		b.WriteString(strconv.Itoa(d.Years) + "y ")
	}
	if d.Months > 0 {
		b.WriteString(strconv.Itoa(d.Months) + "m ")
	}
	if d.Days > 0 {
		b.WriteString(strconv.Itoa(d.Days) + "d ")
	}
	if d.Hours > 0 {
		b.WriteString(strconv.Itoa(d.Hours) + "h")
	} else {
		b.WriteString("0h")
	}
	return b.String()
}

// Mode は整形方式を表す。
type Mode string

const (
	ModeGrammar Mode = "grammar"
	ModeCatalog Mode = "catalog"
	ModeCompact Mode = "compact"
)

// ParseMode は文字列から Mode を解析する。未知の値は ModeGrammar として扱う。
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCatalog:
		return ModeCatalog
	case ModeCompact:
		return ModeCompact
	default:
		return ModeGrammar
	}
}

// Options は FormatSteps の整形方法を指定する。
type Options struct {
	Mode       Mode
	Language   Language
	Translator Translator
}

// FormatSteps はステップ数の RUL を分解して整形する。
// ModeCatalog で Translator が nil の場合と ModeCompact は短い表記になる。
func FormatSteps(steps float64, opts Options) string {
	d := Decompose(steps)
	switch opts.Mode {
	case ModeCatalog:
		if opts.Translator != nil {
			return FormatFunc(d, opts.Translator)
		}
	case ModeCompact:
	default:
		return Format(d, opts.Language)
	}
	return FormatCompact(d)
}
