package rul

import (
	"strconv"
	"strings"
)

// Unit は Duration の単位を表す。値はコールバックモードで渡す単位キーと一致する。
type Unit string

const (
	UnitYear  Unit = "years"
	UnitMonth Unit = "months"
	UnitDay   Unit = "days"
	UnitHour  Unit = "hours"
)

// Units は大きい順の全単位を返す。
func Units() []Unit {
	return []Unit{UnitYear, UnitMonth, UnitDay, UnitHour}
}

// PluralForm は数詞に続く語形の種別。
type PluralForm int

const (
	One PluralForm = iota
	Few
	Many
)

func (f PluralForm) String() string {
	switch f {
	case One:
		return "one"
	case Few:
		return "few"
	default:
		return "many"
	}
}

// slavicForm はロシア語の3分岐規則で語形を選ぶ。
func slavicForm(n int) PluralForm {
	switch {
	case n%10 == 1 && n%100 != 11:
		return One
	case n%10 >= 2 && n%10 <= 4 && (n%100 < 12 || n%100 > 14):
		return Few
	default:
		return Many
	}
}

// Plural は言語と単位ごとの規則で n に対応する語形を返す。
// アラビア語は年のみ3形を持ち、他の単位は常に Many。
func Plural(lang Language, unit Unit, n int) PluralForm {
	switch lang {
	case Russian:
		return slavicForm(n)
	case Arabic:
		if unit != UnitYear {
			return Many
		}
		switch {
		case n == 1:
			return One
		case n <= 10:
			return Few
		default:
			return Many
		}
	default:
		if n == 1 {
			return One
		}
		return Many
	}
}

// grammar は言語ごとの単位語と連結規則。
type grammar struct {
	words map[Unit][3]string // One, Few, Many の順
	// trailing は単位語の直後に付ける文字列
	trailing map[Unit]string
	joiner   string
	// lastJoiner は最後の 2 要素の間に使う。空なら joiner と同じ
	lastJoiner string
}

var grammars = map[Language]grammar{
	English: {
		words: map[Unit][3]string{
			UnitYear:  {"year", "years", "years"},
			UnitMonth: {"month", "months", "months"},
			UnitDay:   {"day", "days", "days"},
			UnitHour:  {"hour", "hours", "hours"},
		},
		// 最後の単位の前にはカンマを付けない
		joiner:     ", ",
		lastJoiner: " ",
	},
	Arabic: {
		words: map[Unit][3]string{
			UnitYear:  {"سنة", "سنوات", "سنين"},
			UnitMonth: {"أشهر", "أشهر", "أشهر"},
			UnitDay:   {"يوماً", "يوماً", "يوماً"},
			UnitHour:  {"ساعة", "ساعة", "ساعة"},
		},
		// 年と月の後ろには空白が残る（既存表示との互換）
		trailing: map[Unit]string{
			UnitYear:  " ",
			UnitMonth: " ",
		},
		joiner: " و ",
	},
	Russian: {
		words: map[Unit][3]string{
			UnitYear:  {"год", "года", "лет"},
			UnitMonth: {"месяц", "месяца", "месяцев"},
			UnitDay:   {"день", "дня", "дней"},
			UnitHour:  {"час", "часа", "часов"},
		},
		joiner: " ",
	},
}

// UnitWord は言語の文法規則で n に対応する単位語を返す。
// 未対応の言語は English として扱う。
func UnitWord(lang Language, unit Unit, n int) string {
	if !lang.Valid() {
		lang = English
	}
	return grammars[lang].words[unit][Plural(lang, unit, n)]
}

// value は単位に対応する Duration の要素を返す。
func (d Duration) value(u Unit) int {
	switch u {
	case UnitYear:
		return d.Years
	case UnitMonth:
		return d.Months
	case UnitDay:
		return d.Days
	default:
		return d.Hours
	}
}

// Format は組み込みの文法規則で Duration を lang の文字列に整形する。
// 0 の要素は省略し、全要素が 0 の場合は空文字列を返す。
func Format(d Duration, lang Language) string {
	if !lang.Valid() {
		lang = English
	}
	g := grammars[lang]

	var parts []string
	for _, u := range Units() {
		n := d.value(u)
		if n == 0 {
			continue
		}
		parts = append(parts, strconv.Itoa(n)+" "+UnitWord(lang, u, n)+g.trailing[u])
	}
	return g.join(parts)
}

// join は parts を連結規則に従って結合する。
func (g grammar) join(parts []string) string {
	if len(parts) < 2 || g.lastJoiner == "" {
		return strings.Join(parts, g.joiner)
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], g.joiner) + g.lastJoiner + parts[last]
}
