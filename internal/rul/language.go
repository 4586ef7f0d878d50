package rul

import (
	"strings"

	"golang.org/x/text/language"
)

// Language は表示言語を表す。en, ar, ru の閉じた集合。
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	Russian Language = "ru"
)

// Languages はサポートする全言語を表示順で返す。
func Languages() []Language {
	return []Language{English, Arabic, Russian}
}

func (l Language) String() string {
	return string(l)
}

// Valid はサポート対象の言語かを返す。
func (l Language) Valid() bool {
	switch l {
	case English, Arabic, Russian:
		return true
	}
	return false
}

// RTL は右から左に書く言語かを返す。
func (l Language) RTL() bool {
	return l == Arabic
}

// Next は表示順で次の言語を返す。末尾の次は先頭に戻る。
func (l Language) Next() Language {
	langs := Languages()
	for i, c := range langs {
		if c == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return English
}

// ParseLanguage は BCP 47 形式の言語タグ（"ru-RU", "AR", "en_US" など）から
// 基本言語を取り出す。解析できないタグや未対応の言語は English にフォールバックする。
func ParseLanguage(tag string) Language {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return English
	}
	t, err := language.Parse(tag)
	if err != nil {
		return English
	}
	base, _ := t.Base()
	if l := Language(base.String()); l.Valid() {
		return l
	}
	return English
}
