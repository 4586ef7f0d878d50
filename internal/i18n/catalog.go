package i18n

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ousiassllc/transwatch/internal/rul"
)

//go:embed default.yaml
var defaultCatalogYAML []byte

// Reader は YAML ファイルを読み込む。infra.YAMLStore が満たす。
type Reader interface {
	Read(path string, dest interface{}) error
}

// Catalog は言語ごとの翻訳辞書。読み込み後は読み取り専用で、並行に使用してよい。
type Catalog struct {
	entries map[rul.Language]map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default は埋め込みの既定カタログを返す。
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := parse(defaultCatalogYAML)
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog.clone()
}

// LoadCatalog は既定カタログにユーザーカタログ（path）を重ねて返す。
// path が空またはファイルが存在しない場合は既定カタログのみを返す。
func LoadCatalog(r Reader, path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	var raw map[string]map[string]string
	if err := r.Read(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c.merge(raw)
	c.fillCoverage()
	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	c := &Catalog{entries: make(map[rul.Language]map[string]string)}
	c.merge(raw)
	c.fillCoverage()
	return c, nil
}

// merge は raw の内容を上書きで取り込む。未対応の言語は無視する。
func (c *Catalog) merge(raw map[string]map[string]string) {
	for tag, dict := range raw {
		lang := rul.Language(tag)
		if !lang.Valid() {
			continue
		}
		dst, ok := c.entries[lang]
		if !ok {
			dst = make(map[string]string, len(dict))
			c.entries[lang] = dst
		}
		for k, v := range dict {
			dst[k] = v
		}
	}
}

// fillCoverage は各言語に欠けているキーを英語で補う。
func (c *Catalog) fillCoverage() {
	en := c.entries[rul.English]
	for _, lang := range rul.Languages() {
		if lang == rul.English {
			continue
		}
		dict, ok := c.entries[lang]
		if !ok {
			dict = make(map[string]string, len(en))
			c.entries[lang] = dict
		}
		for k, v := range en {
			if _, exists := dict[k]; !exists {
				dict[k] = v
			}
		}
	}
}

func (c *Catalog) clone() *Catalog {
	out := &Catalog{entries: make(map[rul.Language]map[string]string, len(c.entries))}
	for lang, dict := range c.entries {
		d := make(map[string]string, len(dict))
		for k, v := range dict {
			d[k] = v
		}
		out.entries[lang] = d
	}
	return out
}

// T は lang のキーに対応する文字列を返す。
// 見つからない場合は英語、それもなければキー自体を返す。
func (c *Catalog) T(lang rul.Language, key string) string {
	if dict, ok := c.entries[lang]; ok {
		if v, ok := dict[key]; ok {
			return v
		}
	}
	if v, ok := c.entries[rul.English][key]; ok {
		return v
	}
	return key
}

// Lookup は lang に固定した翻訳関数を返す。
func (c *Catalog) Lookup(lang rul.Language) func(key string) string {
	return func(key string) string {
		return c.T(lang, key)
	}
}

// Translator は rul.FormatFunc 用の単位名翻訳関数を返す。
// "<unit>.one" / "<unit>.few" / "<unit>.many" があれば言語の複数形規則で選び、
// なければ "<unit>" にフォールバックする。
func (c *Catalog) Translator(lang rul.Language) rul.Translator {
	return func(unitKey string, count int) string {
		form := rul.Plural(lang, rul.Unit(unitKey), count)
		if dict, ok := c.entries[lang]; ok {
			if v, ok := dict[unitKey+"."+form.String()]; ok {
				return v
			}
		}
		return c.T(lang, unitKey)
	}
}

// Keys は lang の全キーをソートして返す。
func (c *Catalog) Keys(lang rul.Language) []string {
	dict := c.entries[lang]
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
