package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ousiassllc/transwatch/internal/fdd"
	"github.com/ousiassllc/transwatch/internal/rul"
)

// fileReader は Reader のテスト用実装。ファイルが存在しない場合は dest を変更しない。
type fileReader struct{}

func (fileReader) Read(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, dest)
}

func TestDefault_CoversFDDKeysInAllLanguages(t *testing.T) {
	c := Default()
	codes := append(fdd.Codes(), 0)
	for _, lang := range rul.Languages() {
		for _, code := range codes {
			cat := fdd.Classify(code)
			for _, key := range []string{cat.LabelKey, cat.DescriptionKey} {
				if got := c.T(lang, key); got == key {
					t.Errorf("T(%s, %q) is untranslated", lang, key)
				}
			}
		}
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.entries[rul.English]["years"] = "mutated"
	if got := Default().T(rul.English, "years"); got != "years" {
		t.Errorf("Default() shares state: T(en, years) = %q", got)
	}
}

func TestCatalog_T_Fallbacks(t *testing.T) {
	c := Default()
	c.entries[rul.English]["onlyEnglish"] = "English only"

	if got := c.T(rul.Russian, "onlyEnglish"); got != "English only" {
		t.Errorf("T(ru, onlyEnglish) = %q, want English fallback", got)
	}
	if got := c.T(rul.Arabic, "missing.key"); got != "missing.key" {
		t.Errorf("T(ar, missing.key) = %q, want key itself", got)
	}
}

func TestCatalog_Translator_WithFormatFunc(t *testing.T) {
	c := Default()
	tests := []struct {
		lang rul.Language
		d    rul.Duration
		want string
	}{
		{rul.English, rul.Duration{Years: 1, Days: 2}, "1 year 2 days"},
		{rul.English, rul.Duration{}, "0 hours"},
		{rul.Russian, rul.Duration{Years: 2, Months: 5, Hours: 1}, "2 года 5 месяцев 1 час"},
		{rul.Russian, rul.Duration{}, "0 часов"},
		{rul.Arabic, rul.Duration{Years: 15, Months: 1}, "15 سنين 1 أشهر"},
	}
	for _, tt := range tests {
		if got := rul.FormatFunc(tt.d, c.Translator(tt.lang)); got != tt.want {
			t.Errorf("FormatFunc(%+v, %s) = %q, want %q", tt.d, tt.lang, got, tt.want)
		}
	}
}

func TestLoadCatalog_MergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := "en:\n  rul: RUL\nru:\n  rul: Ресурс\nfr:\n  rul: Durée\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(fileReader{}, path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if got := c.T(rul.English, "rul"); got != "RUL" {
		t.Errorf("T(en, rul) = %q, want %q", got, "RUL")
	}
	if got := c.T(rul.Russian, "rul"); got != "Ресурс" {
		t.Errorf("T(ru, rul) = %q, want %q", got, "Ресурс")
	}
	// 上書きしていないキーは既定値のまま
	if got := c.T(rul.Russian, "history"); got != "История" {
		t.Errorf("T(ru, history) = %q, want default", got)
	}
}

func TestLoadCatalog_MissingFileUsesDefault(t *testing.T) {
	c, err := LoadCatalog(fileReader{}, filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if got := c.T(rul.English, "hours"); got != "hours" {
		t.Errorf("T(en, hours) = %q", got)
	}
}

func TestLoadCatalog_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("en: [unterminated"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(fileReader{}, path); err == nil {
		t.Error("LoadCatalog() with invalid YAML should fail")
	}
}

func TestCatalog_Keys_Sorted(t *testing.T) {
	keys := Default().Keys(rul.English)
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("Keys not sorted at %d: %q > %q", i, keys[i-1], keys[i])
		}
	}
}
