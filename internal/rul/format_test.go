package rul

import (
	"fmt"
	"testing"
)

func TestFormat_English(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Duration{Years: 1}, "1 year"},
		{Duration{Years: 2}, "2 years"},
		{Duration{Months: 1, Days: 1}, "1 month 1 day"},
		{Duration{Years: 1, Months: 2, Days: 3, Hours: 4}, "1 year, 2 months, 3 days 4 hours"},
		{Duration{Years: 1, Months: 2, Days: 3}, "1 year, 2 months 3 days"},
		{Duration{Years: 1, Days: 3}, "1 year 3 days"},
		{Duration{Years: 3, Hours: 1}, "3 years 1 hour"},
		{Duration{Days: 0, Hours: 24}, "24 hours"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.d, English); got != tt.want {
				t.Errorf("Format(%+v, en) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormat_Arabic(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
		want string
	}{
		{"single year", Duration{Years: 1}, "1 سنة "},
		{"few years", Duration{Years: 5}, "5 سنوات "},
		{"ten years", Duration{Years: 10}, "10 سنوات "},
		{"many years", Duration{Years: 15}, "15 سنين "},
		{"days and hours", Duration{Days: 3, Hours: 4}, "3 يوماً و 4 ساعة"},
		{"all units", Duration{Years: 1, Months: 2, Days: 3, Hours: 4}, "1 سنة  و 2 أشهر  و 3 يوماً و 4 ساعة"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.d, Arabic); got != tt.want {
				t.Errorf("Format(%+v, ar) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormat_RussianYears(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{1, "год"},
		{2, "года"},
		{4, "года"},
		{5, "лет"},
		{11, "лет"},
		{12, "лет"},
		{14, "лет"},
		{21, "год"},
		{22, "года"},
		{111, "лет"},
	}
	for _, tt := range tests {
		got := Format(Duration{Years: tt.years}, Russian)
		want := fmt.Sprintf("%d %s", tt.years, tt.want)
		if got != want {
			t.Errorf("Format(years=%d, ru) = %q, want %q", tt.years, got, want)
		}
	}
}

func TestFormat_RussianAllUnits(t *testing.T) {
	d := Duration{Years: 1, Months: 2, Days: 5, Hours: 21}
	want := "1 год 2 месяца 5 дней 21 час"
	if got := Format(d, Russian); got != want {
		t.Errorf("Format(%+v, ru) = %q, want %q", d, got, want)
	}

	d = Duration{Months: 11, Days: 1, Hours: 3}
	want = "11 месяцев 1 день 3 часа"
	if got := Format(d, Russian); got != want {
		t.Errorf("Format(%+v, ru) = %q, want %q", d, got, want)
	}
}

func TestFormat_ZeroDurationIsEmpty(t *testing.T) {
	for _, lang := range Languages() {
		if got := Format(Decompose(0), lang); got != "" {
			t.Errorf("Format(zero, %s) = %q, want empty", lang, got)
		}
	}
}

func TestFormat_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	d := Duration{Years: 2, Days: 1}
	if got, want := Format(d, Language("fr")), Format(d, English); got != want {
		t.Errorf("Format(fr) = %q, want %q", got, want)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		lang Language
		unit Unit
		n    int
		want PluralForm
	}{
		{English, UnitDay, 1, One},
		{English, UnitDay, 0, Many},
		{English, UnitDay, 2, Many},
		{Arabic, UnitYear, 1, One},
		{Arabic, UnitYear, 2, Few},
		{Arabic, UnitYear, 11, Many},
		{Arabic, UnitMonth, 1, Many},
		{Russian, UnitHour, 1, One},
		{Russian, UnitHour, 3, Few},
		{Russian, UnitHour, 13, Many},
		{Russian, UnitHour, 101, One},
	}
	for _, tt := range tests {
		if got := Plural(tt.lang, tt.unit, tt.n); got != tt.want {
			t.Errorf("Plural(%s, %s, %d) = %v, want %v", tt.lang, tt.unit, tt.n, got, tt.want)
		}
	}
}
