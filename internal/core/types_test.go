package core

import (
	"errors"
	"math"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ousiassllc/transwatch/internal/fdd"
	"github.com/ousiassllc/transwatch/internal/rul"
)

func validMeasurement() Measurement {
	return Measurement{
		Transformer: "T1",
		CO:          120.5,
		H2:          30,
		C2H2:        0.4,
		C2H4:        12,
		FDD:         2,
		RUL:         730,
	}
}

func TestMeasurement_Validate(t *testing.T) {
	temp := math.Inf(1)
	tests := []struct {
		name    string
		mutate  func(*Measurement)
		wantErr bool
	}{
		{"valid", func(*Measurement) {}, false},
		{"zero gases", func(m *Measurement) { m.CO, m.H2, m.C2H2, m.C2H4 = 0, 0, 0, 0 }, false},
		{"empty transformer", func(m *Measurement) { m.Transformer = "   " }, true},
		{"negative h2", func(m *Measurement) { m.H2 = -1 }, true},
		{"nan co", func(m *Measurement) { m.CO = math.NaN() }, true},
		{"inf c2h4", func(m *Measurement) { m.C2H4 = math.Inf(1) }, true},
		{"nan rul", func(m *Measurement) { m.RUL = math.NaN() }, true},
		{"negative rul allowed", func(m *Measurement) { m.RUL = -3 }, false},
		{"inf temperature", func(m *Measurement) { m.Temperature = &temp }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeasurement()
			tt.mutate(&m)
			err := m.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidMeasurement) {
				t.Errorf("error %v should wrap ErrInvalidMeasurement", err)
			}
		})
	}
}

func TestMeasurement_CategoryAndRemaining(t *testing.T) {
	m := validMeasurement()
	if got := m.Category().Severity; got != fdd.Warning {
		t.Errorf("Category().Severity = %v, want %v", got, fdd.Warning)
	}
	if got := m.Remaining(); got != (rul.Duration{Years: 1}) {
		t.Errorf("Remaining() = %+v, want 1 year", got)
	}
}

func TestNormalizeTransformerName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"T1", "t1"},
		{"  Main Substation  ", "main substation"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTransformerName(tt.in); got != tt.want {
			t.Errorf("NormalizeTransformerName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHistoryFilter_Match(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := Measurement{Transformer: "t1", Timestamp: base}

	tests := []struct {
		name   string
		filter HistoryFilter
		want   bool
	}{
		{"empty", HistoryFilter{}, true},
		{"transformer match is case insensitive", HistoryFilter{Transformer: " T1 "}, true},
		{"other transformer", HistoryFilter{Transformer: "t2"}, false},
		{"since inclusive", HistoryFilter{Since: base}, true},
		{"since after", HistoryFilter{Since: base.Add(time.Second)}, false},
		{"until exclusive", HistoryFilter{Until: base}, false},
		{"until after", HistoryFilter{Until: base.Add(time.Second)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(m); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterval_YAML(t *testing.T) {
	in := struct {
		D Interval `yaml:"d"`
	}{D: Interval{Duration: 1500 * time.Millisecond}}

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "d: 1.5s\n" {
		t.Errorf("Marshal = %q, want %q", string(data), "d: 1.5s\n")
	}

	var out struct {
		D Interval `yaml:"d"`
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.D.Duration != in.D.Duration {
		t.Errorf("round trip = %v, want %v", out.D.Duration, in.D.Duration)
	}
}

func TestConfig_LangAndModeFallback(t *testing.T) {
	cfg := Config{Language: "de", DisplayMode: "fancy"}
	if cfg.Lang() != rul.English {
		t.Errorf("Lang() = %q, want en", cfg.Lang())
	}
	if cfg.Mode() != rul.ModeGrammar {
		t.Errorf("Mode() = %q, want grammar", cfg.Mode())
	}
}
