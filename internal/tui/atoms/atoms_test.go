package atoms_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ousiassllc/transwatch/internal/fdd"
	"github.com/ousiassllc/transwatch/internal/tui/atoms"
)

func TestRenderSeverityBadge(t *testing.T) {
	tests := []struct {
		name       string
		severity   fdd.Severity
		wantSymbol string
	}{
		{"Normal", fdd.Normal, "●"},
		{"Warning", fdd.Warning, "▲"},
		{"MinorAlarm", fdd.MinorAlarm, "◆"},
		{"MajorAlarm", fdd.MajorAlarm, "✗"},
		{"Unknown", fdd.Unknown, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := atoms.RenderSeverityBadge(tt.severity, "label")
			if !strings.Contains(got, tt.wantSymbol) {
				t.Errorf("RenderSeverityBadge(%v) = %q, want symbol %q", tt.severity, got, tt.wantSymbol)
			}
			if !strings.Contains(got, "label") {
				t.Errorf("RenderSeverityBadge(%v) = %q, want label", tt.severity, got)
			}
			if atoms.SeveritySymbol(tt.severity) != tt.wantSymbol {
				t.Errorf("SeveritySymbol(%v) = %q, want %q", tt.severity, atoms.SeveritySymbol(tt.severity), tt.wantSymbol)
			}
		})
	}
}

func TestRenderHealthBar(t *testing.T) {
	tests := []struct {
		name        string
		percent     int
		width       int
		wantFilled  int
		wantPercent string
	}{
		{"full", 100, 10, 10, "100%"},
		{"three quarters", 75, 8, 6, " 75%"},
		{"fifteen", 15, 10, 1, " 15%"},
		{"zero", 0, 10, 0, "  0%"},
		{"clamped high", 150, 4, 4, "100%"},
		{"clamped low", -20, 4, 0, "  0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := atoms.RenderHealthBar(tt.percent, tt.width, fdd.Normal)
			if n := strings.Count(got, "█"); n != tt.wantFilled {
				t.Errorf("filled cells = %d, want %d (%q)", n, tt.wantFilled, got)
			}
			if n := strings.Count(got, "░"); n != tt.width-tt.wantFilled {
				t.Errorf("empty cells = %d, want %d (%q)", n, tt.width-tt.wantFilled, got)
			}
			if !strings.Contains(got, tt.wantPercent) {
				t.Errorf("RenderHealthBar() = %q, want to contain %q", got, tt.wantPercent)
			}
		})
	}
}

func TestRenderRUL(t *testing.T) {
	if got := atoms.RenderRUL(""); !strings.Contains(got, "-") {
		t.Errorf("RenderRUL(\"\") = %q, want dash", got)
	}
	if got := atoms.RenderRUL("1 year"); !strings.Contains(got, "1 year") {
		t.Errorf("RenderRUL() = %q, want text", got)
	}
}

func TestRenderKeyHint(t *testing.T) {
	enabled := key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lang"))
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())

	got := atoms.RenderKeyHint(enabled, disabled)
	if !strings.Contains(got, "[l]") || !strings.Contains(got, "lang") {
		t.Errorf("RenderKeyHint() = %q, want enabled binding", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("RenderKeyHint() = %q, should skip disabled binding", got)
	}
}

func TestRenderDivider(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"normal width", 10, "──────────"},
		{"width 1", 1, "─"},
		{"width 0", 0, ""},
		{"negative width", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := atoms.RenderDivider(tt.width)
			if tt.width <= 0 {
				if got != "" {
					t.Errorf("RenderDivider(%d) = %q, want empty string", tt.width, got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RenderDivider(%d) = %q, want to contain %q", tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderGas(t *testing.T) {
	got := atoms.RenderGas("H2", 30)
	if !strings.Contains(got, "H2") || !strings.Contains(got, "30.0") {
		t.Errorf("RenderGas() = %q, want name and value", got)
	}
}

func TestRenderTemperature(t *testing.T) {
	if got := atoms.RenderTemperature(nil); !strings.Contains(got, "-") {
		t.Errorf("RenderTemperature(nil) = %q, want dash", got)
	}
	v := 65.25
	if got := atoms.RenderTemperature(&v); !strings.Contains(got, "65.2°C") && !strings.Contains(got, "65.3°C") {
		t.Errorf("RenderTemperature() = %q, want formatted value", got)
	}
}
