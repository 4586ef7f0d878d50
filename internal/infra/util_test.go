package infra

import (
	"path/filepath"
	"testing"
)

func TestExpandTilde(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	home := homeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/data/m.yaml", filepath.Join(home, "data", "m.yaml")},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
		{"~other/path", "~other/path"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := ExpandTilde(tt.in)
		if err != nil {
			t.Fatalf("ExpandTilde(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
