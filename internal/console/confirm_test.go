package console

import (
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"explicit decline", "n\n", false},
		{"uppercase decline", "N\n", false},
		{"padded decline", "  n  \n", false},
		{"explicit accept", "y\n", true},
		{"empty line accepts", "\n", true},
		{"eof accepts", "", true},
		{"anything else accepts", "maybe\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			c := NewConfirmer(strings.NewReader(tt.input), &out)
			if got := c.Confirm("Use base model for faster results? [y/n]: "); got != tt.expected {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if !strings.Contains(out.String(), "[y/n]") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}
