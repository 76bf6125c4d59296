package canvasrenderer

import "testing"

// TestParseFontSize tests token parsing and fallback to the default size.
func TestParseFontSize(t *testing.T) {
	d := Defaults{FontSize: 16}

	tests := []struct {
		name  string
		token string
		want  float64
	}{
		{"empty", "", 16},
		{"plain number", "12", 12},
		{"px suffix", "14px", 14},
		{"fractional", "10.5", 10.5},
		{"whitespace", " 18px ", 18},
		{"garbage", "large", 16},
		{"zero", "0", 16},
		{"negative", "-4", 16},
		{"suffix only", "px", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFontSize(tt.token, d); got != tt.want {
				t.Errorf("parseFontSize(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

// TestDefaultConfig tests the stock defaults.
func TestDefaultConfig(t *testing.T) {
	d := DefaultConfig()
	if d.FontFamily != "go" {
		t.Errorf("FontFamily = %q, want %q", d.FontFamily, "go")
	}
	if d.FontSize != 16 {
		t.Errorf("FontSize = %v, want 16", d.FontSize)
	}
	if d.TextColor != "#000" {
		t.Errorf("TextColor = %q, want %q", d.TextColor, "#000")
	}
}
