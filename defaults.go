package canvasrenderer

import (
	"strconv"
	"strings"
)

// Defaults is the renderer's default configuration, consumed at the start
// of each render. Every fallback the engine applies is declared here once
// so it can be overridden and tested in isolation.
type Defaults struct {
	// FontFamily is used when Box.Font.Family is empty.
	FontFamily string

	// FontSize is used when Box.Font.Size is empty or not numeric.
	FontSize float64

	// TextColor is used when Box.Font.Color is empty.
	TextColor string
}

// DefaultConfig returns the stock defaults: the builtin Go font at 16px,
// black text.
func DefaultConfig() Defaults {
	return Defaults{
		FontFamily: "go",
		FontSize:   16,
		TextColor:  "#000",
	}
}

// parseFontSize parses a font size token like "14" or "14px". Malformed or
// non-positive tokens are absorbed with the default size rather than
// failing the render.
func parseFontSize(token string, d Defaults) float64 {
	t := strings.TrimSuffix(strings.TrimSpace(token), "px")
	if t == "" {
		return d.FontSize
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || v <= 0 {
		return d.FontSize
	}
	return v
}
