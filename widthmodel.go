package canvasrenderer

import "golang.org/x/text/width"

// WidthModel classifies characters as narrow (factor 0.5) or wide (factor
// 1.0) to approximate monospace-like advance without querying real font
// metrics. The same model drives both measurement (auto-sizing, alignment)
// and painting (per-character advance), which keeps the two consistent.
type WidthModel interface {
	// Factor returns the unitless width factor for a character.
	// Multiplied by the font size it gives the character's advance.
	Factor(r rune) float64
}

// HalfWidth is the default model: ASCII code points (0-127) are narrow,
// everything else is wide. No locale, combining-character or grapheme
// awareness — width is purely per code point.
type HalfWidth struct{}

// Factor implements WidthModel.
func (HalfWidth) Factor(r rune) float64 {
	if r <= 127 {
		return 0.5
	}
	return 1.0
}

// EastAsianWidth classifies characters by their Unicode East Asian Width
// property: wide, fullwidth and ambiguous code points are wide, the rest
// narrow. Use it when content mixes scripts beyond the ASCII/CJK split the
// default heuristic assumes.
type EastAsianWidth struct{}

// Factor implements WidthModel.
func (EastAsianWidth) Factor(r rune) float64 {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianAmbiguous:
		return 1.0
	default:
		return 0.5
	}
}

// UniformWidth treats every character as a full width. It reproduces the
// whole-string estimation of the minimal capability preset, where text is
// assumed to be uniform fixed-size rows.
type UniformWidth struct{}

// Factor implements WidthModel.
func (UniformWidth) Factor(rune) float64 {
	return 1.0
}

// StringWidth returns the summed width factor of s under the given model.
// An ASCII-only string therefore measures 0.5 per character.
func StringWidth(m WidthModel, s string) float64 {
	var w float64
	for _, r := range s {
		w += m.Factor(r)
	}
	return w
}
