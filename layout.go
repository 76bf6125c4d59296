package canvasrenderer

import "unicode/utf8"

// nonEmptyLines filters empty entries out of the content. Both
// measurement and painting operate on the filtered lines.
func nonEmptyLines(content []string) []string {
	lines := make([]string, 0, len(content))
	for _, l := range content {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// boxPadding returns the padding with the border thickness folded in.
// A drawn border occupies space outside the padded content box, so its
// width is added to all four padding components once, before any size or
// position computation.
func boxPadding(box Box) Edges {
	pad := box.Padding
	if box.Border.drawn() {
		pad = pad.grow(box.Border.Width)
	}
	return pad
}

// lineWidth returns the pixel width of one line: the summed character
// width factors scaled by the font size, plus the fixed letter spacing
// between consecutive characters.
func lineWidth(m WidthModel, line string, fontSize, letterSpacing float64) float64 {
	n := utf8.RuneCountInString(line)
	if n == 0 {
		return 0
	}
	return StringWidth(m, line)*fontSize + letterSpacing*float64(n-1)
}

// heightCorrection is the fixed visual correction subtracted from the
// auto-resolved height to compensate for baseline/ascender overshoot.
// The odd/even split is an empirical fudge inherited for compatibility,
// not a derived text metric; tune it only with rendered output in hand.
func heightCorrection(lineCount int) float64 {
	if lineCount%2 == 1 {
		return 4
	}
	return 2
}

// resolveSize computes the final pixel dimensions of the box. Fixed
// dimensions pass through untouched; automatic ones are derived from the
// text extents plus padding (border width already folded in). An automatic
// axis with no content resolves to 0.
func resolveSize(box Box, m WidthModel, d Defaults) (w, h float64) {
	w = box.Width.Value()
	h = box.Height.Value()
	if !box.Width.IsAuto() && !box.Height.IsAuto() {
		return w, h
	}

	lines := nonEmptyLines(box.Content)
	if len(lines) == 0 {
		return w, h
	}

	fontSize := parseFontSize(box.Font.Size, d)
	pad := boxPadding(box)

	if box.Width.IsAuto() {
		var maxWidth float64
		for _, line := range lines {
			if lw := lineWidth(m, line, fontSize, box.Font.LetterSpacing); lw > maxWidth {
				maxWidth = lw
			}
		}
		w = maxWidth + pad.Left + pad.Right
	}

	if box.Height.IsAuto() {
		n := len(lines)
		h = float64(n)*fontSize + pad.Top + pad.Bottom +
			float64(n-1)*box.Font.RowGap - heightCorrection(n)
	}

	return w, h
}

// alignOffset returns the horizontal offset of a line of the given width
// within the available text width.
func alignOffset(a Align, available, lineWidth float64) float64 {
	switch a {
	case AlignCenter:
		return (available - lineWidth) / 2
	case AlignRight:
		return available - lineWidth
	default:
		return 0
	}
}
