package canvasrenderer

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// paintText lays out and paints the content lines, top to bottom.
//
// Painting is character by character rather than whole-string: mixed
// narrow/wide characters do not advance uniformly, and positioning each
// glyph from the width model's own advance keeps painting consistent with
// the measurement pass that sized and aligned the box.
func paintText(dc *gg.Context, box Box, w float64, fr *fontRegistry, m WidthModel, d Defaults) {
	lines := nonEmptyLines(box.Content)
	if len(lines) == 0 {
		return
	}

	fontSize := parseFontSize(box.Font.Size, d)
	face := fr.face(box.Font, fontSize, d)
	if face == nil {
		Logger().Warn("canvasrenderer: no font face resolved, skipping text",
			"family", box.Font.Family)
		return
	}

	pad := boxPadding(box)
	avail := box.Font.TextWidth
	if avail <= 0 {
		avail = w - pad.Left - pad.Right
	}

	fill := box.Font.Color
	if fill == "" {
		fill = d.TextColor
	}

	stroke := box.Font.BorderWidth > 0 && box.Font.BorderColor != ""
	var extractor *text.OutlineExtractor
	if stroke {
		extractor = text.NewOutlineExtractor()
	}

	// The sizing formula places each row's visual center at
	// topPadding + fontSize/2. The surface API positions glyphs by their
	// alphabetic baseline, so shift down by half the cap height.
	capOffset := face.Metrics().CapHeight / 2

	dc.SetFont(face)
	for i, line := range lines {
		lw := lineWidth(m, line, fontSize, box.Font.LetterSpacing)
		rowCenter := pad.Top + fontSize/2 + float64(i)*(fontSize+box.Font.RowGap)
		baseline := rowCenter + capOffset

		cursor := pad.Left + alignOffset(box.Font.Align, avail, lw)
		for _, r := range line {
			dc.SetHexColor(fill)
			dc.DrawString(string(r), cursor, baseline)
			if stroke {
				strokeGlyph(dc, face, extractor, r, cursor, baseline,
					box.Font.BorderColor, box.Font.BorderWidth)
			}
			cursor += m.Factor(r)*fontSize + box.Font.LetterSpacing
		}
	}
}

// strokeGlyph outlines a single glyph at the given pen position. Glyphs
// without an extractable outline (bitmap or color glyphs, missing runes)
// are left unstroked; the fill has already been painted.
func strokeGlyph(dc *gg.Context, face text.Face, extractor *text.OutlineExtractor, r rune, x, baseline float64, colorHex string, width float64) {
	source := face.Source()
	if source == nil {
		return
	}
	parsed := source.Parsed()

	outline, err := extractor.ExtractOutline(parsed, text.GlyphID(parsed.GlyphIndex(r)), face.Size())
	if err != nil || outline.IsEmpty() {
		return
	}

	// Outline coordinates are already scaled to the face size with Y
	// increasing downward, relative to the glyph origin on the baseline.
	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				dc.ClosePath()
			}
			dc.MoveTo(x+float64(seg.Points[0].X), baseline+float64(seg.Points[0].Y))
			open = true
		case text.OutlineOpLineTo:
			dc.LineTo(x+float64(seg.Points[0].X), baseline+float64(seg.Points[0].Y))
		case text.OutlineOpQuadTo:
			dc.QuadraticTo(
				x+float64(seg.Points[0].X), baseline+float64(seg.Points[0].Y),
				x+float64(seg.Points[1].X), baseline+float64(seg.Points[1].Y))
		case text.OutlineOpCubicTo:
			dc.CubicTo(
				x+float64(seg.Points[0].X), baseline+float64(seg.Points[0].Y),
				x+float64(seg.Points[1].X), baseline+float64(seg.Points[1].Y),
				x+float64(seg.Points[2].X), baseline+float64(seg.Points[2].Y))
		}
	}
	if open {
		dc.ClosePath()
	}

	dc.SetHexColor(colorHex)
	dc.SetLineWidth(width)
	_ = dc.Stroke()
}
