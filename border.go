package canvasrenderer

import "github.com/gogpu/gg"

// paintBorder strokes the box outline. The pass is skipped when the
// border has zero width or no color; skipping emits no paint calls at
// all, so a zero-width border renders identically to no border.
func paintBorder(dc *gg.Context, b *Border, w, h float64) {
	if !b.drawn() {
		return
	}

	TraceBox(dc, 0, 0, w, h, b.Radius)
	dc.SetHexColor(b.Color)
	dc.SetLineWidth(b.Width)
	_ = dc.Stroke()
}
