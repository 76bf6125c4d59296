package canvasrenderer

import (
	"sort"

	"github.com/gogpu/gg"
)

// paintBackground fills the box interior. The pass is skipped entirely
// when the background would paint nothing. The color or gradient fill
// traces the rounded outline and fills it directly, so the fill strictly
// respects the corner radii; an image composites over the fill afterwards
// and is not cut by the outline.
func paintBackground(dc *gg.Context, bg *Background, w, h float64, radii Radii, img *gg.ImageBuf) {
	if bg.empty() {
		return
	}

	if len(bg.Gradient) > 0 {
		TraceBox(dc, 0, 0, w, h, radii)
		dc.SetFillBrush(gradientBrush(bg.Gradient, w, h))
		_ = dc.Fill()
	} else if bg.Color != "" {
		TraceBox(dc, 0, 0, w, h, radii)
		dc.SetHexColor(bg.Color)
		_ = dc.Fill()
	}

	if img != nil && bg.Image != nil {
		drawBackgroundImage(dc, bg.Image, img)
	}
}

// gradientStops converts a gradient map into color stops in ascending
// offset order, independent of map iteration order.
func gradientStops(m map[float64]string) []gg.ColorStop {
	offsets := make([]float64, 0, len(m))
	for off := range m {
		offsets = append(offsets, off)
	}
	sort.Float64s(offsets)

	stops := make([]gg.ColorStop, 0, len(offsets))
	for _, off := range offsets {
		stops = append(stops, gg.ColorStop{Offset: off, Color: gg.Hex(m[off])})
	}
	return stops
}

// gradientBrush builds the background's linear gradient: a diagonal from
// the box's top-left corner to its bottom-right corner.
func gradientBrush(m map[float64]string, w, h float64) *gg.LinearGradientBrush {
	g := gg.NewLinearGradientBrush(0, 0, w, h)
	for _, stop := range gradientStops(m) {
		g.AddColorStop(stop.Offset, stop.Color)
	}
	return g
}

// drawBackgroundImage blits the decoded image at its configured offset and
// size. Each size axis is either the image's natural dimension, absolute
// pixels, or a percentage of the natural dimension.
func drawBackgroundImage(dc *gg.Context, spec *BackgroundImage, img *gg.ImageBuf) {
	nw, nh := img.Bounds()
	x, y := spec.offset()

	dc.DrawImageEx(img, gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  resolveImageAxis(spec.Width, nw),
		DstHeight: resolveImageAxis(spec.Height, nh),
	})
}
