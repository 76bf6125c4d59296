package canvasrenderer

import (
	"math"

	"github.com/gogpu/gg"
)

// PathTracer is the subset of the drawing context's path API the outline
// tracer needs. *gg.Context satisfies it; tests substitute a recorder.
type PathTracer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawArc(x, y, r, angle1, angle2 float64)
	ClosePath()
}

var _ PathTracer = (*gg.Context)(nil)

// TraceBox traces the closed box outline clockwise: straight edges joined
// by 90-degree arcs at each corner, starting just past the top-left
// corner. A zero radius degenerates that corner to a plain line, producing
// a sharp corner with no arc command.
//
// Both the background fill and the border stroke use this trace, so the
// border sits exactly on the filled region's edge. Radii are passed
// through uncorrected; see Radii for the validity range.
func TraceBox(t PathTracer, x, y, w, h float64, r Radii) {
	t.MoveTo(x+r.TopLeft, y)
	t.LineTo(x+w-r.TopRight, y)
	if r.TopRight > 0 {
		t.DrawArc(x+w-r.TopRight, y+r.TopRight, r.TopRight, -math.Pi/2, 0)
	}
	t.LineTo(x+w, y+h-r.BottomRight)
	if r.BottomRight > 0 {
		t.DrawArc(x+w-r.BottomRight, y+h-r.BottomRight, r.BottomRight, 0, math.Pi/2)
	}
	t.LineTo(x+r.BottomLeft, y+h)
	if r.BottomLeft > 0 {
		t.DrawArc(x+r.BottomLeft, y+h-r.BottomLeft, r.BottomLeft, math.Pi/2, math.Pi)
	}
	t.LineTo(x, y+r.TopLeft)
	if r.TopLeft > 0 {
		t.DrawArc(x+r.TopLeft, y+r.TopLeft, r.TopLeft, math.Pi, 3*math.Pi/2)
	}
	t.ClosePath()
}

// boxRadii returns the corner radii that shape the box. They live on the
// border style but apply to the background fill even when the border pass
// is skipped.
func boxRadii(box Box) Radii {
	if box.Border == nil {
		return Radii{}
	}
	return box.Border.Radius
}
