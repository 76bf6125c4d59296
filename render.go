package canvasrenderer

import (
	"context"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// renderPhase tracks the orchestrator's progress through one render.
// Phases are strictly sequential with no branching back.
type renderPhase int

const (
	phaseUnsized renderPhase = iota
	phaseSized
	phasePainted
	phaseDone
)

func (p renderPhase) String() string {
	switch p {
	case phaseUnsized:
		return "unsized"
	case phaseSized:
		return "sized"
	case phasePainted:
		return "painted"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Renderer renders boxes onto offscreen raster surfaces.
//
// A Renderer holds only immutable configuration (defaults, width model,
// font registry, image loader); every render allocates its own surface and
// working data, so a single Renderer is safe for concurrent use and
// concurrent renders need no coordination.
type Renderer struct {
	defaults Defaults
	width    WidthModel
	fonts    *fontRegistry
	loader   ImageLoader
}

// New creates a Renderer. With no options it uses the stock defaults, the
// half-width character model, the builtin Go fonts, and an image loader
// that reads files locally and fetches http(s) sources with retries.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		defaults: DefaultConfig(),
		width:    HalfWidth{},
		fonts:    newFontRegistry(),
		loader:   &schemeImageLoader{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders one box and returns the raster surface holding it.
//
// The render proceeds through fixed phases: resolve dimensions, fetch the
// background image if any (the single suspension point — ctx is honored
// here and nowhere else), allocate the surface, then paint background,
// border and text in that order. If either resolved dimension is zero the
// painting phases never run and an empty 0x0 surface is returned.
//
// An image fetch or decode failure fails the whole render; no partial
// surface is returned. All other malformed style values are absorbed with
// documented defaults.
func (r *Renderer) Render(ctx context.Context, box Box) (*gg.Context, error) {
	log := Logger()

	// Unsized -> Sized.
	w, h := resolveSize(box, r.width, r.defaults)
	log.Debug("canvasrenderer: resolved dimensions",
		"phase", phaseSized.String(), "width", w, "height", h)
	if w <= 0 || h <= 0 {
		log.Debug("canvasrenderer: degenerate geometry, returning empty surface",
			"phase", phaseDone.String())
		return gg.NewContext(0, 0), nil
	}

	// The one await point: fetch and decode the background image before
	// any painting starts.
	var img *gg.ImageBuf
	if box.Background != nil && box.Background.Image != nil {
		var err error
		img, err = r.loader.Load(ctx, box.Background.Image.Source)
		if err != nil {
			return nil, fmt.Errorf("canvasrenderer: background image: %w", err)
		}
	}

	// Sized -> Painted. Later passes depend on the surface state left by
	// earlier ones, so the order is fixed: background, border, text.
	dc := gg.NewContext(int(math.Round(w)), int(math.Round(h)))
	paintBackground(dc, box.Background, w, h, boxRadii(box), img)
	paintBorder(dc, box.Border, w, h)
	paintText(dc, box, w, r.fonts, r.width, r.defaults)
	log.Debug("canvasrenderer: painted", "phase", phasePainted.String())

	// Painted -> Done.
	return dc, nil
}

// Render renders a box with a default Renderer. Convenience for one-off
// renders; construct a Renderer to reuse configuration across calls.
func Render(ctx context.Context, box Box) (*gg.Context, error) {
	return New().Render(ctx, box)
}
