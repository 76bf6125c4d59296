// Package canvasrenderer renders styled rectangular boxes onto an offscreen
// 2D raster surface. It is a small layout-and-paint engine for generating
// image assets (badges, labeled tiles, captioned thumbnails) without a
// markup or layout engine.
//
// # Quick Start
//
//	import canvasrenderer "github.com/VitaTsui/canvas-renderer"
//
//	r := canvasrenderer.New()
//	surface, err := r.Render(context.Background(), canvasrenderer.Box{
//	    Content: []string{"OK"},
//	    Padding: canvasrenderer.Pad(8, 16),
//	    Background: &canvasrenderer.Background{Color: "#2d7"},
//	    Border: &canvasrenderer.Border{
//	        Color:  "#163",
//	        Width:  2,
//	        Radius: canvasrenderer.Radius(6),
//	    },
//	    Font: canvasrenderer.Font{Size: "14", Color: "#fff"},
//	})
//	if err != nil {
//	    return err
//	}
//	surface.SavePNG("badge.png")
//
// # Model
//
// A Box describes everything about one render: dimensions (fixed pixels or
// automatic), padding, an optional background (solid color, multi-stop
// linear gradient, and/or an image), an optional rounded border, a font
// style, and the text content as ordered lines. Width and height default to
// automatic: they are resolved from the text extents, padding and border
// thickness. A box with automatic dimensions and no content resolves to
// 0x0 and produces an empty surface.
//
// Text extents use a heuristic character-width model rather than real font
// metrics: ASCII code points count as half a font size, everything else as
// a full font size. See WidthModel for the available models.
//
// # Rendering
//
// Rendering is synchronous and allocates a fresh surface per call; a
// Renderer is safe for concurrent use. The only suspension point is
// fetching a background image, which honors the caller's context. The
// returned surface is a gg drawing context, so PNG/JPEG encoding comes for
// free via its SavePNG, EncodePNG and EncodeJPEG methods.
//
// # Painting order
//
// Background, border, then text, in that fixed order. Background fills
// strictly respect the rounded outline; the border is stroked centered on
// the same outline; text is always the top layer.
package canvasrenderer
