package canvasrenderer

// Box describes one render: dimensions, padding, background, border, font
// and content. The zero value of every field is meaningful — an empty Box
// renders an empty surface.
//
// Box values are transient: the engine reads them for the duration of one
// Render call and retains nothing afterwards.
type Box struct {
	// Width and Height are the box dimensions. The zero value means
	// automatic: computed from content, padding and border thickness.
	Width  Dim
	Height Dim

	// Padding is the space between the border and the content, per edge.
	// Use Pad to build it from 1, 2 or 4 values.
	Padding Edges

	// Background paints the box interior. Nil means no background pass.
	Background *Background

	// Border strokes the box outline. Nil means no border pass, but note
	// that Border.Radius shapes the background even when the border itself
	// is not drawn (zero width or unset color).
	Border *Border

	// Font styles the text content.
	Font Font

	// Content is the text, one entry per line, top to bottom. Empty
	// entries are ignored for both measurement and painting.
	Content []string
}

// Dim is a box dimension: either a fixed pixel value or automatic.
// The zero value is automatic.
type Dim struct {
	px    float64
	fixed bool
}

// Px returns a fixed pixel dimension.
func Px(v float64) Dim {
	return Dim{px: v, fixed: true}
}

// Auto returns an automatic dimension. Equivalent to the zero value; it
// exists for callers who want the intent spelled out.
func Auto() Dim {
	return Dim{}
}

// IsAuto reports whether the dimension is automatic.
func (d Dim) IsAuto() bool {
	return !d.fixed
}

// Value returns the fixed pixel value. Zero for automatic dimensions.
func (d Dim) Value() float64 {
	if !d.fixed {
		return 0
	}
	return d.px
}

// Edges is a per-edge pixel amount, used for padding.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Pad builds Edges from 1, 2 or 4 values in CSS order:
//
//	Pad(a)          // all four edges
//	Pad(v, h)       // top/bottom, right/left
//	Pad(t, r, b, l) // each edge
//
// Any other count is a caller contract violation and yields the zero value.
func Pad(values ...float64) Edges {
	switch len(values) {
	case 1:
		return Edges{Top: values[0], Right: values[0], Bottom: values[0], Left: values[0]}
	case 2:
		return Edges{Top: values[0], Right: values[1], Bottom: values[0], Left: values[1]}
	case 4:
		return Edges{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}
	default:
		return Edges{}
	}
}

// grow returns the edges with v added on every side.
func (e Edges) grow(v float64) Edges {
	return Edges{Top: e.Top + v, Right: e.Right + v, Bottom: e.Bottom + v, Left: e.Left + v}
}

// Radii holds the four corner radii of the box outline.
//
// Each radius should be >= 0 and <= min(width, height)/2 for a
// geometrically valid outline. Values outside that range are accepted
// uncorrected and may self-intersect.
type Radii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Radius expands a scalar radius to all four corners.
func Radius(r float64) Radii {
	return Radii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Corners builds Radii from four explicit values, clockwise from top-left.
func Corners(tl, tr, br, bl float64) Radii {
	return Radii{TopLeft: tl, TopRight: tr, BottomRight: br, BottomLeft: bl}
}

// Background describes the box interior. Color and Gradient occupy the
// same slot (a gradient wins when both are set); an Image composites over
// the color fill. A Background with nothing set is equivalent to nil.
type Background struct {
	// Color is a solid fill as a hex string ("#RGB", "#RRGGBB",
	// "#RRGGBBAA"). Empty means no solid fill.
	Color string

	// Gradient is a linear gradient from the box's top-left to its
	// bottom-right corner. Keys are stop offsets in [0, 1], values are hex
	// colors. Stops are applied in ascending key order regardless of map
	// iteration order.
	Gradient map[float64]string

	// Image is an optional image drawn after the color fill.
	Image *BackgroundImage
}

// empty reports whether the background would paint nothing.
func (b *Background) empty() bool {
	return b == nil || (b.Color == "" && len(b.Gradient) == 0 && b.Image == nil)
}

// BackgroundImage positions an image inside the box.
type BackgroundImage struct {
	// Source is a file path or an http(s) URL.
	Source string

	// Width and Height select the drawn size per axis: "" keeps the
	// image's natural dimension, "64" (or "64px") is absolute pixels, and
	// "50%" is a percentage of the natural dimension on that axis.
	// A malformed token falls back to the natural dimension.
	Width  string
	Height string

	// Position is the destination offset in pixels: nil draws at (0, 0),
	// one value expands to both axes, two values are (x, y).
	Position []float64
}

// offset normalizes Position into an (x, y) pair.
func (bi *BackgroundImage) offset() (x, y float64) {
	switch len(bi.Position) {
	case 1:
		return bi.Position[0], bi.Position[0]
	case 2:
		return bi.Position[0], bi.Position[1]
	default:
		return 0, 0
	}
}

// Border describes the stroked box outline.
type Border struct {
	// Color is the stroke color as a hex string. Empty disables the
	// border pass.
	Color string

	// Width is the stroke thickness in pixels. The stroke is centered on
	// the outline: half falls inside the fill edge, half outside.
	// Zero disables the border pass.
	Width float64

	// Radius rounds the box corners. It applies to the background fill
	// even when the border itself is not drawn.
	Radius Radii
}

// drawn reports whether the border pass runs.
func (b *Border) drawn() bool {
	return b != nil && b.Width > 0 && b.Color != ""
}

// Align selects the horizontal placement of a text line within the
// available text width.
type Align int

const (
	// AlignLeft places lines at the left edge of the text area.
	AlignLeft Align = iota

	// AlignCenter centers lines in the text area.
	AlignCenter

	// AlignRight places lines at the right edge of the text area.
	AlignRight
)

// Font styles the text content of a box.
type Font struct {
	// Family selects the font family. Empty uses the renderer default.
	// The builtin families are "go" (proportional) and "go-mono"; more can
	// be registered with WithFontSource.
	Family string

	// Size is the font size token in pixels, e.g. "14" or "14px". A
	// non-numeric token falls back to the renderer's default size.
	Size string

	// Weight is a CSS-style weight: "bold", "bolder" or a numeric string;
	// values of 600 and above select the bold face.
	Weight string

	// Style selects "italic" or "oblique" for the italic face.
	Style string

	// Color is the glyph fill color as a hex string. Empty uses the
	// renderer default.
	Color string

	// BorderColor and BorderWidth stroke each glyph's outline on top of
	// the fill. BorderWidth 0 or an empty BorderColor disables the stroke.
	BorderColor string
	BorderWidth float64

	// LetterSpacing is extra fixed advance between characters, in pixels.
	LetterSpacing float64

	// RowGap is the extra vertical space between rows, in pixels.
	RowGap float64

	// Align places each line horizontally within the text area.
	Align Align

	// TextWidth overrides the available text width used for alignment.
	// Zero derives it from the box width minus horizontal padding.
	TextWidth float64
}
