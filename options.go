package canvasrenderer

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default renderer
//	r := canvasrenderer.New()
//
//	// Custom image loader (dependency injection)
//	r := canvasrenderer.New(canvasrenderer.WithImageLoader(loader))
type Option func(*Renderer)

// WithDefaults replaces the fallback values applied when a box omits or
// misdeclares a style (font family, font size, text color).
func WithDefaults(d Defaults) Option {
	return func(r *Renderer) {
		r.defaults = d
	}
}

// WithWidthModel sets the character width model used for layout and text
// advances. The default is [HalfWidth].
//
// Example:
//
//	// Unicode East Asian Width rules instead of the ASCII heuristic
//	r := canvasrenderer.New(canvasrenderer.WithWidthModel(canvasrenderer.EastAsianWidth{}))
func WithWidthModel(m WidthModel) Option {
	return func(r *Renderer) {
		if m != nil {
			r.width = m
		}
	}
}

// WithImageLoader sets the loader used to fetch background image sources.
// Use this for dependency injection of caches or custom transports.
// The default loader reads local files and fetches http(s) URLs.
func WithImageLoader(l ImageLoader) Option {
	return func(r *Renderer) {
		if l != nil {
			r.loader = l
		}
	}
}

// WithFontSource registers raw font data (TTF or OTF) for a family and
// variant, making it resolvable through a box's Font.Family, Weight and
// Style. Registering an already-known family/variant pair replaces it.
//
// The data is parsed lazily on first use; unparsable data is reported via
// [Logger] and the renderer falls back through the family's other variants.
//
// Example:
//
//	data, _ := os.ReadFile("Inter-Bold.ttf")
//	r := canvasrenderer.New(canvasrenderer.WithFontSource("inter", true, false, data))
func WithFontSource(family string, bold, italic bool, data []byte) Option {
	return func(r *Renderer) {
		r.fonts.register(family, fontVariant{bold: bold, italic: italic}, data)
	}
}
