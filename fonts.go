package canvasrenderer

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// fontVariant selects one face of a family.
type fontVariant struct {
	bold   bool
	italic bool
}

// fontEntry holds raw font bytes and the lazily parsed source.
type fontEntry struct {
	data   []byte
	once   sync.Once
	source *text.FontSource
	err    error
}

// fontRegistry maps family names and variants to font sources. The
// builtin Go fonts back the "go" and "go-mono" families; additional
// families come in through WithFontSource.
//
// Parsing is lazy and cached: registering a family costs nothing until a
// render first resolves a face from it.
type fontRegistry struct {
	mu       sync.Mutex
	families map[string]map[fontVariant]*fontEntry
}

func newFontRegistry() *fontRegistry {
	fr := &fontRegistry{families: make(map[string]map[fontVariant]*fontEntry)}

	fr.register("go", fontVariant{}, goregular.TTF)
	fr.register("go", fontVariant{bold: true}, gobold.TTF)
	fr.register("go", fontVariant{italic: true}, goitalic.TTF)
	fr.register("go", fontVariant{bold: true, italic: true}, gobolditalic.TTF)

	fr.register("go-mono", fontVariant{}, gomono.TTF)
	fr.register("go-mono", fontVariant{bold: true}, gomonobold.TTF)
	fr.register("go-mono", fontVariant{italic: true}, gomonoitalic.TTF)
	fr.register("go-mono", fontVariant{bold: true, italic: true}, gomonobolditalic.TTF)

	return fr
}

// register stores raw font bytes for a family variant, replacing any
// previous registration.
func (fr *fontRegistry) register(family string, v fontVariant, data []byte) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	variants := fr.families[family]
	if variants == nil {
		variants = make(map[fontVariant]*fontEntry)
		fr.families[family] = variants
	}
	variants[v] = &fontEntry{data: data}
}

// lookup returns the parsed source for a family variant, or nil when the
// variant is unregistered or its data fails to parse.
func (fr *fontRegistry) lookup(family string, v fontVariant) *text.FontSource {
	fr.mu.Lock()
	entry := fr.families[family][v]
	fr.mu.Unlock()
	if entry == nil {
		return nil
	}

	entry.once.Do(func() {
		entry.source, entry.err = text.NewFontSource(entry.data)
		if entry.err != nil {
			Logger().Warn("canvasrenderer: font parse failed",
				"family", family, "bold", v.bold, "italic", v.italic, "err", entry.err)
		}
	})
	if entry.err != nil {
		return nil
	}
	return entry.source
}

// face resolves the font face for a style at the given size. Resolution
// degrades gracefully: exact variant, then the family's regular face, then
// the default family's variant, then the default family's regular face.
// Returns nil only when nothing at all is registered.
func (fr *fontRegistry) face(f Font, size float64, d Defaults) text.Face {
	family := f.Family
	if family == "" {
		family = d.FontFamily
	}
	v := fontVariant{bold: isBoldWeight(f.Weight), italic: isItalicStyle(f.Style)}

	for _, try := range []struct {
		family string
		v      fontVariant
	}{
		{family, v},
		{family, fontVariant{}},
		{d.FontFamily, v},
		{d.FontFamily, fontVariant{}},
	} {
		if src := fr.lookup(try.family, try.v); src != nil {
			return src.Face(size)
		}
	}
	return nil
}

// isBoldWeight reports whether a CSS-style weight token selects the bold
// face: "bold", "bolder", or a numeric weight of 600 and above.
func isBoldWeight(weight string) bool {
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "bold", "bolder":
		return true
	}
	if n, err := strconv.Atoi(strings.TrimSpace(weight)); err == nil {
		return n >= 600
	}
	return false
}

// isItalicStyle reports whether a style token selects the italic face.
func isItalicStyle(style string) bool {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "italic", "oblique":
		return true
	}
	return false
}
