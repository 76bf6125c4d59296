package canvasrenderer

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// encodePNG builds a small solid-color PNG for loader tests.
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// TestResolveImageAxis tests size token resolution against a natural
// dimension.
func TestResolveImageAxis(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		natural int
		want    float64
	}{
		{"empty keeps natural", "", 64, 64},
		{"absolute", "40", 64, 40},
		{"absolute px", "40px", 64, 40},
		{"percent", "50%", 64, 32},
		{"percent over 100", "150%", 64, 96},
		{"fractional percent", "12.5%", 64, 8},
		{"garbage falls back", "wide", 64, 64},
		{"garbage percent falls back", "x%", 64, 64},
		{"whitespace", " 40px ", 64, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveImageAxis(tt.token, tt.natural); got != tt.want {
				t.Errorf("resolveImageAxis(%q, %d) = %v, want %v", tt.token, tt.natural, got, tt.want)
			}
		})
	}
}

// TestFileImageLoader tests loading and decoding from the filesystem.
func TestFileImageLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, encodePNG(t, 4, 3, color.White), 0o644); err != nil {
		t.Fatal(err)
	}

	var loader FileImageLoader
	img, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w, h := img.Bounds()
	if w != 4 || h != 3 {
		t.Errorf("Bounds = (%d, %d), want (4, 3)", w, h)
	}
}

// TestFileImageLoaderMissing tests that a missing file is an error.
func TestFileImageLoaderMissing(t *testing.T) {
	var loader FileImageLoader
	if _, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}

// TestFileImageLoaderNotAnImage tests that undecodable bytes are an error.
func TestFileImageLoaderNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	var loader FileImageLoader
	if _, err := loader.Load(context.Background(), path); err == nil {
		t.Error("Load of junk bytes succeeded, want error")
	}
}

// TestHTTPImageLoader tests fetching and decoding over HTTP.
func TestHTTPImageLoader(t *testing.T) {
	data := encodePNG(t, 8, 8, color.Black)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	var loader HTTPImageLoader
	img, err := loader.Load(context.Background(), srv.URL+"/img.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w, h := img.Bounds()
	if w != 8 || h != 8 {
		t.Errorf("Bounds = (%d, %d), want (8, 8)", w, h)
	}
}

// TestHTTPImageLoaderNotFound tests that a non-200 response is an error.
func TestHTTPImageLoaderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	var loader HTTPImageLoader
	if _, err := loader.Load(context.Background(), srv.URL+"/absent.png"); err == nil {
		t.Error("Load of 404 succeeded, want error")
	}
}

// TestSchemeImageLoader tests the scheme dispatch: http(s) sources to the
// HTTP loader, everything else to the file loader.
func TestSchemeImageLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.png")
	if err := os.WriteFile(path, encodePNG(t, 2, 2, color.White), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(encodePNG(t, 5, 5, color.Black))
	}))
	defer srv.Close()

	loader := &schemeImageLoader{}

	img, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("file dispatch: %v", err)
	}
	if w, _ := img.Bounds(); w != 2 {
		t.Errorf("file dispatch width = %d, want 2", w)
	}

	img, err = loader.Load(context.Background(), srv.URL+"/remote.png")
	if err != nil {
		t.Fatalf("http dispatch: %v", err)
	}
	if w, _ := img.Bounds(); w != 5 {
		t.Errorf("http dispatch width = %d, want 5", w)
	}
}
