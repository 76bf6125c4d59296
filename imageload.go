package canvasrenderer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/hashicorp/go-retryablehttp"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// maxImageBytes caps how much of an image source is read. Decoding is the
// expensive part; this keeps a misbehaving remote from holding the render
// hostage on an unbounded body.
const maxImageBytes = 32 << 20

// ImageLoader fetches and decodes a background image source. Loading is
// the single asynchronous collaborator of a render: the orchestrator
// awaits it before any painting starts, and a load failure fails the
// render with no partial surface.
type ImageLoader interface {
	// Load resolves a source reference to a decoded image with known
	// natural dimensions. It honors ctx for cancellation.
	Load(ctx context.Context, source string) (*gg.ImageBuf, error)
}

// FileImageLoader loads image sources from the local filesystem.
// PNG, JPEG, GIF, BMP, TIFF and WebP are decodable.
type FileImageLoader struct{}

// Load implements ImageLoader.
func (FileImageLoader) Load(_ context.Context, source string) (*gg.ImageBuf, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("canvasrenderer: read image %q: %w", source, err)
	}
	return decodeImage(source, data)
}

// HTTPImageLoader loads image sources over http(s) with retries.
// The zero value is ready to use; the underlying client is created on
// first load and shared across calls.
type HTTPImageLoader struct {
	mu     sync.Mutex
	client *retryablehttp.Client
}

// httpClient lazily builds the shared retrying client.
func (l *HTTPImageLoader) httpClient() *retryablehttp.Client {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.client == nil {
		l.client = retryablehttp.NewClient()
		l.client.RetryMax = 3
		l.client.HTTPClient.Timeout = 15 * time.Second
		l.client.Logger = nil // suppress retryablehttp's default logging
	}
	return l.client
}

// Load implements ImageLoader.
func (l *HTTPImageLoader) Load(ctx context.Context, source string) (*gg.ImageBuf, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("canvasrenderer: build image request %q: %w", source, err)
	}

	resp, err := l.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("canvasrenderer: fetch image %q: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("canvasrenderer: fetch image %q: status %d", source, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("canvasrenderer: read image %q: %w", source, err)
	}
	return decodeImage(source, data)
}

// schemeImageLoader dispatches to the HTTP loader for http(s) sources and
// to the file loader for everything else. It is the renderer's default.
type schemeImageLoader struct {
	file FileImageLoader
	http HTTPImageLoader
}

// Load implements ImageLoader.
func (l *schemeImageLoader) Load(ctx context.Context, source string) (*gg.ImageBuf, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.http.Load(ctx, source)
	}
	return l.file.Load(ctx, source)
}

// decodeImage decodes raw image bytes into a drawable buffer.
func decodeImage(source string, data []byte) (*gg.ImageBuf, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("canvasrenderer: decode image %q: %w", source, err)
	}
	return gg.ImageBufFromImage(img), nil
}

// resolveImageAxis resolves one axis of the drawn image size: "" keeps the
// natural dimension, "NN%" scales it, "NN" or "NNpx" is absolute pixels.
// Malformed tokens fall back to the natural dimension.
func resolveImageAxis(token string, natural int) float64 {
	t := strings.TrimSpace(token)
	if t == "" {
		return float64(natural)
	}
	if pct, ok := strings.CutSuffix(t, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return float64(natural)
		}
		return float64(natural) * v / 100
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(t, "px"), 64)
	if err != nil {
		return float64(natural)
	}
	return v
}
