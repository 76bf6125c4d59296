// Command boxgen renders a styled box described by a TOML file to a PNG.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	canvasrenderer "github.com/VitaTsui/canvas-renderer"
)

func main() {
	var (
		specPath = flag.String("spec", "box.toml", "box description file")
		output   = flag.String("out", "box.png", "output file")
		timeout  = flag.Duration("timeout", 30*time.Second, "render timeout (covers image fetches)")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		canvasrenderer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var spec boxSpec
	if _, err := toml.DecodeFile(*specPath, &spec); err != nil {
		log.Fatalf("Failed to read %s: %v", *specPath, err)
	}

	box, err := spec.toBox()
	if err != nil {
		log.Fatalf("Invalid box description: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dc, err := canvasrenderer.Render(ctx, box)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	if dc.Width() == 0 || dc.Height() == 0 {
		log.Println("Nothing to render: box resolved to an empty surface")
		os.Exit(1)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Box saved to %s (%dx%d)\n", *output, dc.Width(), dc.Height())
}
