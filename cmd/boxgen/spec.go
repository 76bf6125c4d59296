package main

import (
	"fmt"
	"strconv"

	canvasrenderer "github.com/VitaTsui/canvas-renderer"
)

// boxSpec mirrors the TOML document layout. Zero values mean "auto" or
// "unset", matching the renderer's own conventions.
type boxSpec struct {
	Width   float64   `toml:"width"`
	Height  float64   `toml:"height"`
	Padding []float64 `toml:"padding"`
	Content []string  `toml:"content"`

	Background *struct {
		Color    string            `toml:"color"`
		Gradient map[string]string `toml:"gradient"`
		Image    *struct {
			Source   string    `toml:"source"`
			Width    string    `toml:"width"`
			Height   string    `toml:"height"`
			Position []float64 `toml:"position"`
		} `toml:"image"`
	} `toml:"background"`

	Border *struct {
		Color  string    `toml:"color"`
		Width  float64   `toml:"width"`
		Radius []float64 `toml:"radius"`
	} `toml:"border"`

	Font struct {
		Family        string  `toml:"family"`
		Size          string  `toml:"size"`
		Weight        string  `toml:"weight"`
		Style         string  `toml:"style"`
		Color         string  `toml:"color"`
		BorderColor   string  `toml:"border_color"`
		BorderWidth   float64 `toml:"border_width"`
		LetterSpacing float64 `toml:"letter_spacing"`
		RowGap        float64 `toml:"row_gap"`
		TextWidth     float64 `toml:"text_width"`
		Align         string  `toml:"align"`
	} `toml:"font"`
}

func (s *boxSpec) toBox() (canvasrenderer.Box, error) {
	box := canvasrenderer.Box{
		Padding: canvasrenderer.Pad(s.Padding...),
		Content: s.Content,
	}
	if s.Width > 0 {
		box.Width = canvasrenderer.Px(s.Width)
	}
	if s.Height > 0 {
		box.Height = canvasrenderer.Px(s.Height)
	}

	if s.Background != nil {
		bg := &canvasrenderer.Background{Color: s.Background.Color}
		if len(s.Background.Gradient) > 0 {
			bg.Gradient = make(map[float64]string, len(s.Background.Gradient))
			for offset, color := range s.Background.Gradient {
				f, err := strconv.ParseFloat(offset, 64)
				if err != nil {
					return canvasrenderer.Box{}, fmt.Errorf("gradient offset %q: %w", offset, err)
				}
				bg.Gradient[f] = color
			}
		}
		if img := s.Background.Image; img != nil {
			bg.Image = &canvasrenderer.BackgroundImage{
				Source:   img.Source,
				Width:    img.Width,
				Height:   img.Height,
				Position: img.Position,
			}
		}
		box.Background = bg
	}

	if s.Border != nil {
		border := &canvasrenderer.Border{
			Color: s.Border.Color,
			Width: s.Border.Width,
		}
		switch len(s.Border.Radius) {
		case 0:
		case 1:
			border.Radius = canvasrenderer.Radius(s.Border.Radius[0])
		case 4:
			r := s.Border.Radius
			border.Radius = canvasrenderer.Corners(r[0], r[1], r[2], r[3])
		default:
			return canvasrenderer.Box{}, fmt.Errorf("border radius wants 1 or 4 values, got %d", len(s.Border.Radius))
		}
		box.Border = border
	}

	align, err := parseAlign(s.Font.Align)
	if err != nil {
		return canvasrenderer.Box{}, err
	}
	box.Font = canvasrenderer.Font{
		Family:        s.Font.Family,
		Size:          s.Font.Size,
		Weight:        s.Font.Weight,
		Style:         s.Font.Style,
		Color:         s.Font.Color,
		BorderColor:   s.Font.BorderColor,
		BorderWidth:   s.Font.BorderWidth,
		LetterSpacing: s.Font.LetterSpacing,
		RowGap:        s.Font.RowGap,
		TextWidth:     s.Font.TextWidth,
		Align:         align,
	}
	return box, nil
}

func parseAlign(s string) (canvasrenderer.Align, error) {
	switch s {
	case "", "left":
		return canvasrenderer.AlignLeft, nil
	case "center":
		return canvasrenderer.AlignCenter, nil
	case "right":
		return canvasrenderer.AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown align %q (want left, center or right)", s)
	}
}
