package layout

import (
	"fmt"
	"strings"
)

// Color is an RGB color with components in [0, 1].
// Commands carry colors so a rendering backend never consults shared style state.
type Color struct {
	R, G, B float64
}

// RGB creates a Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Hex converts a hex color string ("#RRGGBB" or "RRGGBB") to a Color.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return Color{0, 0, 0} // Default to black on invalid input
	}

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Command is a single backend-agnostic draw instruction. The layout engine
// emits commands; an adapter translates them to concrete drawing calls.
// Coordinates use the PDF convention: origin at the bottom-left of the page,
// y increasing upward.
type Command interface {
	command()
}

// FillRect fills an axis-aligned rectangle. X, Y is the bottom-left corner.
type FillRect struct {
	X, Y          float64
	Width, Height float64
	Color         Color
}

// StrokeLine strokes a straight line segment.
type StrokeLine struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Color  Color
}

// Text places a single line of text with its baseline at X, Y.
type Text struct {
	X, Y  float64
	Value string
	Size  float64
	Bold  bool
	Color Color
}

func (FillRect) command()   {}
func (StrokeLine) command() {}
func (Text) command()       {}
