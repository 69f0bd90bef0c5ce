package charts

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// flare is a warm sequential palette, light to dark.
var flare = []color.RGBA{
	{R: 0xe9, G: 0x8d, B: 0x6b, A: 0xff},
	{R: 0xe3, G: 0x68, B: 0x5c, A: 0xff},
	{R: 0xd1, G: 0x4a, B: 0x61, A: 0xff},
	{R: 0xb1, G: 0x3c, B: 0x6c, A: 0xff},
	{R: 0x8f, G: 0x33, B: 0x71, A: 0xff},
	{R: 0x6c, G: 0x2b, B: 0x6d, A: 0xff},
}

// paletteColor cycles through the palette.
func paletteColor(i int) color.RGBA {
	return flare[i%len(flare)]
}

// drawingColor is paletteColor in go-chart's color type.
func drawingColor(i int) drawing.Color {
	c := paletteColor(i)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
