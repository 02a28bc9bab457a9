// internal/charts/palette.go
package charts

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Professional color scheme shared by every chart.
var (
	colorPrimary   = color.RGBA{R: 0x2E, G: 0x86, B: 0xC1, A: 0xFF} // professional blue
	colorSecondary = color.RGBA{R: 0x28, G: 0xB4, B: 0x63, A: 0xFF} // success green
	colorAccent    = color.RGBA{R: 0xF3, G: 0x9C, B: 0x12, A: 0xFF} // warning orange
	colorDanger    = color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF} // alert red
	colorDark      = color.RGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF} // dark blue-gray
)

// seriesPalette cycles across categorical series.
var seriesPalette = []color.RGBA{colorPrimary, colorSecondary, colorAccent, colorDanger, colorDark}

var piePalette = []drawing.Color{
	drawing.ColorFromHex("2E86C1"),
	drawing.ColorFromHex("28B463"),
	drawing.ColorFromHex("F39C12"),
	drawing.ColorFromHex("E74C3C"),
	drawing.ColorFromHex("2C3E50"),
}

func seriesColor(i int) color.RGBA {
	return seriesPalette[i%len(seriesPalette)]
}

func pieColor(i int) drawing.Color {
	return piePalette[i%len(piePalette)]
}
