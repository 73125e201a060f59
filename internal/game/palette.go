package game

import "image/color"

var (
	colorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorFood       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorFoodGlow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorScore      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGameOver   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorNotice     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorLogPanel   = color.RGBA{R: 10, G: 12, B: 10, A: 200}
)

// segmentShade is how much darker each segment is than the one before it.
const segmentShade = 5

// SegmentColor is the fill for body segment i: a green that darkens
// towards the tail and wraps back to full brightness every 51 segments.
func SegmentColor(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	g := 255 - (i*segmentShade)%255
	return color.RGBA{R: 0, G: uint8(g), B: 0, A: 255}
}

// FoodColor is the food fill.
func FoodColor() color.RGBA { return colorFood }

// FoodGlowColor is the border drawn around the food cell.
func FoodGlowColor() color.RGBA { return colorFoodGlow }
