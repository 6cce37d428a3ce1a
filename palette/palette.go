/*
Package palette defines the four shade Game Boy palette and the color
matching rules used by the converter.

The palette order is significant; several operations resolve ties by
preferring the lowest index so the order must never change.
*/
package palette

import "math"

// Color is an RGB triple. The palette carries no alpha information.
type Color struct {
	R, G, B uint8
}

// DMG is the classic Game Boy green palette, lightest to darkest.
var DMG = [4]Color{
	{155, 188, 15},
	{139, 172, 15},
	{48, 98, 48},
	{15, 56, 15},
}

// Distance returns the Euclidean distance between two colors in RGB space.
func Distance(c1, c2 Color) float64 {
	r := float64(c1.R) - float64(c2.R)
	g := float64(c1.G) - float64(c2.G)
	b := float64(c1.B) - float64(c2.B)
	return math.Sqrt(r*r + g*g + b*b)
}

// Nearest returns the palette entry closest to the given RGB value.
// Entries are compared in declared order and only a strictly smaller
// distance replaces the current best, so an equidistant candidate always
// loses to the lower index.
func Nearest(r, g, b uint8) Color {
	c := Color{r, g, b}
	best := DMG[0]
	min := Distance(c, DMG[0])
	for _, p := range DMG[1:] {
		if d := Distance(c, p); d < min {
			best, min = p, d
		}
	}
	return best
}

// Index returns the palette index of an exact RGB match. Any other color
// maps to index 0, so callers must quantize before relying on the result.
func Index(r, g, b uint8) uint8 {
	for i, p := range DMG {
		if p.R == r && p.G == g && p.B == b {
			return uint8(i)
		}
	}
	return 0
}
