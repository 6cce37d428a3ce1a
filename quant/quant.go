/*
Package quant maps true color images onto the Game Boy palette.

Quantization replaces the RGB value of every pixel with the nearest palette
entry and leaves the alpha channel untouched. The transform is pure and per
pixel; output pixel i always corresponds to input pixel i.
*/
package quant

import (
	"errors"
	"image"
	"image/color"

	"github.com/ginjol83/gameboy-png-converter/palette"
)

// ErrInvalidDimensions is returned when a buffer has non-positive
// dimensions or its pixel data does not match them.
var ErrInvalidDimensions = errors.New("quant: invalid dimensions")

// Quantize returns a copy of m with every pixel replaced by the nearest
// Game Boy palette color. Alpha is preserved verbatim and the result is
// anchored at the origin.
func Quantize(m image.Image) (*image.NRGBA, error) {
	b := m.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, ErrInvalidDimensions
	}

	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			p := palette.Nearest(c.R, c.G, c.B)
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{p.R, p.G, p.B, c.A})
		}
	}

	return out, nil
}

// Buffer quantizes a raw RGBA pixel buffer of width by height pixels, four
// bytes per pixel. The input buffer is not modified.
func Buffer(width, height int, pix []uint8) ([]uint8, error) {
	if width < 1 || height < 1 || len(pix) != width*height*4 {
		return nil, ErrInvalidDimensions
	}

	out := make([]uint8, len(pix))
	for i := 0; i < len(pix); i += 4 {
		p := palette.Nearest(pix[i], pix[i+1], pix[i+2])
		out[i], out[i+1], out[i+2], out[i+3] = p.R, p.G, p.B, pix[i+3]
	}

	return out, nil
}
