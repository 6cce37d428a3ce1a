package tile

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/ginjol83/gameboy-png-converter/palette"
)

// ErrInvalidDimensions is returned when an image has non-positive
// dimensions.
var ErrInvalidDimensions = errors.New("tile: invalid dimensions")

type encoder struct {
	w io.Writer
	m image.Image
}

// index returns the 2-bit palette index of the pixel at (x, y), or 0 for
// positions outside the image.
func (e *encoder) index(x, y int) uint8 {
	b := e.m.Bounds()
	if x >= b.Max.X || y >= b.Max.Y {
		return 0
	}
	c := color.NRGBAModel.Convert(e.m.At(x, y)).(color.NRGBA)
	return palette.Index(c.R, c.G, c.B)
}

func (e *encoder) encodeTile(tx, ty int) error {
	b := e.m.Bounds()
	for y := 0; y < tileHeight; y++ {
		var lo, hi byte
		for x := 0; x < tileWidth; x++ {
			i := e.index(b.Min.X+tx*tileWidth+x, b.Min.Y+ty*tileHeight+y)
			if i&1 != 0 {
				lo |= 1 << (7 - x)
			}
			if i&2 != 0 {
				hi |= 1 << (7 - x)
			}
		}
		if _, err := e.w.Write([]byte{lo, hi}); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encode() error {
	b := e.m.Bounds()
	tx, ty := Grid(b.Dx(), b.Dy())
	for y := 0; y < ty; y++ {
		for x := 0; x < tx; x++ {
			if err := e.encodeTile(x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

// Encode writes the image m to w in Game Boy tile format. The image must
// already use the Game Boy palette; any other color encodes as palette
// index 0.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return ErrInvalidDimensions
	}

	e := encoder{w: w, m: m}

	return e.encode()
}
