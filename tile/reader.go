package tile

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/ginjol83/gameboy-png-converter/palette"
)

var (
	errNotEnough = errors.New("tile: not enough tile data")
	errTooMuch   = errors.New("tile: too much tile data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Palette returns the Game Boy palette as an opaque color.Palette.
func Palette() color.Palette {
	p := make(color.Palette, len(palette.DMG))
	for i, c := range palette.DMG {
		p[i] = color.NRGBA{c.R, c.G, c.B, 0xff}
	}
	return p
}

type decoder struct {
	r io.Reader

	image *image.Paletted
}

func (d *decoder) decode(width, height int) error {
	tx, ty := Grid(width, height)

	d.image = image.NewPaletted(image.Rect(0, 0, width, height), Palette())

	var row [bytesPerRow]byte
	for tyi := 0; tyi < ty; tyi++ {
		for txi := 0; txi < tx; txi++ {
			for y := 0; y < tileHeight; y++ {
				if err := readFull(d.r, row[:]); err != nil {
					if err != io.ErrUnexpectedEOF {
						return err
					}
					return errNotEnough
				}
				for x := 0; x < tileWidth; x++ {
					dx := txi*tileWidth + x
					dy := tyi*tileHeight + y

					// Padding bits of partial edge tiles
					if dx >= width || dy >= height {
						continue
					}

					var i uint8
					if row[0]&(1<<(7-x)) != 0 {
						i |= 1
					}
					if row[1]&(1<<(7-x)) != 0 {
						i |= 2
					}
					d.image.SetColorIndex(dx, dy, i)
				}
			}
		}
	}

	var tmp [1]byte
	if n, err := d.r.Read(tmp[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil && err != io.EOF {
			return err
		}
		return errTooMuch
	}

	return nil
}

// Decode reads Game Boy tile data for an image of the given dimensions
// from r and returns it as a paletted image.
func Decode(r io.Reader, width, height int) (image.Image, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}

	d := decoder{r: r}
	if err := d.decode(width, height); err != nil {
		return nil, err
	}
	return d.image, nil
}
