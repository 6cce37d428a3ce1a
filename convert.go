package gbconv

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/ginjol83/gameboy-png-converter/listing"
	"github.com/ginjol83/gameboy-png-converter/quant"
	"github.com/ginjol83/gameboy-png-converter/tile"
)

// Game Boy screen dimensions in pixels.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

func decodeImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

func writePNG(file string, m image.Image) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, m)
}

func writeFile(file string, b []byte) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(b)
	return err
}

// fitToScreen scales m to the Game Boy screen size with nearest neighbour
// sampling. Scaling happens before quantization so the scaler never has to
// invent palette colors.
func fitToScreen(m image.Image) image.Image {
	b := m.Bounds()
	if b.Dx() == ScreenWidth && b.Dy() == ScreenHeight {
		return m
	}

	dst := image.NewNRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst
}

// ConvertFile quantizes the image at src to the Game Boy palette and
// writes the result to dst as PNG. If fit is true the image is first
// scaled to the 160x144 screen.
func (c *Converter) ConvertFile(src, dst string, fit bool) error {
	m, err := decodeImage(src)
	if err != nil {
		return err
	}

	if fit {
		m = fitToScreen(m)
	}

	q, err := quant.Quantize(m)
	if err != nil {
		return err
	}

	b := q.Bounds()
	c.logger.Printf("quantized \"%s\" (%dx%d)\n", src, b.Dx(), b.Dy())

	return writePNG(dst, q)
}

// ExportFile quantizes the image at src, encodes it as Game Boy tile data
// and writes both the raw bytes and a generated C listing into dir. An
// empty name derives the identifier from the source file name. The
// encoded data is also recorded in the tile cache.
func (c *Converter) ExportFile(src, name, dir string, fit bool) error {
	m, err := decodeImage(src)
	if err != nil {
		return err
	}

	if fit {
		m = fitToScreen(m)
	}

	q, err := quant.Quantize(m)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := tile.Encode(b, q); err != nil {
		return err
	}

	width, height := q.Bounds().Dx(), q.Bounds().Dy()
	tx, ty := tile.Grid(width, height)

	if name == "" {
		name = listing.BaseName(src)
	} else {
		name = listing.SanitizeName(name)
	}

	if err := writeFile(filepath.Join(dir, name+".2bpp"), b.Bytes()); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, name+".h"))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := listing.Render(f, listing.Listing{
		Name:       name,
		Width:      width,
		Height:     height,
		TileCountX: tx,
		TileCountY: ty,
		Data:       b.Bytes(),
	}); err != nil {
		return err
	}

	hash, err := sha1File(src)
	if err != nil {
		return err
	}
	if err := c.db.Store(hash, width, height, b.Bytes()); err != nil {
		return err
	}

	c.logger.Printf("exported \"%s\" as \"%s\" (%dx%d tiles, %d bytes)\n", src, name, tx, ty, b.Len())

	return nil
}
