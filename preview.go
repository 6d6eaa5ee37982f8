package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hwfonts/psf2verilog/psfutils"
)

const glyphsPerRow = 16

func cellShade(mapped bool) color.RGBA {
	shade := colorful.Hsl(36, 0.35, 0.93)

	if !mapped {
		shade = colorful.Hsl(0, 0.45, 0.85)
	}

	r, g, b := shade.RGB255()

	return color.RGBA{r, g, b, 0xFF}
}

func renderPreview(font *psfutils.Font) (*image.RGBA, error) {
	count := font.GlyphCount()

	if count == 0 || font.Height == 0 {
		return nil, errors.New("font has no glyph raster to render")
	}

	if int(font.Charsize) < bytesPerLine(font)*int(font.Height) {
		return nil, errors.Errorf("glyph raster of %d bytes is smaller than the declared %dx%d geometry", font.Charsize, font.Width, font.Height)
	}

	cellW := int(font.Width) + 1
	cellH := int(font.Height) + 1
	rows := (count + glyphsPerRow - 1) / glyphsPerRow

	img := image.NewRGBA(image.Rect(0, 0, 1+cellW*glyphsPerRow, 1+cellH*rows))

	gutter := color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	for x := 0; x < img.Rect.Max.X; x++ {
		for y := 0; y < img.Rect.Max.Y; y++ {
			img.Set(x, y, gutter)
		}
	}

	foreground := color.RGBA{0x10, 0x10, 0x10, 0xFF}

	// Rows cover disjoint pixel bands, so they can be drawn in parallel
	var g errgroup.Group

	for row := 0; row < rows; row++ {
		row := row

		g.Go(func() error {
			for col := 0; col < glyphsPerRow; col++ {
				i := row*glyphsPerRow + col
				if i >= count {
					break
				}

				drawGlyph(img, font, i, 1+col*cellW, 1+row*cellH, foreground)
			}

			return nil
		})
	}

	return img, g.Wait()
}

func bytesPerLine(font *psfutils.Font) int {
	return (int(font.Width) + 7) / 8
}

func drawGlyph(img *image.RGBA, font *psfutils.Font, i int, x0 int, y0 int, fg color.RGBA) {
	background := cellShade(glyphHasText(font, i))
	raster := font.Glyph(i)
	stride := bytesPerLine(font)

	for y := 0; y < int(font.Height); y++ {
		rowBits := raster[y*stride:]

		var data byte
		index := 0

		for x := 0; x < int(font.Width); x++ {
			if x%8 == 0 {
				data = rowBits[index]
				index++
			}

			if data&0x80 != 0 {
				img.Set(x0+x, y0+y, fg)
			} else {
				img.Set(x0+x, y0+y, background)
			}

			data <<= 1
		}
	}
}

func writePNGImage(img image.Image, name string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}

	defer fd.Close()
	return png.Encode(fd, img)
}
