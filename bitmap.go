package fractal

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// DefaultThreshold is the luma above which a pixel counts as foreground.
const DefaultThreshold = 128

// Bitmap is a binary image. Pix holds one 0 or 1 per pixel, row by row from
// the top.
type Bitmap struct {
	Width, Height int
	Pix           []uint8
}

// NewBitmap returns an all-zero bitmap.
func NewBitmap(width, height int) Bitmap {
	return Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the value at column x and row y.
func (b Bitmap) At(x, y int) uint8 {
	return b.Pix[y*b.Width+x]
}

// Set sets the pixel at column x and row y to 1 if on, or 0 otherwise.
func (b Bitmap) Set(x, y int, on bool) {
	var v uint8
	if on {
		v = 1
	}
	b.Pix[y*b.Width+x] = v
}

// Count returns the number of foreground pixels.
func (b Bitmap) Count() int {
	var n int
	for _, v := range b.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Gray returns the bitmap as a black and white image, foreground in white.
func (b Bitmap) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for i, v := range b.Pix {
		if v != 0 {
			img.Pix[(i/b.Width)*img.Stride+i%b.Width] = 0xFF
		}
	}
	return img
}

// BitmapFromImage converts img to 8-bit luma (ITU-R 601 weights) and marks
// every pixel whose luma exceeds threshold. Alpha is discarded: luma is taken
// from the non-premultiplied color, so a transparent white pixel counts as
// white.
func BitmapFromImage(img image.Image, threshold uint8) Bitmap {
	r := img.Bounds()
	b := NewBitmap(r.Dx(), r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 0xFF
			g := color.GrayModel.Convert(c).(color.Gray)
			if g.Y > threshold {
				b.Pix[(y-r.Min.Y)*b.Width+(x-r.Min.X)] = 1
			}
		}
	}
	return b
}

// LoadBitmap decodes the PNG, JPEG or GIF image at path and binarizes it with
// [BitmapFromImage].
//
// If the file doesn't exist, the returned error matches [fs.ErrNotExist].
//
// [fs.ErrNotExist]: https://pkg.go.dev/io/fs#ErrNotExist
func LoadBitmap(path string, threshold uint8) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, fmt.Errorf("load bitmap: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return Bitmap{}, fmt.Errorf("load bitmap %s: %w", path, err)
	}
	return BitmapFromImage(img, threshold), nil
}
