package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"slices"

	"honnef.co/go/fractal"
)

var (
	Black = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	White = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Green = color.RGBA{0x22, 0x8B, 0x22, 0xFF}
	Blue  = color.RGBA{0x1F, 0x77, 0xB4, 0xFF}
	Red   = color.RGBA{0xD6, 0x27, 0x28, 0xFF}
)

// Options configures the plotting functions.
type Options struct {
	Width, Height int
	// Margin is the blank border around the drawing, in pixels.
	Margin int
	// Background and Foreground colors. Zero values mean white and black.
	Background color.Color
	Foreground color.Color
}

// DefaultOptions returns an 800×800 image with a 16 pixel margin.
func DefaultOptions() Options {
	return Options{
		Width:  800,
		Height: 800,
		Margin: 16,
	}
}

func (o Options) colors() (bg, fg color.Color) {
	bg, fg = o.Background, o.Foreground
	if bg == nil {
		bg = White
	}
	if fg == nil {
		fg = Black
	}
	return bg, fg
}

// Polyline draws the polyline through pts, scaled to fit.
func Polyline(pts []fractal.Point, o Options) *image.RGBA {
	bg, fg := o.colors()
	cv := NewCanvas(o.Width, o.Height, o.Margin, fractal.Bounds(pts), bg)
	cv.DrawLines(fractal.Polyline(pts), fg)
	return cv.Image()
}

// Lines draws independent segments, scaled to fit.
func Lines(lines []fractal.Line, o Options) *image.RGBA {
	bg, fg := o.colors()
	cv := NewCanvas(o.Width, o.Height, o.Margin, fractal.LinesBounds(slices.Values(lines)), bg)
	cv.DrawLines(slices.Values(lines), fg)
	return cv.Image()
}

// Scatter plots one pixel per point, scaled to fit.
func Scatter(pts []fractal.Point, o Options) *image.RGBA {
	bg, fg := o.colors()
	cv := NewCanvas(o.Width, o.Height, o.Margin, fractal.Bounds(pts), bg)
	cv.DrawPoints(pts, fg)
	return cv.Image()
}

// Grid renders a width×height scalar field through cm. at(x, y) must return a
// value in [0, 1]; y = 0 is the bottom row of the image.
func Grid(width, height int, at func(x, y int) float64, cm Colormap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetRGBA(x, height-1-y, cm.At(at(x, y)))
		}
	}
	return img
}

// EscapeGrid renders escape times normalized by the grid's maximum, with the
// real axis running left to right and the imaginary axis bottom to top.
func EscapeGrid(g fractal.EscapeGrid, cm Colormap) *image.RGBA {
	scale := float64(g.Max())
	if scale == 0 {
		scale = 1
	}
	return Grid(g.Rows, g.Cols, func(x, y int) float64 {
		return float64(g.At(x, y)) / scale
	}, cm)
}

// LogLog plots (log size, log count) for every box count as a marker, and the
// line log(count) = slope·log(size) + intercept across the same range.
func LogLog(counts []fractal.BoxCount, slope, intercept float64, o Options) *image.RGBA {
	bg, _ := o.colors()
	pts := make([]fractal.Point, 0, len(counts))
	for _, bc := range counts {
		if bc.Size <= 0 || bc.Count <= 0 {
			continue
		}
		pts = append(pts, fractal.Pt(math.Log(float64(bc.Size)), math.Log(float64(bc.Count))))
	}
	bounds := fractal.Bounds(pts)
	fit := fractal.Line{
		P0: fractal.Pt(bounds.X0, slope*bounds.X0+intercept),
		P1: fractal.Pt(bounds.X1, slope*bounds.X1+intercept),
	}
	bounds = bounds.Union(fit.BoundingBox())
	cv := NewCanvas(o.Width, o.Height, o.Margin, bounds, bg)
	cv.DrawLine(fit, Red)
	for _, pt := range pts {
		cv.DrawMarker(pt, 3, Blue)
	}
	return cv.Image()
}

// SavePNG encodes img as PNG to path, replacing any existing file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
