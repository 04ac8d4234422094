// Package raster renders the output of the fractal generators into images:
// polylines and turtle drawings, point clouds, escape-time grids and log-log
// plots of box counts. It is a plotting collaborator only; none of the
// generators depend on it.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
	"math"

	"honnef.co/go/fractal"
)

// Canvas draws world-space geometry into an RGBA image. World coordinates are
// y-up; the canvas flips them so that larger y values end up nearer the top of
// the image.
type Canvas struct {
	img   *image.RGBA
	world fractal.Affine
}

// NewCanvas returns a width×height canvas filled with bg, with world mapped
// into the image inset by margin pixels on every side. The mapping preserves
// world's aspect ratio and centers it.
func NewCanvas(width, height, margin int, world fractal.Rect, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	dst := fractal.Rect{
		X0: float64(margin),
		Y0: float64(margin),
		X1: float64(width - margin),
		Y1: float64(height - margin),
	}
	return &Canvas{
		img:   img,
		world: fractal.FitRect(world, dst),
	}
}

// Image returns the underlying image.
func (cv *Canvas) Image() *image.RGBA { return cv.img }

// Transform returns the world-to-pixel transform.
func (cv *Canvas) Transform() fractal.Affine { return cv.world }

// DrawLine draws a one pixel wide line.
func (cv *Canvas) DrawLine(l fractal.Line, c color.Color) {
	cv.drawPixelLine(l.Transform(cv.world), c)
}

// DrawLines draws every line of seq.
func (cv *Canvas) DrawLines(seq iter.Seq[fractal.Line], c color.Color) {
	for l := range fractal.Transform(seq, cv.world) {
		cv.drawPixelLine(l, c)
	}
}

// DrawPoints plots one pixel per point.
func (cv *Canvas) DrawPoints(pts []fractal.Point, c color.Color) {
	for _, pt := range pts {
		cv.plot(pt.Transform(cv.world), c)
	}
}

// DrawMarker draws a filled square of side 2r+1 pixels centered on pt.
func (cv *Canvas) DrawMarker(pt fractal.Point, r int, c color.Color) {
	p := pt.Transform(cv.world)
	x0, y0 := int(math.Floor(p.X)), int(math.Floor(p.Y))
	for y := y0 - r; y <= y0+r; y++ {
		for x := x0 - r; x <= x0+r; x++ {
			cv.img.Set(x, y, c)
		}
	}
}

// drawPixelLine steps along the longer axis of l, plotting one pixel per step.
func (cv *Canvas) drawPixelLine(l fractal.Line, c color.Color) {
	if l.IsNaN() || l.IsInf() {
		return
	}
	d := l.P1.Sub(l.P0)
	steps := int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		cv.plot(l.P0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		cv.plot(l.Eval(float64(i)/float64(steps)), c)
	}
}

// plot sets the pixel containing p. Points outside the image are ignored.
func (cv *Canvas) plot(p fractal.Point, c color.Color) {
	if p.IsNaN() || p.IsInf() {
		return
	}
	cv.img.Set(int(math.Floor(p.X)), int(math.Floor(p.Y)), c)
}
