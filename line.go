package fractal

import (
	"iter"
)

// Line represents a line segment, as drawn by a turtle or as one edge of a
// polyline.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// BoundingBox returns the smallest rectangle containing the line. Its width and
// height are non-negative.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Eval returns the point at parameter t, with t = 0 at P0 and t = 1 at P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Polyline returns the consecutive segments of pts. It yields nothing for
// fewer than two points.
func Polyline(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pts); i++ {
			if !yield(Line{pts[i-1], pts[i]}) {
				return
			}
		}
	}
}

// LinesBounds returns the smallest rectangle enclosing all lines of seq. It
// returns the zero Rect if seq is empty.
func LinesBounds(seq iter.Seq[Line]) Rect {
	var (
		r     Rect
		first = true
	)
	for l := range seq {
		if first {
			r = l.BoundingBox()
			first = false
			continue
		}
		r = r.Union(l.BoundingBox())
	}
	return r
}
