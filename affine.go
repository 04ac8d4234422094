package fractal

import (
	"iter"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (N0, N1, N2, N3, N4, N5), then the resulting
// transformation represents this augmented matrix:
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// so that x' = N0·x + N2·y + N4 and y' = N1·x + N3·y + N5. The idea is that
// (A * B) * v == A * (B * v).
//
// Textbook IFS tables list their maps row by row as (a, b, c, d, e, f) with
// x' = a·x + b·y + e and y' = c·x + d·y + f; use [NewIFSMap] to convert them.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// FitRect returns the transform that maps src into dst, scaled uniformly so
// that src's aspect ratio is preserved, centered in dst. The y-axis is
// flipped, turning a y-up world rectangle into y-down image coordinates.
//
// A zero-width or zero-height src is treated as a unit-sized one.
func FitRect(src, dst Rect) Affine {
	src = src.Abs()
	dst = dst.Abs()
	w, h := src.Width(), src.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	s := min(dst.Width()/w, dst.Height()/h)
	c := src.Center()
	d := dst.Center()
	return Translate(Vec2(c).Negate()).
		ThenScale(s, -s).
		ThenTranslate(Vec2(d))
}

// Transform applies aff to every value of seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
