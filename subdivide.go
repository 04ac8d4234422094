package fractal

import (
	"math"
	"slices"
)

// SubdivisionTemplate describes how one segment is replaced during a pass of
// [Subdivide]. Each entry is an interior point of the replacement, expressed in
// the frame of the segment being replaced: for a segment from p0 to p1 with
// d = p1 − p0, the entry ⟨u, v⟩ stands for p0 + u·d + v·d⊥, where d⊥ is d
// turned a quarter anti-clockwise.
//
// The segment's endpoints are implicit and always preserved.
type SubdivisionTemplate []Vec2

// Factor returns the number of segments each segment is replaced by.
func (tmpl SubdivisionTemplate) Factor() int {
	return len(tmpl) + 1
}

var (
	// KochTemplate replaces a segment by four segments. The peak sits at
	// d/2 + (d/3)·e^{iπ/3} from the segment's start, that is above the end of
	// the middle third, so the bump leans forward and drops vertically back
	// onto the segment.
	KochTemplate = SubdivisionTemplate{
		{1.0 / 3.0, 0},
		{0.5 + 1.0/6.0, math.Sqrt(3) / 6},
		{2.0 / 3.0, 0},
	}

	// KochEquilateralTemplate is the textbook Koch construction: four
	// segments of a third of the length, with an equilateral bump on the
	// middle third.
	KochEquilateralTemplate = SubdivisionTemplate{
		{1.0 / 3.0, 0},
		{0.5, math.Sqrt(3) / 6},
		{2.0 / 3.0, 0},
	}

	// MinkowskiTemplate replaces a segment by eight segments of a quarter of
	// its length, stepping out to the left and then to the right of the
	// original segment.
	MinkowskiTemplate = SubdivisionTemplate{
		{0.25, 0},
		{0.25, 0.25},
		{0.5, 0.25},
		{0.5, 0},
		{0.5, -0.25},
		{0.75, -0.25},
		{0.75, 0},
	}
)

// Subdivide applies tmpl to every segment of the polyline pts, level times. The
// last point of pts is emitted once at the very end, so shared vertices are
// never duplicated.
//
// With a level of 0 the result is a copy of pts. Polylines of fewer than two
// points have no segments to replace and are returned as a copy, too; they
// aren't meaningful input.
//
// The number of points grows by a factor of tmpl.Factor() per level.
func Subdivide(pts []Point, tmpl SubdivisionTemplate, level int) []Point {
	out := slices.Clone(pts)
	if len(pts) < 2 {
		return out
	}
	for range level {
		next := make([]Point, 0, (len(out)-1)*tmpl.Factor()+1)
		for l := range Polyline(out) {
			next = append(next, l.P0)
			next = tmpl.appendInterior(next, l)
		}
		next = append(next, out[len(out)-1])
		out = next
	}
	return out
}

func (tmpl SubdivisionTemplate) appendInterior(dst []Point, l Line) []Point {
	d := l.P1.Sub(l.P0)
	n := d.Turn()
	for _, uv := range tmpl {
		dst = append(dst, l.P0.Translate(d.Mul(uv.X).Add(n.Mul(uv.Y))))
	}
	return dst
}

// SubdivideComplex is like [Subdivide] for a polyline given as complex
// numbers x + yi.
func SubdivideComplex(zs []complex128, tmpl SubdivisionTemplate, level int) []complex128 {
	pts := make([]Point, len(zs))
	for i, z := range zs {
		pts[i] = PtFromComplex(z)
	}
	pts = Subdivide(pts, tmpl, level)
	out := make([]complex128, len(pts))
	for i, pt := range pts {
		out[i] = pt.Complex()
	}
	return out
}

// Koch returns the Koch curve of the given level built on the polyline pts,
// using [KochTemplate].
func Koch(pts []Point, level int) []Point {
	return Subdivide(pts, KochTemplate, level)
}

// Minkowski returns the Minkowski sausage of the given level built on the
// polyline pts.
func Minkowski(pts []Point, level int) []Point {
	return Subdivide(pts, MinkowskiTemplate, level)
}
