package fractal

import (
	"math/cmplx"
)

// EscapeRadius is the magnitude beyond which an orbit of z ↦ z² + c is known to
// diverge.
const EscapeRadius = 2

// Linspace returns n evenly spaced values from lo to hi, both inclusive. For
// n == 1 it returns just lo; for n <= 0 it returns nil.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// EscapeConfig describes the sampling of an escape-time image.
type EscapeConfig struct {
	// View is the region of the complex plane, with X along the real axis
	// and Y along the imaginary axis. Both edges are sampled.
	View Rect
	// Width and Height are the number of samples along the real and
	// imaginary axes.
	Width, Height int
	// MaxIter caps the number of iterations per sample.
	MaxIter int
}

// DefaultMandelbrotConfig samples [-2, 1] × [-1.5, 1.5] at 800×800 with 100
// iterations.
func DefaultMandelbrotConfig() EscapeConfig {
	return EscapeConfig{
		View:    Rect{X0: -2, Y0: -1.5, X1: 1, Y1: 1.5},
		Width:   800,
		Height:  800,
		MaxIter: 100,
	}
}

// DefaultJuliaConfig samples [-2, 2] × [-2, 2] at 800×800 with 100 iterations.
func DefaultJuliaConfig() EscapeConfig {
	return EscapeConfig{
		View:    Rect{X0: -2, Y0: -2, X1: 2, Y1: 2},
		Width:   800,
		Height:  800,
		MaxIter: 100,
	}
}

// JuliaPresets are parameters yielding well-known Julia sets.
var JuliaPresets = []complex128{
	-0.8 + 0.156i,
	-0.4 + 0.6i,
	0.285 + 0.01i,
	-0.70176 - 0.3842i,
}

// EscapeGrid holds one escape time per sample.
//
// Rows run along the real axis and columns along the imaginary axis, i.e. the
// grid is the transpose of the usual row = y, column = x sample layout.
// Counts is stored row-major.
type EscapeGrid struct {
	Rows, Cols int
	Counts     []int
}

// At returns the escape time at row r (real axis sample r) and column c
// (imaginary axis sample c).
func (g EscapeGrid) At(r, c int) int {
	return g.Counts[r*g.Cols+c]
}

// Max returns the largest escape time in the grid, or 0 for an empty grid.
func (g EscapeGrid) Max() int {
	var m int
	for _, v := range g.Counts {
		m = max(m, v)
	}
	return m
}

// Mandelbrot computes escape times of z ↦ z² + c starting from z = 0, with c
// taken from the sample grid.
func Mandelbrot(cfg EscapeConfig) EscapeGrid {
	c := cfg.samples()
	z := make([]complex128, len(c))
	return cfg.grid(escapeTimes(z, c, cfg.MaxIter))
}

// Julia computes escape times of z ↦ z² + c for a fixed c, with the starting
// value z taken from the sample grid.
func Julia(c complex128, cfg EscapeConfig) EscapeGrid {
	z := cfg.samples()
	return cfg.grid(escapeTimes(z, []complex128{c}, cfg.MaxIter))
}

// EscapeTime iterates z ↦ z² + c from z and returns the last iteration index,
// below maxIter, at which |z| was still within EscapeRadius. Orbits that
// never escape return maxIter−1; a starting value already outside the radius
// returns 0.
func EscapeTime(z, c complex128, maxIter int) int {
	var n int
	for j := range maxIter {
		if cmplx.Abs(z) > EscapeRadius {
			break
		}
		n = j
		z = z*z + c
	}
	return n
}

// samples returns the sample grid in output order: index r*Height+c holds
// xs[r] + ys[c]·i.
func (cfg EscapeConfig) samples() []complex128 {
	xs := Linspace(cfg.View.X0, cfg.View.X1, cfg.Width)
	ys := Linspace(cfg.View.Y0, cfg.View.Y1, cfg.Height)
	out := make([]complex128, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, complex(x, y))
		}
	}
	return out
}

func (cfg EscapeConfig) grid(counts []int) EscapeGrid {
	return EscapeGrid{
		Rows:   max(cfg.Width, 0),
		Cols:   max(cfg.Height, 0),
		Counts: counts,
	}
}

// escapeTimes iterates every z in place. c holds either one parameter per z or
// a single parameter shared by all of them.
//
// Every iteration first recomputes the set of active samples, those with
// |z| <= EscapeRadius, and then records the iteration index for and advances
// only those. Samples that left the radius are never touched again, so their
// count is frozen at the last iteration they were active.
func escapeTimes(z, c []complex128, maxIter int) []int {
	counts := make([]int, len(z))
	active := make([]bool, len(z))
	param := func(i int) complex128 {
		if len(c) == 1 {
			return c[0]
		}
		return c[i]
	}
	for j := range maxIter {
		live := false
		for i := range z {
			active[i] = cmplx.Abs(z[i]) <= EscapeRadius
			live = live || active[i]
		}
		if !live {
			break
		}
		for i, ok := range active {
			if !ok {
				continue
			}
			counts[i] = j
			z[i] = z[i]*z[i] + param(i)
		}
	}
	return counts
}
