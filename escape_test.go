package fractal

import (
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinspace(t *testing.T) {
	diff(t, []float64{-2, -1.25, -0.5, 0.25, 1}, Linspace(-2, 1, 5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, []float64{3}, Linspace(3, 7, 1))
	if got := Linspace(0, 1, 0); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := Linspace(0, 0.3, 7); got[6] != 0.3 {
		t.Errorf("last value %g, want exactly 0.3", got[6])
	}
}

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		z, c complex128
		want int
	}{
		{0, 0, 9},
		{0, -1, 9},
		// 0 → 1 → 2 → 5
		{0, 1, 2},
		// 0 → -1-i → -1+i → -1-3i
		{0, -1 - 1i, 2},
		{3, 0, 0},
		// 1.2 → 1.44 → 2.0736
		{1.2, 0, 1},
	}
	for _, tt := range tests {
		if got := EscapeTime(tt.z, tt.c, 10); got != tt.want {
			t.Errorf("EscapeTime(%v, %v) = %d, want %d", tt.z, tt.c, got, tt.want)
		}
	}
}

func TestMandelbrotOrigin(t *testing.T) {
	for _, maxIter := range []int{1, 2, 10, 100} {
		cfg := EscapeConfig{View: Rect{-1, -1, 1, 1}, Width: 3, Height: 3, MaxIter: maxIter}
		g := Mandelbrot(cfg)
		if got := g.At(1, 1); got != maxIter-1 {
			t.Errorf("max iter %d: origin recorded %d, want %d", maxIter, got, maxIter-1)
		}
	}
}

func TestMandelbrotLayout(t *testing.T) {
	cfg := EscapeConfig{View: Rect{-2, -1.5, 1, 1.5}, Width: 7, Height: 5, MaxIter: 30}
	g := Mandelbrot(cfg)
	if g.Rows != 7 || g.Cols != 5 || len(g.Counts) != 35 {
		t.Fatalf("got %d×%d grid with %d counts", g.Rows, g.Cols, len(g.Counts))
	}
	xs := Linspace(-2, 1, 7)
	ys := Linspace(-1.5, 1.5, 5)
	for r, x := range xs {
		for c, y := range ys {
			if got, want := g.At(r, c), EscapeTime(0, complex(x, y), 30); got != want {
				t.Errorf("At(%d, %d) = %d, want %d for c = %v", r, c, got, want, complex(x, y))
			}
		}
	}
}

func TestJuliaZero(t *testing.T) {
	// With c = 0 the filled Julia set is the closed unit disk.
	cfg := EscapeConfig{View: Rect{-2, -2, 2, 2}, Width: 41, Height: 41, MaxIter: 20}
	g := Julia(0, cfg)
	xs := Linspace(-2, 2, 41)
	ys := Linspace(-2, 2, 41)
	for r, x := range xs {
		for c, y := range ys {
			z := complex(x, y)
			got := g.At(r, c)
			switch abs := cmplx.Abs(z); {
			case abs <= 1:
				if got != cfg.MaxIter-1 {
					t.Errorf("z0 = %v inside the disk escaped at %d", z, got)
				}
			case abs > 2:
				if got != 0 {
					t.Errorf("z0 = %v outside the radius recorded %d", z, got)
				}
			}
			if want := EscapeTime(z, 0, cfg.MaxIter); got != want {
				t.Errorf("z0 = %v: got %d, want %d", z, got, want)
			}
		}
	}
}

func TestJuliaPresets(t *testing.T) {
	cfg := DefaultJuliaConfig()
	cfg.Width, cfg.Height = 40, 30
	for _, c := range JuliaPresets {
		g := Julia(c, cfg)
		if g.Max() == 0 || g.Max() > cfg.MaxIter-1 {
			t.Errorf("c = %v: max escape time %d", c, g.Max())
		}
	}
}

func TestEscapeTimesFrozen(t *testing.T) {
	// A sample that escaped keeps its value no matter how many more
	// iterations run.
	z := []complex128{0, 0}
	c := []complex128{1, 0}
	got := escapeTimes(z, c, 50)
	diff(t, []int{2, 49}, got)
	if cmplx.Abs(z[0]) != 5 {
		t.Errorf("escaped iterate changed to %v", z[0])
	}
}

func TestEscapeGridEmpty(t *testing.T) {
	g := Mandelbrot(EscapeConfig{View: Rect{-1, -1, 1, 1}, MaxIter: 10})
	if g.Rows != 0 || g.Cols != 0 || len(g.Counts) != 0 || g.Max() != 0 {
		t.Errorf("got %+v", g)
	}
}
