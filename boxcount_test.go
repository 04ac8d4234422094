package fractal

import (
	"errors"
	"math"
	"testing"
)

func filled(w, h int) Bitmap {
	b := NewBitmap(w, h)
	for i := range b.Pix {
		b.Pix[i] = 1
	}
	return b
}

func TestBoxCountsEdges(t *testing.T) {
	// 5×3 image with a single pixel in the bottom-right corner. With size 2
	// the grid is 3×2 boxes, the last row and column cut off by the border.
	b := NewBitmap(5, 3)
	b.Set(4, 2, true)
	want := []BoxCount{{1, 1}, {2, 1}, {4, 1}, {8, 1}}
	diff(t, want, BoxCounts(b, []int{8, 2, 4, 1, 2}))

	full := filled(5, 3)
	want = []BoxCount{{1, 15}, {2, 6}, {3, 2}, {5, 1}}
	diff(t, want, BoxCounts(full, []int{1, 2, 3, 5, 0, -4}))
}

func TestBoxCountsMonotonic(t *testing.T) {
	pts, err := ChaosGame(BarnsleyFern(), 5000, 100, NewRand(5))
	if err != nil {
		t.Fatal(err)
	}
	b := NewBitmap(128, 128)
	r := Bounds(pts)
	for _, pt := range pts {
		x := int((pt.X - r.X0) / r.Width() * 127)
		y := int((pt.Y - r.Y0) / r.Height() * 127)
		b.Set(x, 127-y, true)
	}
	counts := BoxCounts(b, LogSizes(1, 64, 12))
	for i := 1; i < len(counts); i++ {
		if counts[i].Count > counts[i-1].Count {
			t.Errorf("count rose from %v to %v", counts[i-1], counts[i])
		}
	}
}

func TestBoxCountsEmpty(t *testing.T) {
	b := NewBitmap(16, 16)
	for _, bc := range BoxCounts(b, LogSizes(1, 8, 4)) {
		if bc.Count != 0 {
			t.Errorf("size %d: got %d, want 0", bc.Size, bc.Count)
		}
	}
	if _, err := Dimension(b, DefaultDimensionConfig()); !errors.Is(err, ErrEmptyBox) {
		t.Errorf("got %v, want ErrEmptyBox", err)
	}
}

func TestLogSizes(t *testing.T) {
	diff(t, []int{1, 2, 4, 8, 16, 32}, LogSizes(1, 32, 6))
	diff(t, []int{1, 2, 3, 4, 6, 10, 14, 21, 32}, LogSizes(1, 32, 10))
	diff(t, []int{1, 2, 4, 7, 12, 21, 35, 59, 100}, LogSizes(1, 100, 10))
	diff(t, []int{1}, LogSizes(1, 1, 10))
	diff(t, []int{1, 2}, LogSizes(0, 2, 10))
	if got := LogSizes(4, 2, 10); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestFitLine(t *testing.T) {
	slope, intercept, err := FitLine([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(slope-2) > 1e-12 || math.Abs(intercept-1) > 1e-12 {
		t.Errorf("got y = %g·x + %g, want y = 2·x + 1", slope, intercept)
	}

	if _, _, err := FitLine([]float64{1}, []float64{1}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
	if _, _, err := FitLine([]float64{2, 2}, []float64{1, 5}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
}

func TestFitDimensionExact(t *testing.T) {
	sizes := []int{1, 2, 4, 8, 16}

	res, err := FitDimension(BoxCounts(filled(64, 64), sizes))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.D-2) > 1e-9 {
		t.Errorf("filled square: got D = %g, want 2", res.D)
	}

	line := NewBitmap(64, 64)
	for x := range 64 {
		line.Set(x, 10, true)
	}
	res, err = FitDimension(BoxCounts(line, sizes))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.D-1) > 1e-9 {
		t.Errorf("line: got D = %g, want 1", res.D)
	}
	if res.Slope != -res.D {
		t.Errorf("slope %g isn't -D", res.Slope)
	}
}

func TestDimensionDefaults(t *testing.T) {
	res, err := Dimension(filled(64, 64), DefaultDimensionConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Counts) != 9 {
		t.Errorf("got %d box sizes, want 9", len(res.Counts))
	}
	if res.D < 1.85 || res.D > 2.0 {
		t.Errorf("got D = %g, want close to 2", res.D)
	}
}

func TestDimensionInsufficientData(t *testing.T) {
	b := filled(8, 8)
	if _, err := FitDimension(BoxCounts(b, []int{4, 4, 4})); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
	// A 3×3 image has a largest box of 1.
	if _, err := Dimension(filled(3, 3), DefaultDimensionConfig()); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
	if _, err := Dimension(b, DimensionConfig{MinBox: 2, MaxBox: 2, NumSizes: 5}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
}
