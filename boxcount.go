package fractal

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrInsufficientData is returned when fewer than two distinct box sizes
	// are available for the log-log fit.
	ErrInsufficientData = errors.New("fractal: insufficient data for fit")
	// ErrEmptyBox is returned when some box size covers no foreground pixel,
	// so that log(count) is undefined.
	ErrEmptyBox = errors.New("fractal: box count of zero")
)

// BoxCount is the number of occupied boxes at one box size.
type BoxCount struct {
	Size  int
	Count int
}

// BoxCounts covers img with square boxes of each size and counts the boxes
// containing at least one foreground pixel. Boxes on the right and bottom edges
// may be cut off by the image border; they are counted like any other box.
//
// The result is ordered by ascending size. Duplicate and non-positive sizes are
// dropped. Counts never increase with size.
func BoxCounts(img Bitmap, sizes []int) []BoxCount {
	sizes = slices.DeleteFunc(slices.Clone(sizes), func(s int) bool { return s <= 0 })
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)

	out := make([]BoxCount, 0, len(sizes))
	for _, s := range sizes {
		rows := (img.Height + s - 1) / s
		cols := (img.Width + s - 1) / s
		occupied := make([]bool, rows*cols)
		n := 0
		for y := range img.Height {
			row := img.Pix[y*img.Width : (y+1)*img.Width]
			for x, v := range row {
				if v == 0 {
					continue
				}
				i := (y/s)*cols + x/s
				if !occupied[i] {
					occupied[i] = true
					n++
				}
			}
		}
		out = append(out, BoxCount{Size: s, Count: n})
	}
	return out
}

// LogSizes returns up to num box sizes spaced evenly on a logarithmic scale
// from minBox to maxBox, truncated to integers, clipped to [1, maxBox], and
// deduplicated. Small ranges therefore yield fewer than num sizes.
//
// It returns nil if maxBox < max(minBox, 1).
func LogSizes(minBox, maxBox, num int) []int {
	minBox = max(minBox, 1)
	if maxBox < minBox || num <= 0 {
		return nil
	}
	ts := Linspace(math.Log2(float64(minBox)), math.Log2(float64(maxBox)), num)
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		// Exp2 of an exact Log2 can land a hair below the integer.
		s := int(math.Floor(math.Exp2(t) + 1e-9))
		out = append(out, min(max(s, 1), maxBox))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// FitLine fits y = slope·x + intercept to the points by ordinary least squares.
// It fails with ErrInsufficientData unless there are at least two points with
// distinct x.
func FitLine(xs, ys []float64) (slope, intercept float64, err error) {
	n := min(len(xs), len(ys))
	if n < 2 {
		return 0, 0, fmt.Errorf("%d points: %w", n, ErrInsufficientData)
	}
	var sumX, sumY float64
	for i := range n {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	var sxx, sxy float64
	for i := range n {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return 0, 0, fmt.Errorf("all x equal: %w", ErrInsufficientData)
	}
	slope = sxy / sxx
	return slope, meanY - slope*meanX, nil
}

// DimensionResult is the outcome of a box-counting dimension estimate.
type DimensionResult struct {
	// D is the estimated dimension, the negated slope.
	D float64
	// Slope and Intercept describe the fitted line
	// log(count) = Slope·log(size) + Intercept.
	Slope     float64
	Intercept float64
	// Counts are the box counts the fit is based on.
	Counts []BoxCount
}

// FitDimension estimates the box-counting dimension from counts by fitting a
// line to (log size, log count).
func FitDimension(counts []BoxCount) (DimensionResult, error) {
	if len(counts) < 2 {
		return DimensionResult{}, fmt.Errorf("%d box sizes: %w", len(counts), ErrInsufficientData)
	}
	xs := make([]float64, len(counts))
	ys := make([]float64, len(counts))
	for i, bc := range counts {
		if bc.Count <= 0 {
			return DimensionResult{}, fmt.Errorf("box size %d: %w", bc.Size, ErrEmptyBox)
		}
		xs[i] = math.Log(float64(bc.Size))
		ys[i] = math.Log(float64(bc.Count))
	}
	slope, intercept, err := FitLine(xs, ys)
	if err != nil {
		return DimensionResult{}, err
	}
	return DimensionResult{
		D:         -slope,
		Slope:     slope,
		Intercept: intercept,
		Counts:    counts,
	}, nil
}

// DimensionConfig selects the box sizes used by [Dimension].
type DimensionConfig struct {
	// MinBox is the smallest box size. Values below 1 mean 1.
	MinBox int
	// MaxBox is the largest box size. 0 means half the smaller side of the
	// image.
	MaxBox int
	// NumSizes is the number of logarithmically spaced sizes before
	// deduplication.
	NumSizes int
}

// DefaultDimensionConfig returns ten sizes from 1 to half the image's smaller
// side.
func DefaultDimensionConfig() DimensionConfig {
	return DimensionConfig{
		MinBox:   1,
		NumSizes: 10,
	}
}

// Dimension estimates the box-counting dimension of img using the box sizes
// LogSizes(cfg.MinBox, cfg.MaxBox, cfg.NumSizes).
func Dimension(img Bitmap, cfg DimensionConfig) (DimensionResult, error) {
	maxBox := cfg.MaxBox
	if maxBox == 0 {
		maxBox = min(img.Width, img.Height) / 2
	}
	return FitDimension(BoxCounts(img, LogSizes(cfg.MinBox, maxBox, cfg.NumSizes)))
}
