package fractal

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrNoMaps is returned when an iterated function system has no maps.
	ErrNoMaps = errors.New("fractal: IFS has no maps")
	// ErrInvalidWeights is returned when a map has a negative weight or the
	// weights don't sum to a positive value.
	ErrInvalidWeights = errors.New("fractal: invalid IFS weights")
)

// IFSMap is one map of an iterated function system together with the relative
// probability of choosing it.
type IFSMap struct {
	Affine Affine
	Weight float64
}

// NewIFSMap returns the map x' = a·x + b·y + e, y' = c·x + d·y + f with the
// given selection weight. This is the row order used by most published IFS
// tables.
func NewIFSMap(a, b, c, d, e, f, weight float64) IFSMap {
	return IFSMap{
		Affine: Affine{N0: a, N1: c, N2: b, N3: d, N4: e, N5: f},
		Weight: weight,
	}
}

// BarnsleyFern returns the four maps of Barnsley's fern.
func BarnsleyFern() []IFSMap {
	return []IFSMap{
		NewIFSMap(0.00, 0.00, 0.00, 0.16, 0.00, 0.00, 0.01),   // stem
		NewIFSMap(0.85, 0.04, -0.04, 0.85, 0.00, 1.60, 0.85),  // successive leaflets
		NewIFSMap(0.20, -0.26, 0.23, 0.22, 0.00, 1.60, 0.07),  // left leaflet
		NewIFSMap(-0.15, 0.28, 0.26, 0.24, 0.00, 0.44, 0.07), // right leaflet
	}
}

// ProbabilityTree returns a three-map tree: a trunk and two rotated, scaled
// copies forming the left and right branches.
func ProbabilityTree() []IFSMap {
	return []IFSMap{
		NewIFSMap(0.00, 0.00, 0.00, 0.50, 0.00, 0.00, 0.10),
		NewIFSMap(0.42, -0.42, 0.42, 0.42, 0.00, 0.20, 0.45),
		NewIFSMap(0.42, 0.42, -0.42, 0.42, 0.00, 0.20, 0.45),
	}
}

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ChaosGame samples the attractor of maps. Starting at the origin, it
// performs n+skip iterations, each applying a map chosen at random with
// probability proportional to its weight, and returns the last n points.
//
// The first skip points are discarded while the trajectory approaches the
// attractor. If rng is nil, a generator seeded with 0 is used, so results are
// reproducible either way.
func ChaosGame(maps []IFSMap, n, skip int, rng *rand.Rand) ([]Point, error) {
	if len(maps) == 0 {
		return nil, ErrNoMaps
	}
	cum := make([]float64, len(maps))
	var total float64
	for i, m := range maps {
		if m.Weight < 0 {
			return nil, fmt.Errorf("map %d has weight %g: %w", i, m.Weight, ErrInvalidWeights)
		}
		total += m.Weight
		cum[i] = total
	}
	if !(total > 0) {
		return nil, fmt.Errorf("total weight %g: %w", total, ErrInvalidWeights)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	n = max(n, 0)
	skip = max(skip, 0)

	out := make([]Point, 0, n)
	var pt Point
	for i := range n + skip {
		pt = pt.Transform(maps[pick(cum, rng.Float64()*total)].Affine)
		if i >= skip {
			out = append(out, pt)
		}
	}
	return out, nil
}

// pick returns the index of the first cumulative weight exceeding r.
func pick(cum []float64, r float64) int {
	for i, c := range cum {
		if r < c {
			return i
		}
	}
	// r can only reach the total through rounding; fall back to the last map
	// that has any weight.
	for i := len(cum) - 1; i > 0; i-- {
		if cum[i] > cum[i-1] {
			return i
		}
	}
	return 0
}

// ChaosGameConfig holds the parameters of a chaos game run.
type ChaosGameConfig struct {
	// Points is the number of points returned.
	Points int
	// Skip is the number of initial points discarded.
	Skip int
	// Seed seeds the generator returned by NewRand.
	Seed uint64
}

// DefaultChaosGameConfig returns 50000 points after skipping 100.
func DefaultChaosGameConfig() ChaosGameConfig {
	return ChaosGameConfig{
		Points: 50000,
		Skip:   100,
	}
}

// Run runs ChaosGame on maps with the configured parameters.
func (cfg ChaosGameConfig) Run(maps []IFSMap) ([]Point, error) {
	return ChaosGame(maps, cfg.Points, cfg.Skip, NewRand(cfg.Seed))
}
