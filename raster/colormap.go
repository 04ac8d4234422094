package raster

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColormap is returned by [ColormapByName] for names it doesn't know.
var ErrUnknownColormap = errors.New("raster: unknown colormap")

// Colormap maps values in [0, 1] to colors by blending evenly spaced key
// colors in CIE L*a*b* space.
type Colormap struct {
	keys []colorful.Color
}

// NewColormap returns a colormap through the given hex colors ("#rrggbb"). It
// needs at least one color.
func NewColormap(hex ...string) (Colormap, error) {
	if len(hex) == 0 {
		return Colormap{}, errors.New("raster: colormap needs at least one color")
	}
	keys := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return Colormap{}, fmt.Errorf("raster: colormap key %d: %w", i, err)
		}
		keys[i] = c
	}
	return Colormap{keys: keys}, nil
}

func mustColormap(hex ...string) Colormap {
	cm, err := NewColormap(hex...)
	if err != nil {
		panic(err)
	}
	return cm
}

var (
	// Gray runs from black to white.
	Gray = mustColormap("#000000", "#ffffff")
	// Hot runs from black through red and yellow to white.
	Hot = mustColormap("#0b0000", "#ff0000", "#ffff00", "#ffffff")
	// Viridis approximates matplotlib's perceptually uniform viridis map.
	Viridis = mustColormap("#440154", "#3b528b", "#21918c", "#5ec962", "#fde725")
	// Magma approximates matplotlib's magma map.
	Magma = mustColormap("#000004", "#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf")
)

var colormaps = map[string]Colormap{
	"gray":    Gray,
	"hot":     Hot,
	"viridis": Viridis,
	"magma":   Magma,
}

// ColormapByName returns one of the predefined colormaps: gray, hot, viridis
// or magma.
func ColormapByName(name string) (Colormap, error) {
	cm, ok := colormaps[name]
	if !ok {
		return Colormap{}, fmt.Errorf("%q: %w", name, ErrUnknownColormap)
	}
	return cm, nil
}

// ColormapNames returns the names accepted by ColormapByName, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color returns the blended color at t. Values outside [0, 1] are clamped;
// NaN maps to the first key.
func (cm Colormap) Color(t float64) colorful.Color {
	switch len(cm.keys) {
	case 0:
		return colorful.Color{}
	case 1:
		return cm.keys[0]
	}
	if math.IsNaN(t) || t <= 0 {
		return cm.keys[0]
	}
	if t >= 1 {
		return cm.keys[len(cm.keys)-1]
	}
	pos := t * float64(len(cm.keys)-1)
	i := int(pos)
	return cm.keys[i].BlendLab(cm.keys[i+1], pos-float64(i)).Clamped()
}

// At returns the color at t as an opaque RGBA value.
func (cm Colormap) At(t float64) color.RGBA {
	r, g, b := cm.Color(t).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
