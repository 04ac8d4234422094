// Package termview previews fractal grids in a terminal. Each terminal cell
// shows two vertically stacked samples using the upper half block glyph, with
// the upper sample as foreground and the lower sample as background color.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"honnef.co/go/fractal"
	"honnef.co/go/fractal/raster"
)

// HalfBlock is the glyph drawn in every cell.
const HalfBlock = '▀'

// Field is a scalar field sampled at integer coordinates, with values in
// [0, 1] and y = 0 at the bottom.
type Field struct {
	Width, Height int
	At            func(x, y int) float64
}

// EscapeField returns g as a field normalized by its maximum, the real axis
// running left to right.
func EscapeField(g fractal.EscapeGrid) Field {
	scale := float64(g.Max())
	if scale == 0 {
		scale = 1
	}
	return Field{
		Width:  g.Rows,
		Height: g.Cols,
		At: func(x, y int) float64 {
			return float64(g.At(x, y)) / scale
		},
	}
}

// BitmapField returns b as a field of zeros and ones. Bitmaps are stored top
// row first, so the rows are flipped.
func BitmapField(b fractal.Bitmap) Field {
	return Field{
		Width:  b.Width,
		Height: b.Height,
		At: func(x, y int) float64 {
			return float64(b.At(x, b.Height-1-y))
		},
	}
}

// Color converts a colormap value to a terminal color.
func Color(cm raster.Colormap, t float64) tcell.Color {
	c := cm.At(t)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw fills the whole screen with f, resampled by nearest neighbor.
func Draw(screen tcell.Screen, f Field, cm raster.Colormap) {
	sw, sh := screen.Size()
	if sw <= 0 || sh <= 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}
	rows := 2 * sh
	sample := func(cx, row int) tcell.Color {
		x := cx * f.Width / sw
		y := f.Height - 1 - row*f.Height/rows
		return Color(cm, f.At(x, y))
	}
	for cy := range sh {
		for cx := range sw {
			style := tcell.StyleDefault.
				Foreground(sample(cx, 2*cy)).
				Background(sample(cx, 2*cy+1))
			screen.SetContent(cx, cy, HalfBlock, nil, style)
		}
	}
}

// Run draws onto an initialized screen and redraws on every resize until the
// user presses q, Esc or Ctrl-C. It doesn't finalize the screen.
func Run(screen tcell.Screen, draw func(tcell.Screen)) error {
	redraw := func() {
		screen.Clear()
		draw(screen)
		screen.Show()
	}
	redraw()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			}
		}
	}
}

// Show opens the terminal, previews f through cm and waits for the user to
// quit.
func Show(f Field, cm raster.Colormap) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return Run(screen, func(s tcell.Screen) { Draw(s, f, cm) })
}
