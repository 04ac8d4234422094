// Command fractals generates classical fractals and saves them as PNG images.
//
// Usage:
//
//	fractals <command> [flags]
//
// The commands are:
//
//	koch        Koch curve by segment subdivision
//	minkowski   Minkowski sausage by segment subdivision
//	lsystem     L-system rendered by a turtle (koch or tree)
//	ifs         iterated function system via the chaos game (fern or tree)
//	mandelbrot  escape-time Mandelbrot set
//	julia       escape-time Julia set
//	boxdim      box-counting dimension of an image
//
// Run "fractals <command> -h" for the flags of a command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/lmittmann/tint"

	"honnef.co/go/fractal"
	"honnef.co/go/fractal/raster"
	"honnef.co/go/fractal/termview"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

type command struct {
	help string
	run  func(args []string) error
}

var commands = map[string]command{
	"koch":       {"Koch curve by segment subdivision", runCurve("koch", fractal.KochTemplate, fractal.KochEquilateralTemplate)},
	"minkowski":  {"Minkowski sausage by segment subdivision", runCurve("minkowski", fractal.MinkowskiTemplate, nil)},
	"lsystem":    {"L-system rendered by a turtle", runLSystem},
	"ifs":        {"iterated function system via the chaos game", runIFS},
	"mandelbrot": {"escape-time Mandelbrot set", runMandelbrot},
	"julia":      {"escape-time Julia set", runJulia},
	"boxdim":     {"box-counting dimension of an image", runBoxDim},
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fractals <command> [flags]")
	fmt.Fprintln(os.Stderr)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-11s %s\n", name, commands[name].help)
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		usage()
		os.Exit(2)
	}
	if err := cmd.run(os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("command failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

// save writes img to path and logs it.
func save(path string, img image.Image) error {
	if err := raster.SavePNG(path, img); err != nil {
		return err
	}
	slog.Info("saved", "path", path)
	return nil
}

func imageFlags(flags *flag.FlagSet, out string) (*string, *int, *int) {
	o := flags.String("o", out, "output PNG `path`")
	w := flags.Int("width", 800, "image width in pixels")
	h := flags.Int("height", 800, "image height in pixels")
	return o, w, h
}

func options(w, h int) raster.Options {
	o := raster.DefaultOptions()
	o.Width, o.Height = w, h
	return o
}

// runCurve subdivides the unit segment with tmpl. If equilateral is non-nil,
// the -equilateral flag selects it instead.
func runCurve(name string, tmpl, equilateral fractal.SubdivisionTemplate) func([]string) error {
	return func(args []string) error {
		flags := flag.NewFlagSet(name, flag.ContinueOnError)
		level := flags.Int("level", 4, "subdivision `level`")
		var eq *bool
		if equilateral != nil {
			eq = flags.Bool("equilateral", false, "use the textbook equilateral bump")
		}
		out, w, h := imageFlags(flags, name+".png")
		if err := flags.Parse(args); err != nil {
			return err
		}
		t := tmpl
		if eq != nil && *eq {
			t = equilateral
		}
		pts := fractal.Subdivide([]fractal.Point{fractal.Pt(0, 0), fractal.Pt(1, 0)}, t, *level)
		slog.Info("generated curve", "curve", name, "level", *level, "points", len(pts))
		return save(*out, raster.Polyline(pts, options(*w, *h)))
	}
}

func runLSystem(args []string) error {
	flags := flag.NewFlagSet("lsystem", flag.ContinueOnError)
	preset := flags.String("preset", "koch", "grammar: koch or tree")
	iters := flags.Int("iter", -1, "rewriting passes (default 4 for koch, 6 for tree)")
	out, w, h := imageFlags(flags, "")
	if err := flags.Parse(args); err != nil {
		return err
	}
	var (
		ls fractal.LSystem
		n  int
	)
	switch *preset {
	case "koch":
		ls, n = fractal.KochLSystem(), 4
	case "tree":
		ls, n = fractal.BinaryTreeLSystem(), 6
	default:
		return fmt.Errorf("unknown preset %q", *preset)
	}
	if *iters >= 0 {
		n = *iters
	}
	if *out == "" {
		*out = "l_system_" + *preset + ".png"
	}
	instr := ls.String(n)
	lines := fractal.Interpret(instr, ls.Turtle)
	slog.Info("generated l-system", "preset", *preset, "iterations", n, "symbols", len(instr), "segments", len(lines))
	return save(*out, raster.Lines(lines, options(*w, *h)))
}

func runIFS(args []string) error {
	flags := flag.NewFlagSet("ifs", flag.ContinueOnError)
	cfg := fractal.DefaultChaosGameConfig()
	preset := flags.String("preset", "fern", "map set: fern or tree")
	flags.IntVar(&cfg.Points, "n", cfg.Points, "number of points")
	flags.IntVar(&cfg.Skip, "skip", cfg.Skip, "initial points to discard")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	out, w, h := imageFlags(flags, "")
	if err := flags.Parse(args); err != nil {
		return err
	}
	var maps []fractal.IFSMap
	switch *preset {
	case "fern":
		maps = fractal.BarnsleyFern()
	case "tree":
		maps = fractal.ProbabilityTree()
	default:
		return fmt.Errorf("unknown preset %q", *preset)
	}
	if *out == "" {
		*out = "ifs_" + *preset + ".png"
	}
	pts, err := cfg.Run(maps)
	if err != nil {
		return err
	}
	slog.Info("sampled attractor", "preset", *preset, "points", len(pts), "skip", cfg.Skip, "seed", cfg.Seed)
	o := options(*w, *h)
	o.Foreground = raster.Green
	return save(*out, raster.Scatter(pts, o))
}

type escapeFlags struct {
	cfg  fractal.EscapeConfig
	cmap *string
	out  *string
	term *bool
}

func newEscapeFlags(flags *flag.FlagSet, cfg fractal.EscapeConfig, cmap, out string) *escapeFlags {
	ef := &escapeFlags{cfg: cfg}
	flags.IntVar(&ef.cfg.Width, "width", cfg.Width, "samples along the real axis")
	flags.IntVar(&ef.cfg.Height, "height", cfg.Height, "samples along the imaginary axis")
	flags.IntVar(&ef.cfg.MaxIter, "max-iter", cfg.MaxIter, "iteration cap")
	ef.cmap = flags.String("cmap", cmap, "colormap: "+strings.Join(raster.ColormapNames(), ", "))
	ef.out = flags.String("o", out, "output PNG `path`")
	ef.term = flags.Bool("term", false, "preview in the terminal instead of saving")
	return ef
}

func (ef *escapeFlags) emit(g fractal.EscapeGrid) error {
	cm, err := raster.ColormapByName(*ef.cmap)
	if err != nil {
		return err
	}
	if *ef.term {
		return termview.Show(termview.EscapeField(g), cm)
	}
	return save(*ef.out, raster.EscapeGrid(g, cm))
}

func runMandelbrot(args []string) error {
	flags := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	ef := newEscapeFlags(flags, fractal.DefaultMandelbrotConfig(), "hot", "mandelbrot.png")
	if err := flags.Parse(args); err != nil {
		return err
	}
	g := fractal.Mandelbrot(ef.cfg)
	slog.Info("computed mandelbrot", "width", ef.cfg.Width, "height", ef.cfg.Height, "max_iter", ef.cfg.MaxIter)
	return ef.emit(g)
}

func runJulia(args []string) error {
	flags := flag.NewFlagSet("julia", flag.ContinueOnError)
	ef := newEscapeFlags(flags, fractal.DefaultJuliaConfig(), "viridis", "")
	preset := flags.Int("preset", 1, fmt.Sprintf("parameter preset 1-%d, ignored if -re or -im is set", len(fractal.JuliaPresets)))
	re := flags.Float64("re", 0, "real part of c")
	im := flags.Float64("im", 0, "imaginary part of c")
	if err := flags.Parse(args); err != nil {
		return err
	}
	var c complex128
	explicit := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "re" || f.Name == "im" {
			explicit = true
		}
	})
	if explicit {
		c = complex(*re, *im)
	} else {
		if *preset < 1 || *preset > len(fractal.JuliaPresets) {
			return fmt.Errorf("preset %d out of range 1-%d", *preset, len(fractal.JuliaPresets))
		}
		c = fractal.JuliaPresets[*preset-1]
	}
	if *ef.out == "" {
		*ef.out = fmt.Sprintf("julia_%d.png", *preset)
		if explicit {
			*ef.out = "julia.png"
		}
	}
	g := fractal.Julia(c, ef.cfg)
	slog.Info("computed julia", "c", fmt.Sprintf("%.5f", c), "width", ef.cfg.Width, "height", ef.cfg.Height, "max_iter", ef.cfg.MaxIter)
	return ef.emit(g)
}

func runBoxDim(args []string) error {
	flags := flag.NewFlagSet("boxdim", flag.ContinueOnError)
	cfg := fractal.DefaultDimensionConfig()
	in := flags.String("in", "ifs_fern.png", "input image `path`")
	threshold := flags.Uint("threshold", fractal.DefaultThreshold, "luma threshold (0-255)")
	flags.IntVar(&cfg.MinBox, "min", cfg.MinBox, "smallest box size")
	flags.IntVar(&cfg.MaxBox, "max", cfg.MaxBox, "largest box size (0 = half the smaller side)")
	flags.IntVar(&cfg.NumSizes, "sizes", cfg.NumSizes, "number of box sizes")
	out, w, h := imageFlags(flags, "log_log_plot.png")
	term := flags.Bool("term", false, "preview the binarized image in the terminal")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *threshold > 255 {
		return fmt.Errorf("threshold %d out of range 0-255", *threshold)
	}
	img, err := fractal.LoadBitmap(*in, uint8(*threshold))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Error("image not found", "path", *in)
		}
		return err
	}
	if *term {
		if err := termview.Show(termview.BitmapField(img), raster.Gray); err != nil {
			return err
		}
	}
	res, err := fractal.Dimension(img, cfg)
	if err != nil {
		return err
	}
	for _, bc := range res.Counts {
		slog.Info("box count", "size", bc.Size, "count", bc.Count)
	}
	slog.Info("estimated dimension", "D", fmt.Sprintf("%.5f", res.D), "slope", res.Slope, "intercept", res.Intercept)
	return save(*out, raster.LogLog(res.Counts, res.Slope, res.Intercept, options(*w, *h)))
}
