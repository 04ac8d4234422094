// Package fractal generates classical fractals. It provides five independent
// generators, each a plain function from parameters to numbers, together with
// the 2D primitives they share.
//
// # Generators
//
//   - Segment subdivision (see [Subdivide], [Koch] and [Minkowski]) replaces
//     every segment of a polyline by a fixed template of shorter segments,
//     level times.
//   - L-systems (see [Rewrite] and [Interpret]) rewrite a string of symbols
//     under production rules and walk the result with a [Turtle] that turns
//     symbols into line segments.
//   - Iterated function systems (see [ChaosGame]) sample the attractor of a set
//     of weighted affine maps by applying randomly chosen maps to a running
//     point.
//   - Escape-time sets (see [Mandelbrot] and [Julia]) record, for every sample
//     of a region of the complex plane, how long the orbit of z ↦ z² + c stays
//     within [EscapeRadius].
//   - Box counting (see [BoxCounts] and [Dimension]) estimates the fractal
//     dimension of a [Bitmap] from how the number of occupied boxes scales with
//     box size.
//
// None of the generators share state, and none of them render anything. The
// raster package turns their output into images and the termview package
// previews grids in a terminal.
//
// # Geometry
//
// [Point] is a position and [Vec2] a displacement, both in a y-up plane.
// [Affine] is a 2D affine transformation, [Line] a line segment and [Rect] an
// axis-aligned rectangle. Points convert to and from complex numbers with
// [Point.Complex] and [PtFromComplex]; [SubdivideComplex] accepts a polyline
// given as complex numbers.
//
// # Resource use
//
// All generators run synchronously on the calling goroutine. Memory is the
// only resource of note: escape-time grids and box counting are proportional
// to the number of samples or pixels, subdivision grows geometrically with the
// level, and L-system strings usually grow exponentially with the number of
// rewriting passes. None of these are capped; callers choose parameters that
// fit.
//
// # Literature
//
//   - [The Algorithmic Beauty of Plants] by Prusinkiewicz and Lindenmayer
//   - [Fractals Everywhere] by Michael Barnsley
//   - [Box counting]
//
// [The Algorithmic Beauty of Plants]: http://algorithmicbotany.org/papers/#abop
// [Fractals Everywhere]: https://en.wikipedia.org/wiki/Fractals_Everywhere
// [Box counting]: https://en.wikipedia.org/wiki/Box_counting
package fractal
