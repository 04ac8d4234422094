package fractal

import (
	"math"
	"strings"
)

// Rules maps a symbol to its replacement. Symbols without a rule are copied
// unchanged.
type Rules map[byte]string

// Rewrite applies rules to axiom iterations times. Each pass substitutes all
// symbols simultaneously; a replacement is not rewritten again within the pass
// that produced it.
//
// The length of the result usually grows exponentially with iterations. There
// is no upper bound; callers are responsible for choosing an iteration count
// whose result fits in memory.
func Rewrite(axiom string, rules Rules, iterations int) string {
	cur := axiom
	for range iterations {
		var sb strings.Builder
		sb.Grow(len(cur) * 2)
		for i := 0; i < len(cur); i++ {
			if r, ok := rules[cur[i]]; ok {
				sb.WriteString(r)
			} else {
				sb.WriteByte(cur[i])
			}
		}
		cur = sb.String()
	}
	return cur
}

// DefaultDrawSymbols are the symbols that move the turtle forward while
// drawing when [TurtleConfig.Draw] is empty.
const DefaultDrawSymbols = "F01"

// TurtleConfig controls how a [Turtle] interprets symbols.
type TurtleConfig struct {
	// Step is the distance moved by a draw symbol.
	Step float64
	// Angle is the turn applied by '+' and '-', in degrees.
	Angle float64
	// Start is the initial position.
	Start Point
	// StartHeading is the initial heading in degrees. 0 points along the
	// positive x axis, 90 along the positive y axis.
	StartHeading float64
	// Draw lists the symbols that move forward drawing a segment. If empty,
	// DefaultDrawSymbols is used.
	Draw string
	// BranchTurn makes '[' turn by +Angle after saving the state and ']'
	// turn by -Angle after restoring it. Branching tree grammars written
	// without explicit turns around their brackets rely on this.
	BranchTurn bool
}

// TurtleState is the position and heading of a turtle.
type TurtleState struct {
	Pos Point
	// Heading in degrees.
	Heading float64
}

// Turtle interprets L-system symbols as drawing commands. The zero value is
// not useful; use [NewTurtle].
//
// A Turtle carries all of its state, including the stack of saved states, so
// separate turtles can interpret separate strings independently.
type Turtle struct {
	cfg   TurtleConfig
	state TurtleState
	stack []TurtleState
}

// NewTurtle returns a turtle at cfg.Start facing cfg.StartHeading with an
// empty stack.
func NewTurtle(cfg TurtleConfig) *Turtle {
	if cfg.Draw == "" {
		cfg.Draw = DefaultDrawSymbols
	}
	return &Turtle{
		cfg: cfg,
		state: TurtleState{
			Pos:     cfg.Start,
			Heading: cfg.StartHeading,
		},
	}
}

// State returns the current state.
func (t *Turtle) State() TurtleState { return t.state }

// Depth returns the number of saved states.
func (t *Turtle) Depth() int { return len(t.stack) }

// Step applies a single symbol. If the symbol draws, Step returns the drawn
// segment and true.
//
//   - draw symbols move forward by Step along the heading
//   - '+' turns by +Angle, '-' by -Angle
//   - '[' saves the state
//   - ']' restores the most recently saved state; with nothing saved it does nothing
//
// All other symbols are ignored.
func (t *Turtle) Step(sym byte) (Line, bool) {
	switch {
	case strings.IndexByte(t.cfg.Draw, sym) >= 0:
		dir := VecFromAngle(t.state.Heading * math.Pi / 180)
		l := Line{
			P0: t.state.Pos,
			P1: t.state.Pos.Translate(dir.Mul(t.cfg.Step)),
		}
		t.state.Pos = l.P1
		return l, true
	case sym == '+':
		t.state.Heading += t.cfg.Angle
	case sym == '-':
		t.state.Heading -= t.cfg.Angle
	case sym == '[':
		t.stack = append(t.stack, t.state)
		if t.cfg.BranchTurn {
			t.state.Heading += t.cfg.Angle
		}
	case sym == ']':
		if len(t.stack) == 0 {
			break
		}
		t.state = t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		if t.cfg.BranchTurn {
			t.state.Heading -= t.cfg.Angle
		}
	}
	return Line{}, false
}

// Interpret walks instructions with a fresh turtle and returns the drawn
// segments in drawing order.
func Interpret(instructions string, cfg TurtleConfig) []Line {
	t := NewTurtle(cfg)
	var out []Line
	for i := 0; i < len(instructions); i++ {
		if l, ok := t.Step(instructions[i]); ok {
			out = append(out, l)
		}
	}
	return out
}

// LSystem bundles a grammar with the turtle that draws it.
type LSystem struct {
	Axiom  string
	Rules  Rules
	Turtle TurtleConfig
}

// String returns the symbol string after iterations rewriting passes.
func (ls LSystem) String(iterations int) string {
	return Rewrite(ls.Axiom, ls.Rules, iterations)
}

// Generate rewrites the axiom iterations times and interprets the result.
func (ls LSystem) Generate(iterations int) []Line {
	return Interpret(ls.String(iterations), ls.Turtle)
}

// KochLSystem returns the Koch curve as an L-system: F → F+F--F+F, turning by
// 60°, starting upwards at the origin.
func KochLSystem() LSystem {
	return LSystem{
		Axiom: "F",
		Rules: Rules{'F': "F+F--F+F"},
		Turtle: TurtleConfig{
			Step:         5,
			Angle:        60,
			StartHeading: 90,
		},
	}
}

// BinaryTreeLSystem returns the fractal binary tree: 1 → 11, 0 → 1[0]0, turning
// by 45° on every branch.
func BinaryTreeLSystem() LSystem {
	return LSystem{
		Axiom: "0",
		Rules: Rules{'1': "11", '0': "1[0]0"},
		Turtle: TurtleConfig{
			Step:         3,
			Angle:        45,
			Start:        Pt(0, -100),
			StartHeading: 90,
			BranchTurn:   true,
		},
	}
}
