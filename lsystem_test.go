package fractal

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		axiom string
		rules Rules
		n     int
		want  string
	}{
		{"F", Rules{'F': "F+F--F+F"}, 0, "F"},
		{"F", Rules{'F': "F+F--F+F"}, 1, "F+F--F+F"},
		{"F", Rules{'F': "F+F--F+F"}, 2, "F+F--F+F+F+F--F+F--F+F--F+F+F+F--F+F"},
		{"0", Rules{'1': "11", '0': "1[0]0"}, 1, "1[0]0"},
		{"0", Rules{'1': "11", '0': "1[0]0"}, 2, "11[1[0]0]1[0]0"},
		// Substitution is simultaneous: A→B and B→A swap in one pass.
		{"AB", Rules{'A': "B", 'B': "A"}, 1, "BA"},
		{"xyz", nil, 3, "xyz"},
	}
	for _, tt := range tests {
		if got := Rewrite(tt.axiom, tt.rules, tt.n); got != tt.want {
			t.Errorf("Rewrite(%q, %d) = %q, want %q", tt.axiom, tt.n, got, tt.want)
		}
	}
}

func TestRewriteGrowth(t *testing.T) {
	s := Rewrite("F", Rules{'F': "F+F--F+F"}, 5)
	if got, want := strings.Count(s, "F"), 1024; got != want {
		t.Errorf("got %d draw symbols, want %d", got, want)
	}
}

func TestInterpretKoch(t *testing.T) {
	ls := KochLSystem()
	lines := ls.Generate(1)
	want := []Point{Pt(0, 0), Pt(0, 5), Pt(-5*0.8660254037844386, 7.5), Pt(0, 10), Pt(0, 15)}
	if len(lines) != 4 {
		t.Fatalf("got %d segments, want 4", len(lines))
	}
	for i, l := range lines {
		assertNear(t, l.P0, want[i], 1e-9)
		assertNear(t, l.P1, want[i+1], 1e-9)
	}
	if got := len(ls.Generate(3)); got != 64 {
		t.Errorf("got %d segments, want 64", got)
	}
}

func TestTurtleUnmatchedPop(t *testing.T) {
	tt := NewTurtle(TurtleConfig{Step: 1, Angle: 30, StartHeading: 90})
	if _, ok := tt.Step('F'); !ok {
		t.Fatal("F didn't draw")
	}
	want := tt.State()
	if _, ok := tt.Step(']'); ok {
		t.Error("] drew a segment")
	}
	diff(t, want, tt.State())
	assertNear(t, want.Pos, Pt(0, 1), 1e-12)

	lines := Interpret("F]", TurtleConfig{Step: 1, Angle: 30, StartHeading: 90})
	if len(lines) != 1 {
		t.Fatalf("got %d segments, want 1", len(lines))
	}
}

func TestTurtlePushPop(t *testing.T) {
	cfg := TurtleConfig{Step: 2, Angle: 25, Start: Pt(1, 1), StartHeading: 10}
	tt := NewTurtle(cfg)
	start := tt.State()
	for _, sym := range []byte("[+F-F[F]F]") {
		tt.Step(sym)
	}
	// Restoration is exact, not a recomputation.
	if tt.State() != start {
		t.Errorf("got %+v, want %+v", tt.State(), start)
	}
	if tt.Depth() != 0 {
		t.Errorf("got depth %d, want 0", tt.Depth())
	}
}

func TestTurtleBranchTurn(t *testing.T) {
	cfg := TurtleConfig{Step: 1, Angle: 45, StartHeading: 90, BranchTurn: true}
	tt := NewTurtle(cfg)
	tt.Step('[')
	if got := tt.State().Heading; got != 135 {
		t.Errorf("heading after [ is %g, want 135", got)
	}
	tt.Step('F')
	tt.Step(']')
	diff(t, TurtleState{Pos: Pt(0, 0), Heading: 45}, tt.State())

	// Without BranchTurn brackets don't turn.
	cfg.BranchTurn = false
	tt = NewTurtle(cfg)
	tt.Step('[')
	if got := tt.State().Heading; got != 90 {
		t.Errorf("heading after [ is %g, want 90", got)
	}
}

func TestTurtleDrawSymbols(t *testing.T) {
	cfg := TurtleConfig{Step: 1, Angle: 90}
	if n := len(Interpret("F01XG", cfg)); n != 3 {
		t.Errorf("default draw symbols: got %d segments, want 3", n)
	}
	cfg.Draw = "G"
	if n := len(Interpret("F01XG", cfg)); n != 1 {
		t.Errorf("custom draw symbols: got %d segments, want 1", n)
	}
}

func TestTurtlesIndependent(t *testing.T) {
	cfg := TurtleConfig{Step: 1, Angle: 90}
	a := NewTurtle(cfg)
	b := NewTurtle(cfg)
	a.Step('[')
	a.Step('+')
	a.Step('F')
	if b.Depth() != 0 || b.State() != (TurtleState{}) {
		t.Errorf("turtle b changed: %+v, depth %d", b.State(), b.Depth())
	}
	if a.Depth() != 1 {
		t.Errorf("got depth %d, want 1", a.Depth())
	}
}

func TestBinaryTree(t *testing.T) {
	ls := BinaryTreeLSystem()
	lines := ls.Generate(2)
	// "11[1[0]0]1[0]0" has 8 draw symbols.
	if len(lines) != 8 {
		t.Fatalf("got %d segments, want 8", len(lines))
	}
	// The trunk grows straight up from the start.
	diff(t, Line{Pt(0, -100), Pt(0, -97)}, lines[0], cmpopts.EquateApprox(0, 1e-12))
}
