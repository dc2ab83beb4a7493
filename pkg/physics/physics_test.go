package physics

import (
	"math"
	"testing"

	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/topo"
)

const eps = 1e-9

func addNodeAt(t *testing.T, g *topo.Graph, id, typ string, pos geom.Vec) *topo.Node {
	t.Helper()
	n, err := g.AddNode(topo.NodeInput{ID: id, Type: typ, Position: pos, HasPos: true})
	if err != nil {
		t.Fatalf("AddNode(%s): %v", id, err)
	}
	return n
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"DampingOne", func(c *Config) { c.Damping = 1 }, false},
		{"DampingZero", func(c *Config) { c.Damping = 0 }, true},
		{"DampingAboveOne", func(c *Config) { c.Damping = 1.1 }, true},
		{"NegativeRepulsion", func(c *Config) { c.RepulsionStrength = -1 }, true},
		{"NegativeAttraction", func(c *Config) { c.AttractionStrength = -0.1 }, true},
		{"NegativeGrouping", func(c *Config) { c.GroupingStrength = -0.1 }, true},
		{"ZeroStrengths", func(c *Config) {
			c.RepulsionStrength, c.AttractionStrength, c.GroupingStrength = 0, 0, 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRepulsionIsSymmetric(t *testing.T) {
	g := topo.NewGraph()
	a := addNodeAt(t, g, "a", "", geom.V(0, 0))
	b := addNodeAt(t, g, "b", "", geom.V(30, 17))

	NewEngine(DefaultConfig()).UpdateForces(g, topo.FilterState{})

	sum := a.Force.Add(b.Force)
	if geom.Length(sum) > eps {
		t.Errorf("|F_a + F_b| = %v, want < %v", geom.Length(sum), eps)
	}
	if geom.Length(a.Force) == 0 {
		t.Error("non-coincident pair produced zero repulsion")
	}
	// Repulsion points from b toward a.
	if a.Force.X > 0 || a.Force.Y > 0 {
		t.Errorf("repulsion on a points the wrong way: %v", a.Force)
	}
}

func TestRepulsionInverseSquare(t *testing.T) {
	force := func(dist float64) float64 {
		g := topo.NewGraph()
		a := addNodeAt(t, g, "a", "", geom.V(0, 0))
		addNodeAt(t, g, "b", "", geom.V(dist, 0))
		NewEngine(DefaultConfig()).UpdateForces(g, topo.FilterState{})
		return geom.Length(a.Force)
	}

	near, far := force(10), force(20)
	if ratio := near / far; math.Abs(ratio-4) > 1e-6 {
		t.Errorf("doubling distance scaled force by %v, want 4", ratio)
	}
}

func TestCoincidentNodesStayFinite(t *testing.T) {
	g := topo.NewGraph()
	a := addNodeAt(t, g, "a", "x", geom.V(5, 5))
	b := addNodeAt(t, g, "b", "x", geom.V(5, 5))
	g.AddEdge("a", "b", 1, "")

	e := NewEngine(DefaultConfig())
	for i := 0; i < 10; i++ {
		e.Step(g, topo.FilterState{})
	}

	for _, n := range []*topo.Node{a, b} {
		if !geom.IsFinite(n.Force) || !geom.IsFinite(n.Velocity) || !geom.IsFinite(n.Position) {
			t.Fatalf("node %s went non-finite: F=%v v=%v p=%v", n.ID, n.Force, n.Velocity, n.Position)
		}
	}
	// The pair is skipped entirely, so nothing should have moved.
	if a.Position != geom.V(5, 5) || b.Position != geom.V(5, 5) {
		t.Error("coincident pair moved; the skip rule should have held both in place")
	}
}

func TestTinySeparationStaysFinite(t *testing.T) {
	g := topo.NewGraph()
	a := addNodeAt(t, g, "a", "", geom.V(0, 0))
	b := addNodeAt(t, g, "b", "", geom.V(1e-3, 0))

	cfg := DefaultConfig()
	cfg.RepulsionStrength = 1e12
	NewEngine(cfg).Step(g, topo.FilterState{})

	for _, n := range []*topo.Node{a, b} {
		if !geom.IsFinite(n.Velocity) || !geom.IsFinite(n.Position) {
			t.Fatalf("node %s non-finite at 1e-3 separation", n.ID)
		}
	}
}

func TestUpdateForcesIsDeterministic(t *testing.T) {
	build := func() *topo.Graph {
		g := topo.NewGraph()
		addNodeAt(t, g, "a", "svc", geom.V(0, 0))
		addNodeAt(t, g, "b", "svc", geom.V(13, -4))
		addNodeAt(t, g, "c", "db", geom.V(-8, 21))
		addNodeAt(t, g, "d", "db", geom.V(5, 5))
		g.AddEdge("a", "b", 1, "")
		g.AddEdge("b", "c", 1, "")
		return g
	}

	e := NewEngine(DefaultConfig())
	first := build()
	e.UpdateForces(first, topo.FilterState{})

	for run := 0; run < 5; run++ {
		again := build()
		e.UpdateForces(again, topo.FilterState{})
		for i, n := range again.Nodes() {
			want := first.Nodes()[i].Force
			if math.Abs(n.Force.X-want.X) > eps || math.Abs(n.Force.Y-want.Y) > eps {
				t.Fatalf("run %d: force on %s = %v, want %v", run, n.ID, n.Force, want)
			}
		}
	}
}

func TestEdgeAttraction(t *testing.T) {
	g := topo.NewGraph()
	a := addNodeAt(t, g, "a", "", geom.V(0, 0))
	b := addNodeAt(t, g, "b", "", geom.V(100, 0))
	g.AddEdge("a", "b", 1, "")

	cfg := DefaultConfig()
	cfg.RepulsionStrength = 0 // isolate the spring
	NewEngine(cfg).UpdateForces(g, topo.FilterState{})

	if a.Force.X <= 0 {
		t.Errorf("spring should pull a toward b, got %v", a.Force)
	}
	if b.Force.X >= 0 {
		t.Errorf("spring should pull b toward a, got %v", b.Force)
	}
	want := cfg.AttractionStrength * 100
	if math.Abs(a.Force.X-want) > eps {
		t.Errorf("spring force = %v, want %v (linear in distance)", a.Force.X, want)
	}
}

func TestGroupingPullsSameTypeOnly(t *testing.T) {
	forceBetween := func(typeA, typeB string) geom.Vec {
		g := topo.NewGraph()
		a := addNodeAt(t, g, "a", typeA, geom.V(0, 0))
		addNodeAt(t, g, "b", typeB, geom.V(50, 0))

		cfg := DefaultConfig()
		cfg.RepulsionStrength = 0
		cfg.GroupingStrength = 0.01
		NewEngine(cfg).UpdateForces(g, topo.FilterState{})
		return a.Force
	}

	if f := forceBetween("svc", "svc"); f.X <= 0 {
		t.Errorf("same-type cohesion should pull a toward b, got %v", f)
	}
	if f := forceBetween("svc", "db"); geom.Length(f) != 0 {
		t.Errorf("different types must not cohere, got %v", f)
	}
	if f := forceBetween("", ""); geom.Length(f) != 0 {
		t.Errorf("untyped nodes must not cohere, got %v", f)
	}
}

func TestFixedNodeDoesNotMove(t *testing.T) {
	g := topo.NewGraph()
	a := addNodeAt(t, g, "a", "", geom.V(0, 0))
	b := addNodeAt(t, g, "b", "", geom.V(40, 0))
	c := addNodeAt(t, g, "c", "", geom.V(80, 0))
	g.AddEdge("a", "b", 1, "")
	g.AddEdge("b", "c", 1, "")

	a.Fixed = true
	origin := a.Position
	bStart, cStart := b.Position, c.Position

	e := NewEngine(DefaultConfig())
	for i := 0; i < 20; i++ {
		e.Step(g, topo.FilterState{})
	}

	if a.Position != origin {
		t.Errorf("fixed node moved from %v to %v", origin, a.Position)
	}
	if geom.Length(a.Force) == 0 {
		t.Error("fixed node should still accumulate force")
	}
	if b.Position == bStart || c.Position == cStart {
		t.Error("free nodes should keep settling while a is fixed")
	}
}

func TestFilteredNodesAreSkipped(t *testing.T) {
	g := topo.NewGraph()
	addNodeAt(t, g, "a", "", geom.V(0, 0))
	addNodeAt(t, g, "b", "", geom.V(10, 0))
	hidden := addNodeAt(t, g, "z", "", geom.V(5, 1))
	g.AddEdge("a", "b", 1, "")
	g.AddEdge("b", "z", 1, "")

	f := g.FilterByNode("a", 1) // z is out
	start := hidden.Position
	NewEngine(DefaultConfig()).Step(g, f)

	if geom.Length(hidden.Force) != 0 {
		t.Errorf("hidden node accumulated force %v", hidden.Force)
	}
	if hidden.Position != start {
		t.Error("hidden node moved")
	}
}

func TestDampingSettlesTheLayout(t *testing.T) {
	g := topo.NewGraph()
	a := addNodeAt(t, g, "a", "", geom.V(0, 0))
	b := addNodeAt(t, g, "b", "", geom.V(10, 0))
	g.AddEdge("a", "b", 1, "")

	e := NewEngine(DefaultConfig())
	for i := 0; i < 2000; i++ {
		e.Step(g, topo.FilterState{})
	}

	if v := geom.Length(a.Velocity) + geom.Length(b.Velocity); v > 1 {
		t.Errorf("velocities = %v after 2000 ticks, expected the layout to settle", v)
	}
	if d := geom.Dist(a.Position, b.Position); d < 10 {
		t.Errorf("equilibrium separation %v, expected repulsion to spread the pair", d)
	}
}
