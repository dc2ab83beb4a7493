package sim

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/interaction"
	"github.com/matzehuels/forcegraph/pkg/physics"
	"github.com/matzehuels/forcegraph/pkg/topo"
)

func buildGraph(t *testing.T) *topo.Graph {
	t.Helper()
	g := topo.NewGraph()
	nodes := []topo.NodeInput{
		{ID: "a", Position: geom.V(100, 100), HasPos: true},
		{ID: "b", Position: geom.V(400, 100), HasPos: true},
		{ID: "c", Position: geom.V(250, 300), HasPos: true},
	}
	for _, n := range nodes {
		if _, err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	if _, err := g.AddEdge("a", "b", 1, ""); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return g
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if opts.Graph == nil {
		t.Fatal("Graph not defaulted")
	}
	if opts.Physics != physics.DefaultConfig() {
		t.Errorf("Physics = %+v, want defaults", opts.Physics)
	}
	if opts.Hooks == nil {
		t.Fatal("Hooks not defaulted")
	}
	if opts.Logger == nil {
		t.Fatal("Logger not defaulted")
	}

	before := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second validate: %v", err)
	}
	if opts != before {
		t.Error("second validate changed options")
	}
}

func TestOptionsRejectsInvalidPhysics(t *testing.T) {
	opts := Options{Physics: physics.Config{Damping: 1.5, RepulsionStrength: 1, AttractionStrength: 1, GroupingStrength: 1}}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Fatal("expected error for damping > 1")
	}
}

func TestTickMovesConnectedNodes(t *testing.T) {
	s, err := New(Options{Graph: buildGraph(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a, _ := s.Graph().Node("a")
	before := a.Position
	s.Tick()
	if a.Position == before {
		t.Error("node a did not move after a tick")
	}
}

func TestTickSuspendedWhilePanning(t *testing.T) {
	s, err := New(Options{Graph: buildGraph(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	base := time.Now()
	// Press on empty background and move: enters the panning state.
	s.Pointer(interaction.Down(1, geom.V(250, 30), base))
	s.Pointer(interaction.Move(1, geom.V(260, 30), base.Add(16*time.Millisecond)))
	if s.State() != interaction.StatePanning {
		t.Fatalf("state = %v, want panning", s.State())
	}

	positions := map[string]geom.Vec{}
	for _, n := range s.Graph().Nodes() {
		positions[n.ID] = n.Position
	}
	s.Tick()
	for _, n := range s.Graph().Nodes() {
		if n.Position != positions[n.ID] {
			t.Errorf("node %s moved during pan", n.ID)
		}
	}

	// Release restores physics.
	s.Pointer(interaction.Up(1, geom.V(260, 30), base.Add(500*time.Millisecond)))
	s.Tick()
	moved := false
	for _, n := range s.Graph().Nodes() {
		if n.Position != positions[n.ID] {
			moved = true
		}
	}
	if !moved {
		t.Error("layout frozen after pan ended")
	}
}

func TestTickKeepsPhysicsDuringDrag(t *testing.T) {
	s, err := New(Options{Graph: buildGraph(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	base := time.Now()
	// Press on node a and move: enters the dragging state.
	s.Pointer(interaction.Down(1, geom.V(100, 100), base))
	s.Pointer(interaction.Move(1, geom.V(120, 100), base.Add(16*time.Millisecond)))
	if s.State() != interaction.StateDragging {
		t.Fatalf("state = %v, want dragging", s.State())
	}

	b, _ := s.Graph().Node("b")
	bPos := b.Position
	s.Tick()
	if b.Position == bPos {
		t.Error("free node b did not move while a was dragged")
	}
}

func TestRunHonorsContext(t *testing.T) {
	s, err := New(Options{Graph: buildGraph(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if n := s.Run(ctx, 100); n != 0 {
		t.Errorf("Run with canceled context = %d ticks, want 0", n)
	}

	if n := s.Run(context.Background(), 10); n != 10 {
		t.Errorf("Run = %d ticks, want 10", n)
	}
}

func TestApplyAndClearFilter(t *testing.T) {
	s, err := New(Options{Graph: buildGraph(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	f := s.ApplyFilter("a")
	if !f.Active() {
		t.Fatal("filter not active after ApplyFilter")
	}
	if !f.Contains("b") || f.Contains("c") {
		t.Errorf("visible set = %v, want a and b only", f.Visible)
	}

	s.ClearFilter()
	if s.Filter().Active() {
		t.Error("filter still active after ClearFilter")
	}
}

func TestFitToViewUsesVisibleBounds(t *testing.T) {
	s, err := New(Options{Graph: buildGraph(t)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.FitToView(geom.V(150, 150), 0)
	if sc := s.View().Transform().Scale; sc >= 1 {
		t.Errorf("scale = %v, want < 1 for a 300x200 layout in a 150x150 viewport", sc)
	}
}

func TestFitToViewEmptyGraphNoop(t *testing.T) {
	s, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	before := s.View().Transform()
	s.FitToView(geom.V(100, 100), 10)
	if s.View().Transform() != before {
		t.Error("transform changed for empty graph")
	}
}
