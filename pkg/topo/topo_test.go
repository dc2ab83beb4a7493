package topo

import (
	"testing"

	"github.com/matzehuels/forcegraph/pkg/geom"
)

// buildPath creates a path graph n1-n2-...-nk and returns it.
func buildPath(t *testing.T, ids ...string) *Graph {
	t.Helper()
	g := NewGraph()
	for _, id := range ids {
		if _, err := g.AddNode(NodeInput{ID: id}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for i := 1; i < len(ids); i++ {
		if _, err := g.AddEdge(ids[i-1], ids[i], 1, ""); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", ids[i-1], ids[i], err)
		}
	}
	return g
}

func TestAddNode(t *testing.T) {
	tests := []struct {
		name    string
		in      NodeInput
		setup   func(g *Graph)
		wantErr error
	}{
		{name: "Valid", in: NodeInput{ID: "a", Name: "Alpha", Type: "svc", Size: 12}},
		{name: "EmptyID", in: NodeInput{}, wantErr: ErrInvalidNodeID},
		{
			name:    "Duplicate",
			in:      NodeInput{ID: "a"},
			setup:   func(g *Graph) { g.AddNode(NodeInput{ID: "a"}) },
			wantErr: ErrDuplicateNodeID,
		},
		{name: "NegativeSize", in: NodeInput{ID: "a", Size: -1}, wantErr: ErrInvalidNodeSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			if tt.setup != nil {
				tt.setup(g)
			}
			n, err := g.AddNode(tt.in)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && n == nil {
				t.Fatal("node is nil without error")
			}
		})
	}
}

func TestAddNodeDefaults(t *testing.T) {
	g := NewGraph()
	n, err := g.AddNode(NodeInput{ID: "a"})
	if err != nil {
		t.Fatal(err)
	}
	if n.Size != DefaultNodeSize {
		t.Errorf("size = %v, want default %v", n.Size, DefaultNodeSize)
	}

	// Seeded positions must never coincide, or repulsion cannot act.
	seen := map[geom.Vec]bool{n.Position: true}
	for _, id := range []string{"b", "c", "d", "e"} {
		m, err := g.AddNode(NodeInput{ID: id})
		if err != nil {
			t.Fatal(err)
		}
		if seen[m.Position] {
			t.Fatalf("node %s seeded at occupied position %v", id, m.Position)
		}
		seen[m.Position] = true
	}
}

func TestAddNodeExplicitPosition(t *testing.T) {
	g := NewGraph()
	want := geom.V(42, -7)
	n, err := g.AddNode(NodeInput{ID: "a", Position: want, HasPos: true})
	if err != nil {
		t.Fatal(err)
	}
	if n.Position != want {
		t.Errorf("position = %v, want %v", n.Position, want)
	}
}

func TestAddEdge(t *testing.T) {
	g := buildPath(t, "a", "b")

	if _, err := g.AddEdge("a", "missing", 1, ""); err != ErrUnknownTargetNode {
		t.Errorf("unknown target: err = %v", err)
	}
	if _, err := g.AddEdge("missing", "b", 1, ""); err != ErrUnknownSourceNode {
		t.Errorf("unknown source: err = %v", err)
	}
	if _, err := g.AddEdge("a", "a", 1, ""); err != ErrSelfEdge {
		t.Errorf("self edge: err = %v", err)
	}

	first := g.Edges()[0]
	same, err := g.AddEdge("a", "b", 2, "")
	if err != nil {
		t.Fatal(err)
	}
	if same != first {
		t.Error("re-adding a-b did not return the existing edge")
	}
	reversed, err := g.AddEdge("b", "a", 2, "")
	if err != nil {
		t.Fatal(err)
	}
	if reversed != first {
		t.Error("re-adding b-a did not return the existing edge")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("edge count = %d, want 1", g.EdgeCount())
	}
}

func TestAdjacencyIsBidirectional(t *testing.T) {
	g := buildPath(t, "a", "b")
	if got := g.Neighbors("a"); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("a's neighbors = %v", got)
	}
	if got := g.Neighbors("b"); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("b's neighbors = %v", got)
	}
}

func TestRemoveEdge(t *testing.T) {
	g := buildPath(t, "a", "b")
	if !g.RemoveEdge("b", "a") { // reverse orientation
		t.Fatal("RemoveEdge(b,a) = false")
	}
	if g.EdgeCount() != 0 || g.Degree("a") != 0 || g.Degree("b") != 0 {
		t.Error("edge removal left stale state")
	}
	if g.RemoveEdge("a", "b") {
		t.Error("removing a missing edge returned true")
	}
}

func TestRemoveNodeCascades(t *testing.T) {
	g := buildPath(t, "a", "b", "c")
	before := g.EdgeCount() // b has two incident edges

	if !g.RemoveNode("b") {
		t.Fatal("RemoveNode(b) = false")
	}
	if got := g.EdgeCount(); got != before-2 {
		t.Errorf("edge count = %d, want %d", got, before-2)
	}
	for _, id := range []string{"a", "c"} {
		for _, nb := range g.Neighbors(id) {
			if nb.ID == "b" {
				t.Errorf("adjacency of %s still references removed node", id)
			}
		}
	}
	if g.RemoveNode("b") {
		t.Error("removing an unknown node returned true")
	}
}

func TestFilterByNode(t *testing.T) {
	// Path graph a-b-c-d-e, focus on the middle node.
	tests := []struct {
		name  string
		focus string
		depth int
		want  []string
	}{
		{"DepthZero", "c", 0, []string{"c"}},
		{"DepthOne", "c", 1, []string{"b", "c", "d"}},
		{"DepthTwo", "c", 2, []string{"a", "b", "c", "d", "e"}},
		{"NegativeDepth", "c", -3, []string{"c"}},
		{"FromEnd", "a", 1, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildPath(t, "a", "b", "c", "d", "e")
			f := g.FilterByNode(tt.focus, tt.depth)
			if !f.Active() {
				t.Fatal("filter inactive")
			}
			if len(f.Visible) != len(tt.want) {
				t.Fatalf("visible = %v, want %v", f.Visible, tt.want)
			}
			for _, id := range tt.want {
				if !f.Contains(id) {
					t.Errorf("missing %s from visible set", id)
				}
			}
		})
	}
}

func TestFilterByNodeUnknownFocus(t *testing.T) {
	g := buildPath(t, "a", "b")
	f := g.FilterByNode("nope", 2)
	if f.Active() {
		t.Error("unknown focus produced an active filter")
	}
	if !f.Contains("a") || !f.Contains("b") {
		t.Error("zero filter must contain every node")
	}
}

func TestFilterRecordsMinimumHops(t *testing.T) {
	// Diamond plus a long way around: a-b, a-c, b-d, c-d, d-e.
	g := buildPath(t, "a", "b", "d", "e")
	g.AddNode(NodeInput{ID: "c"})
	g.AddEdge("a", "c", 1, "")
	g.AddEdge("c", "d", 1, "")

	f := g.FilterByNode("a", 2)
	for _, id := range []string{"a", "b", "c", "d"} {
		if !f.Contains(id) {
			t.Errorf("%s should be within 2 hops of a", id)
		}
	}
	if f.Contains("e") {
		t.Error("e is 3 hops away and must be filtered out")
	}
}

func TestHasHiddenNeighbor(t *testing.T) {
	g := buildPath(t, "a", "b", "c", "d", "e")
	f := g.FilterByNode("c", 1) // visible: b, c, d

	if !g.HasHiddenNeighbor("b", f) {
		t.Error("b borders hidden a, want true")
	}
	if g.HasHiddenNeighbor("c", f) {
		t.Error("c has only visible neighbors, want false")
	}
	if g.HasHiddenNeighbor("a", f) {
		t.Error("hidden node must not report hidden neighbors")
	}
	if g.HasHiddenNeighbor("b", FilterState{}) {
		t.Error("inactive filter hides nothing")
	}
}

func TestShortestPath(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *Graph
		from  string
		to    string
		want  []string
		ok    bool
	}{
		{
			name:  "SameNode",
			build: func(t *testing.T) *Graph { return buildPath(t, "a", "b") },
			from:  "a", to: "a",
			want: []string{"a"}, ok: true,
		},
		{
			name:  "Line",
			build: func(t *testing.T) *Graph { return buildPath(t, "a", "b", "c", "d") },
			from:  "a", to: "d",
			want: []string{"a", "b", "c", "d"}, ok: true,
		},
		{
			name: "Disconnected",
			build: func(t *testing.T) *Graph {
				g := buildPath(t, "a", "b")
				g.AddNode(NodeInput{ID: "z"})
				return g
			},
			from: "a", to: "z",
			ok: false,
		},
		{
			name:  "UnknownEndpoint",
			build: func(t *testing.T) *Graph { return buildPath(t, "a", "b") },
			from:  "a", to: "nope",
			ok: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build(t)
			got, ok := g.ShortestPath(tt.from, tt.to)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("path = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("path = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestShortestPathTieBreakIsStable(t *testing.T) {
	// Two equal-length routes a-b-d and a-c-d. The neighbor inserted
	// first wins, every time.
	build := func() *Graph {
		g := NewGraph()
		for _, id := range []string{"a", "b", "c", "d"} {
			g.AddNode(NodeInput{ID: id})
		}
		g.AddEdge("a", "b", 1, "")
		g.AddEdge("a", "c", 1, "")
		g.AddEdge("b", "d", 1, "")
		g.AddEdge("c", "d", 1, "")
		return g
	}

	first, ok := build().ShortestPath("a", "d")
	if !ok || len(first) != 3 {
		t.Fatalf("path = %v, ok = %v", first, ok)
	}
	if first[1] != "b" {
		t.Errorf("tie-break chose %s, want b (first inserted)", first[1])
	}
	for i := 0; i < 10; i++ {
		again, _ := build().ShortestPath("a", "d")
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d diverged: %v vs %v", i, again, first)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	g := NewGraph()
	g.AddNode(NodeInput{ID: "a", Position: geom.V(-5, 0), HasPos: true})
	g.AddNode(NodeInput{ID: "b", Position: geom.V(3, 8), HasPos: true})
	g.AddNode(NodeInput{ID: "c", Position: geom.V(0, -2), HasPos: true})

	r, ok := g.Bounds(FilterState{})
	if !ok {
		t.Fatal("Bounds = !ok on non-empty graph")
	}
	if r.Min != geom.V(-5, -2) || r.Max != geom.V(3, 8) {
		t.Errorf("bounds = %v..%v", r.Min, r.Max)
	}

	if _, ok := NewGraph().Bounds(FilterState{}); ok {
		t.Error("empty graph must report no bounds")
	}
}
