package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/forcegraph/pkg/topo"
)

var shapeToString = map[topo.Shape]string{
	topo.ShapeCircle:  "circle",
	topo.ShapeSquare:  "square",
	topo.ShapeDiamond: "diamond",
}

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID    string   `json:"id"`
	Name  string   `json:"name,omitempty"`
	Type  string   `json:"type,omitempty"`
	Shape string   `json:"shape,omitempty"`
	Size  *float64 `json:"size,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
}

type edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight *float64 `json:"weight,omitempty"`
	Kind   string   `json:"kind,omitempty"`
}

// WriteJSON encodes a topology as JSON and writes it to w.
// The output includes all nodes with their current positions, so a settled
// layout can be re-imported with [ReadJSON] without re-running physics.
func WriteJSON(g *topo.Graph, w io.Writer) error {
	nodes := g.Nodes()
	edges := g.Edges()
	out := graph{
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, len(edges)),
	}

	for i, n := range nodes {
		nd := node{ID: n.ID, Type: n.Type}
		if n.Name != n.ID {
			nd.Name = n.Name
		}
		if s, ok := shapeToString[n.Shape]; ok && n.Shape != topo.ShapeCircle {
			nd.Shape = s
		}
		if n.Size != topo.DefaultNodeSize {
			size := n.Size
			nd.Size = &size
		}
		x, y := n.Position.X, n.Position.Y
		nd.X, nd.Y = &x, &y
		out.Nodes[i] = nd
	}
	for i, e := range edges {
		ed := edge{Source: e.Source, Target: e.Target, Kind: e.Kind}
		if e.Weight != 1 {
			weight := e.Weight
			ed.Weight = &weight
		}
		out.Edges[i] = ed
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a topology to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *topo.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
