package graphio

import (
	"encoding/json"
	"io"
	"os"

	ferrors "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/topo"
)

var shapeFromString = map[string]topo.Shape{
	"":        topo.ShapeCircle,
	"circle":  topo.ShapeCircle,
	"square":  topo.ShapeSquare,
	"diamond": topo.ShapeDiamond,
}

// ReadJSON decodes a JSON graph from r into a topology.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}],
//	  "edges": [{"source": "a", "target": "b"}]
//	}
//
// Each node must have an "id" field. Optional fields:
//   - name: display label (defaults to the id)
//   - type: grouping category
//   - shape: "circle" or "square"
//   - size: visual radius, must be positive (defaults to 10)
//   - x, y: initial position (seeded deterministically if omitted)
//
// Each edge must have "source" and "target" fields that reference node ids.
// Duplicate edges on the same unordered pair collapse to one.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A node has an empty, duplicate, or otherwise invalid id
//   - A node carries an explicit zero or negative size
//   - An edge references an unknown node id or forms a self-loop
//
// Errors are wrapped with context describing which node or edge caused
// the problem. Use errors.Is or errors.As to check for specific topology
// errors.
//
// The returned graph is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*topo.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidFormat, err, "decode graph")
	}

	g := topo.NewGraph()
	for _, n := range data.Nodes {
		if err := ferrors.ValidateNodeID(n.ID); err != nil {
			return nil, err
		}
		shape, ok := shapeFromString[n.Shape]
		if !ok {
			return nil, ferrors.New(ferrors.ErrCodeInvalidNode, "node %s: unknown shape %q", n.ID, n.Shape)
		}
		in := topo.NodeInput{
			ID:    n.ID,
			Name:  n.Name,
			Type:  n.Type,
			Shape: shape,
		}
		if n.Size != nil {
			// An omitted size takes the default; a written one must be
			// positive.
			if *n.Size <= 0 {
				return nil, ferrors.Wrap(ferrors.ErrCodeInvalidNode, topo.ErrInvalidNodeSize, "node %s: size %v", n.ID, *n.Size)
			}
			in.Size = *n.Size
		}
		if n.X != nil && n.Y != nil {
			in.Position = geom.V(*n.X, *n.Y)
			in.HasPos = true
		}
		if _, err := g.AddNode(in); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidNode, err, "node %s", n.ID)
		}
	}
	for _, e := range data.Edges {
		weight := 1.0
		if e.Weight != nil {
			weight = *e.Weight
		}
		if _, err := g.AddEdge(e.Source, e.Target, weight, e.Kind); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidEdge, err, "edge %s-%s", e.Source, e.Target)
		}
	}

	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
//
// ImportJSON validates the path, opens the file, decodes it using
// [ReadJSON], and closes the file. Errors wrap the underlying cause with
// the file path for context.
func ImportJSON(path string) (*topo.Graph, error) {
	if err := ferrors.ValidateGraphPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
