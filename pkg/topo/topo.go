// Package topo owns graph topology: node and edge identities, the
// adjacency index, breadth-first filtering, and shortest-path queries.
//
// Nodes and edges live in flat, id-keyed collections. Every other part of
// the engine references nodes by id and resolves them through the Graph,
// so deleting a node cannot leave dangling references elsewhere. Node
// iteration follows insertion order, which keeps force computation and
// path tie-breaking deterministic for a given build sequence.
package topo

import (
	"errors"
	"math"
	"slices"

	"github.com/matzehuels/forcegraph/pkg/geom"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrInvalidNodeSize is returned by [Graph.AddNode] when the input
	// carries a negative size. Zero means "use the default".
	ErrInvalidNodeSize = errors.New("node size must be positive")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the source
	// endpoint does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the target
	// endpoint does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrSelfEdge is returned by [Graph.AddEdge] when source and target
	// name the same node. Self-loops carry no layout information.
	ErrSelfEdge = errors.New("edge endpoints must differ")
)

// DefaultNodeSize is used when the input schema omits the size attribute.
const DefaultNodeSize = 10.0

// Shape is a display-independent rendering hint carried on nodes.
// The engine never interprets it; renderers do.
type Shape string

// Recognized shape hints.
const (
	ShapeCircle  Shape = "circle"
	ShapeSquare  Shape = "square"
	ShapeDiamond Shape = "diamond"
)

// Node is a vertex of the diagram. Position, Velocity, and Force are
// mutated in place by the physics engine each tick; Force is transient
// and recomputed from scratch every step.
//
// Fixed is true while the node is user-dragged or pinned. The physics
// engine still accumulates forces on fixed nodes (so neighbors see
// correct reactions) but leaves their position and velocity untouched.
type Node struct {
	ID   string
	Name string
	Type string
	Size float64

	Shape Shape

	Position geom.Vec
	Velocity geom.Vec
	Force    geom.Vec
	Fixed    bool
}

// Edge connects two existing nodes. Edges are undirected for force and
// traversal purposes; Source/Target order is preserved only as a
// rendering hint (arrowheads).
type Edge struct {
	Source string
	Target string
	Weight float64
	Kind   string
}

// Other returns the endpoint of e that is not id.
func (e *Edge) Other(id string) string {
	if e.Source == id {
		return e.Target
	}
	return e.Source
}

// Neighbor pairs an adjacent node ID with the edge that reaches it.
type Neighbor struct {
	ID   string
	Edge *Edge
}

// NodeInput is the external schema accepted by [Graph.AddNode].
type NodeInput struct {
	ID       string
	Name     string
	Type     string
	Shape    Shape
	Size     float64
	Position geom.Vec
	HasPos   bool
}

// Graph stores the node set, the edge set, and the bidirectional
// adjacency index kept in sync on every mutation.
//
// The zero value is not usable - use NewGraph. Graph is not safe for
// concurrent use; the embedding host guarantees one mutator at a time.
type Graph struct {
	nodes     map[string]*Node
	order     []string
	edges     []*Edge
	adjacency map[string][]Neighbor
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string][]Neighbor),
	}
}

// AddNode validates in and inserts a new node.
// Returns ErrInvalidNodeID, ErrDuplicateNodeID, or ErrInvalidNodeSize on
// bad input. When the input carries no position the node is placed on a
// deterministic spiral around the origin: coincident starting positions
// produce no repulsion at all, so fresh nodes must never stack exactly.
func (g *Graph) AddNode(in NodeInput) (*Node, error) {
	if in.ID == "" {
		return nil, ErrInvalidNodeID
	}
	if _, exists := g.nodes[in.ID]; exists {
		return nil, ErrDuplicateNodeID
	}
	if in.Size < 0 {
		return nil, ErrInvalidNodeSize
	}

	size := in.Size
	if size == 0 {
		size = DefaultNodeSize
	}
	pos := in.Position
	if !in.HasPos {
		pos = seedPosition(len(g.order))
	}
	name := in.Name
	if name == "" {
		name = in.ID
	}

	n := &Node{
		ID:       in.ID,
		Name:     name,
		Type:     in.Type,
		Shape:    in.Shape,
		Size:     size,
		Position: pos,
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return n, nil
}

// RemoveNode deletes the node and every incident edge, then drops the
// node from all indices. Returns false if the id is unknown.
func (g *Graph) RemoveNode(id string) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	// Cascade: incident edges first, walking a copy since RemoveEdge
	// mutates the adjacency list under us.
	neighbors := slices.Clone(g.adjacency[id])
	for _, nb := range neighbors {
		g.RemoveEdge(nb.Edge.Source, nb.Edge.Target)
	}
	delete(g.nodes, id)
	delete(g.adjacency, id)
	g.order = slices.DeleteFunc(g.order, func(s string) bool { return s == id })
	return true
}

// AddEdge connects two existing nodes. The unordered endpoint pair is the
// edge's identity: re-adding an existing connection in either orientation
// returns the existing edge instead of duplicating it. Returns
// ErrUnknownSourceNode, ErrUnknownTargetNode, or ErrSelfEdge on bad input.
func (g *Graph) AddEdge(source, target string, weight float64, kind string) (*Edge, error) {
	if _, ok := g.nodes[source]; !ok {
		return nil, ErrUnknownSourceNode
	}
	if _, ok := g.nodes[target]; !ok {
		return nil, ErrUnknownTargetNode
	}
	if source == target {
		return nil, ErrSelfEdge
	}
	if e := g.findEdge(source, target); e != nil {
		return e, nil
	}

	e := &Edge{Source: source, Target: target, Weight: weight, Kind: kind}
	g.edges = append(g.edges, e)
	g.adjacency[source] = append(g.adjacency[source], Neighbor{ID: target, Edge: e})
	g.adjacency[target] = append(g.adjacency[target], Neighbor{ID: source, Edge: e})
	return e, nil
}

// RemoveEdge deletes the edge between the two nodes, matching either
// orientation. Returns false if no such edge exists.
func (g *Graph) RemoveEdge(source, target string) bool {
	e := g.findEdge(source, target)
	if e == nil {
		return false
	}
	g.edges = slices.DeleteFunc(g.edges, func(x *Edge) bool { return x == e })
	g.adjacency[e.Source] = slices.DeleteFunc(g.adjacency[e.Source], func(nb Neighbor) bool { return nb.Edge == e })
	g.adjacency[e.Target] = slices.DeleteFunc(g.adjacency[e.Target], func(nb Neighbor) bool { return nb.Edge == e })
	return true
}

func (g *Graph) findEdge(a, b string) *Edge {
	for _, nb := range g.adjacency[a] {
		if nb.ID == b {
			return nb.Edge
		}
	}
	return nil
}

// Node returns the node with the given ID and true, or nil and false.
// The pointer refers to the live node, so position mutations are seen by
// the whole engine.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// Neighbors returns the adjacency list of id in edge insertion order.
// The returned slice is a read-only view; do not modify it.
func (g *Graph) Neighbors(id string) []Neighbor { return g.adjacency[id] }

// Degree returns the number of edges incident to id, 0 if unknown.
func (g *Graph) Degree(id string) int { return len(g.adjacency[id]) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Bounds returns the bounding rectangle of the given nodes' positions,
// or all nodes when filter is inactive. ok is false for an empty set.
func (g *Graph) Bounds(filter FilterState) (r geom.Rect, ok bool) {
	for _, id := range g.order {
		if !filter.Contains(id) {
			continue
		}
		p := g.nodes[id].Position
		if !ok {
			r, ok = geom.RectAround(p), true
			continue
		}
		r = r.Expand(p)
	}
	return r, ok
}

// seedPosition places the i-th inserted node on an outward spiral. The
// exact shape is arbitrary; what matters is that no two seeds coincide.
func seedPosition(i int) geom.Vec {
	angle := float64(i) * 2.399963 // golden angle, keeps seeds spread out
	radius := 20 * math.Sqrt(float64(i)+1)
	return geom.V(radius*math.Cos(angle), radius*math.Sin(angle))
}
