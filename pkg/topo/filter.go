package topo

// FilterState describes the visible subgraph around a focus node.
// The zero value is the inactive filter: everything is visible.
// FilterState is recomputed from scratch whenever focus, depth, or
// topology changes; it is never incrementally maintained.
type FilterState struct {
	FocusID string
	Depth   int
	Visible map[string]bool
}

// Active reports whether a focus filter is in effect.
func (f FilterState) Active() bool { return f.FocusID != "" }

// Contains reports whether id is visible under f.
// An inactive filter contains every id.
func (f FilterState) Contains(id string) bool {
	if !f.Active() {
		return true
	}
	return f.Visible[id]
}

// VisibleIDs returns the visible node ids in g's insertion order.
// For an inactive filter this is every node.
func (f FilterState) VisibleIDs(g *Graph) []string {
	ids := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if f.Contains(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// FilterByNode computes the subgraph within depth hops of the focus node
// by breadth-first search over the adjacency index, recording the minimum
// hop count per node. Depth <= 0 yields only the focus itself. An unknown
// focus id yields the zero FilterState: "no such node" is a normal query
// outcome, not an error.
func (g *Graph) FilterByNode(focusID string, depth int) FilterState {
	if _, ok := g.nodes[focusID]; !ok {
		return FilterState{}
	}

	visible := map[string]bool{focusID: true}
	if depth > 0 {
		type item struct {
			id  string
			hop int
		}
		queue := []item{{focusID, 0}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if cur.hop == depth {
				continue
			}
			for _, nb := range g.adjacency[cur.id] {
				if visible[nb.ID] {
					continue
				}
				visible[nb.ID] = true
				queue = append(queue, item{nb.ID, cur.hop + 1})
			}
		}
	}

	return FilterState{FocusID: focusID, Depth: depth, Visible: visible}
}

// HasHiddenNeighbor reports whether the node is visible under f but has
// at least one neighbor that is filtered out. Renderers use this to draw
// a "more connections here" affordance. The flag is derived on demand,
// never stored, so it is always consistent with the current filter.
func (g *Graph) HasHiddenNeighbor(id string, f FilterState) bool {
	if !f.Active() || !f.Contains(id) {
		return false
	}
	for _, nb := range g.adjacency[id] {
		if !f.Contains(nb.ID) {
			return true
		}
	}
	return false
}
