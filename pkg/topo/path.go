package topo

// ShortestPath returns the node ids along an unweighted shortest path
// from a to b, inclusive of both endpoints. Edge weights are ignored:
// only topological distance matters. Ties are broken by adjacency-list
// insertion order, so results are reproducible for a given build
// sequence.
//
// Returns ([a], true) when a == b, and (nil, false) when either id is
// unknown or b is unreachable from a.
func (g *Graph) ShortestPath(a, b string) ([]string, bool) {
	if _, ok := g.nodes[a]; !ok {
		return nil, false
	}
	if _, ok := g.nodes[b]; !ok {
		return nil, false
	}
	if a == b {
		return []string{a}, true
	}

	parent := map[string]string{a: ""}
	queue := []string{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.adjacency[cur] {
			if _, seen := parent[nb.ID]; seen {
				continue
			}
			parent[nb.ID] = cur
			if nb.ID == b {
				return reconstruct(parent, a, b), true
			}
			queue = append(queue, nb.ID)
		}
	}
	return nil, false
}

// reconstruct walks the predecessor map backward from b to a and reverses.
func reconstruct(parent map[string]string, a, b string) []string {
	var path []string
	for cur := b; cur != ""; cur = parent[cur] {
		path = append(path, cur)
		if cur == a {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
