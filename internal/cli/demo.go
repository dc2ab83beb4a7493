package cli

import (
	"github.com/matzehuels/forcegraph/pkg/topo"
)

// demoGraph builds the bundled sample topology: a small service diagram
// with typed clusters, used when no graph file is given.
func demoGraph() (*topo.Graph, error) {
	g := topo.NewGraph()

	nodes := []topo.NodeInput{
		{ID: "gateway", Name: "API Gateway", Type: "edge", Size: 16},
		{ID: "auth", Name: "Auth", Type: "service"},
		{ID: "users", Name: "Users", Type: "service"},
		{ID: "orders", Name: "Orders", Type: "service", Size: 14},
		{ID: "billing", Name: "Billing", Type: "service"},
		{ID: "users-db", Name: "Users DB", Type: "storage", Shape: topo.ShapeSquare},
		{ID: "orders-db", Name: "Orders DB", Type: "storage", Shape: topo.ShapeSquare},
		{ID: "cache", Name: "Cache", Type: "storage", Shape: topo.ShapeDiamond, Size: 8},
		{ID: "queue", Name: "Queue", Type: "infra", Shape: topo.ShapeSquare},
		{ID: "mailer", Name: "Mailer", Type: "worker", Size: 8},
	}
	for _, n := range nodes {
		if _, err := g.AddNode(n); err != nil {
			return nil, err
		}
	}

	edges := []struct {
		source, target string
		kind           string
	}{
		{"gateway", "auth", "calls"},
		{"gateway", "users", "calls"},
		{"gateway", "orders", "calls"},
		{"auth", "users", "calls"},
		{"users", "users-db", "reads"},
		{"users", "cache", "reads"},
		{"orders", "orders-db", "reads"},
		{"orders", "billing", "calls"},
		{"orders", "queue", "publishes"},
		{"billing", "queue", "publishes"},
		{"queue", "mailer", "delivers"},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.source, e.target, 1, e.kind); err != nil {
			return nil, err
		}
	}

	return g, nil
}
