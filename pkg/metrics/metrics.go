package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Define global variables for metrics.
// We use 'promauto' which automatically registers metrics without complex initialization.

var (
	// 1. Simulation Ticks Total (Counter)
	// Counts how many physics ticks ran, including ticks skipped while panning.
	TicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forcegraph_ticks_total",
			Help: "Total number of simulation ticks",
		},
		[]string{"result"}, // "stepped" or "suspended"
	)

	// 2. Tick Duration (Histogram)
	// Measures how long a physics step takes. The pairwise repulsion pass is
	// quadratic in node count, so this is the first thing to watch on big graphs.
	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "forcegraph_tick_duration_seconds",
			Help:    "Duration of a single physics tick in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// 3. Graph Size (Gauges)
	// Track the current number of nodes and edges in the topology.
	Nodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "forcegraph_nodes",
			Help: "Current number of nodes in the graph",
		},
	)
	Edges = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "forcegraph_edges",
			Help: "Current number of edges in the graph",
		},
	)

	// 4. Interaction Events (Counter)
	// Counts events published on the bus, labeled by topic.
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forcegraph_events_total",
			Help: "Total number of interaction events published",
		},
		[]string{"topic"},
	)

	// 5. HTTP Requests Total (Counter)
	// Counts API requests, labeled by method, path, and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forcegraph_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)
)
