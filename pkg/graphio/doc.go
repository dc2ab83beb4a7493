// Package graphio provides JSON import and export for graph topologies.
//
// # Overview
//
// This package enables serialization of node-link graphs to and from a
// simple JSON format. The format is designed for:
//
//   - Feeding any undirected graph into the simulation, not just the demo data
//   - Integration with external tools that produce or consume graph data
//   - Round-trip preservation: import, simulate, export, and re-import
//
// # JSON Format
//
// The format has two required top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": "app"},
//	    {"id": "lib-a"},
//	    {"id": "lib-b"}
//	  ],
//	  "edges": [
//	    {"source": "app", "target": "lib-a"},
//	    {"source": "lib-a", "target": "lib-b"}
//	  ]
//	}
//
// # Node Fields
//
// Required:
//   - id: Unique string identifier
//
// Optional:
//   - name: Display label (defaults to the id)
//   - type: Grouping category; same-type nodes attract each other
//   - shape: "circle" or "square" (defaults to circle)
//   - size: Visual radius in simulation units (defaults to 10)
//   - x, y: Initial position (seeded deterministically if omitted)
//
// # Edge Fields
//
// Required:
//   - source, target: Node ids; the pair is unordered and self-loops are
//     rejected
//
// Optional:
//   - weight: Display weight (defaults to 1)
//   - kind: Freeform relationship label
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := graphio.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the JSON structure and topology constraints (no
// duplicate node ids, no dangling edge endpoints, no self-loops). Errors
// are wrapped with context about which node or edge caused the problem.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to
// any io.Writer. The export includes current positions, so a settled layout
// survives a round trip.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently with other
// readers of the same graph, but not with concurrent modifications. The
// [ReadJSON] and [ImportJSON] functions create independent graph instances
// that can be used and modified freely after import.
package graphio
