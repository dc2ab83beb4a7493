// Package pkg provides the core libraries for forcegraph layout simulation.
//
// # Overview
//
// Forcegraph animates node-link diagrams with force-directed physics:
// connected nodes pull together, all nodes push apart, and the layout
// settles into a readable arrangement. The pkg directory is organized
// into five main areas:
//
//  1. [topo] - Graph topology (nodes, edges, adjacency, filtering, paths)
//  2. [physics] - The force model and integrator
//  3. [viewport] / [interaction] - Pan/zoom transform and gesture recognition
//  4. [sim] - Orchestration wiring one simulation instance together
//  5. [graphio] / [cache] - JSON serialization and the settled-layout cache
//
// # Architecture
//
// The typical data flow through forcegraph:
//
//	Graph JSON
//	         ↓
//	    [graphio] package (decode + validate)
//	         ↓
//	    [topo] package (topology + filter + shortest path)
//	         ↓
//	    [physics] package (forces + integration, one tick at a time)
//	         ↓
//	    positions, consumed by hosts (HTTP API, terminal UI)
//
// Pointer input flows the other way: hosts feed pointer events into
// [interaction], which mutates [topo] node pins, the [viewport] transform,
// and the filter, and publishes notifications on [event].
//
// # Quick Start
//
//	g, err := graphio.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := sim.New(sim.Options{Graph: g})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := 0; i < 300; i++ {
//	    s.Tick()
//	}
//
// [topo]: github.com/matzehuels/forcegraph/pkg/topo
// [physics]: github.com/matzehuels/forcegraph/pkg/physics
// [viewport]: github.com/matzehuels/forcegraph/pkg/viewport
// [interaction]: github.com/matzehuels/forcegraph/pkg/interaction
// [sim]: github.com/matzehuels/forcegraph/pkg/sim
// [graphio]: github.com/matzehuels/forcegraph/pkg/graphio
// [cache]: github.com/matzehuels/forcegraph/pkg/cache
// [event]: github.com/matzehuels/forcegraph/pkg/event
package pkg
