// Package physics computes the force-directed layout: pairwise
// inverse-square repulsion, linear spring attraction along edges, linear
// same-type cohesion, and damped velocity integration.
//
// The simulation is defined in discrete ticks (dt = 1), not wall-clock
// time; the embedding host decides how often to step it. All forces are
// Newton's-third-law symmetric, and the only degenerate numeric case -
// two nodes at exactly the same position - is skipped for that pair, so
// NaN and Inf can never reach a node's velocity or position.
package physics

import (
	"errors"
	"fmt"

	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/topo"
)

// Defaults for the force tunables.
const (
	DefaultDamping            = 0.95
	DefaultRepulsionStrength  = 6500.0
	DefaultAttractionStrength = 0.001
	DefaultGroupingStrength   = 0.001
)

// ErrInvalidConfig is wrapped by [Config.Validate] for every rejected field.
var ErrInvalidConfig = errors.New("invalid physics config")

// Config holds the force tunables. The zero value is not usable - start
// from DefaultConfig and override.
//
// Note on GroupingStrength: cohesion grows linearly with distance and has
// no cutoff, so with aggressive values very distant same-type nodes can
// out-pull nearby repulsion. That is the intended model; tune with care.
type Config struct {
	// Damping is the per-tick velocity decay factor in (0, 1].
	// 1 means no energy loss and is allowed.
	Damping float64

	// RepulsionStrength scales the inverse-square force pushing all
	// visible node pairs apart.
	RepulsionStrength float64

	// AttractionStrength scales the linear spring pulling edge-connected
	// nodes together. There is no rest length; equilibrium is purely the
	// balance against repulsion.
	AttractionStrength float64

	// GroupingStrength scales the linear cohesion pulling same-type
	// nodes together independent of edges. Zero disables grouping.
	GroupingStrength float64
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		Damping:            DefaultDamping,
		RepulsionStrength:  DefaultRepulsionStrength,
		AttractionStrength: DefaultAttractionStrength,
		GroupingStrength:   DefaultGroupingStrength,
	}
}

// Validate rejects out-of-range tunables.
func (c Config) Validate() error {
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("%w: damping %v outside (0, 1]", ErrInvalidConfig, c.Damping)
	}
	if c.RepulsionStrength < 0 {
		return fmt.Errorf("%w: repulsion strength %v is negative", ErrInvalidConfig, c.RepulsionStrength)
	}
	if c.AttractionStrength < 0 {
		return fmt.Errorf("%w: attraction strength %v is negative", ErrInvalidConfig, c.AttractionStrength)
	}
	if c.GroupingStrength < 0 {
		return fmt.Errorf("%w: grouping strength %v is negative", ErrInvalidConfig, c.GroupingStrength)
	}
	return nil
}

// Engine advances the simulation. It owns no state beyond its config;
// node positions, velocities, and forces live in the graph.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given config.
// The config must have been validated by the caller.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's tunables.
func (e *Engine) Config() Config { return e.cfg }

// Step runs one full simulation tick: UpdateForces then UpdatePositions.
func (e *Engine) Step(g *topo.Graph, filter topo.FilterState) {
	e.UpdateForces(g, filter)
	e.UpdatePositions(g, filter)
}

// UpdateForces recomputes every node's transient force from scratch.
// Only nodes (and edges whose both endpoints are) visible under filter
// participate; an inactive filter means everyone does. Fixed nodes
// accumulate force like any other so their neighbors feel the correct
// reaction; integration skips them later.
func (e *Engine) UpdateForces(g *topo.Graph, filter topo.FilterState) {
	nodes := g.Nodes()
	for _, n := range nodes {
		n.Force = geom.Vec{}
	}

	visible := nodes[:0:0]
	for _, n := range nodes {
		if filter.Contains(n.ID) {
			visible = append(visible, n)
		}
	}

	// Pairwise repulsion and same-type cohesion.
	for i := 0; i < len(visible); i++ {
		for j := i + 1; j < len(visible); j++ {
			e.applyPair(visible[i], visible[j])
		}
	}

	// Edge springs.
	for _, edge := range g.Edges() {
		if !filter.Contains(edge.Source) || !filter.Contains(edge.Target) {
			continue
		}
		src, _ := g.Node(edge.Source)
		dst, _ := g.Node(edge.Target)
		e.applySpring(src, dst)
	}
}

// applyPair adds repulsion (and cohesion for same-type nodes) to a and b.
// Coincident nodes have no well-defined direction, so the pair is skipped
// outright; this is the documented no-op, not an error.
func (e *Engine) applyPair(a, b *topo.Node) {
	diff := a.Position.Sub(b.Position)
	dist := geom.Length(diff)
	if dist == 0 {
		return
	}

	dir := diff.Scale(1 / dist)
	repulsion := dir.Scale(e.cfg.RepulsionStrength / (dist * dist))
	a.Force = a.Force.Add(repulsion)
	b.Force = b.Force.Sub(repulsion)

	if e.cfg.GroupingStrength > 0 && a.Type != "" && a.Type == b.Type {
		cohesion := dir.Scale(-e.cfg.GroupingStrength * dist)
		a.Force = a.Force.Add(cohesion)
		b.Force = b.Force.Sub(cohesion)
	}
}

// applySpring pulls the edge's endpoints together with a force linear in
// their separation. Coincident endpoints are skipped like any other pair.
func (e *Engine) applySpring(src, dst *topo.Node) {
	diff := dst.Position.Sub(src.Position)
	dist := geom.Length(diff)
	if dist == 0 {
		return
	}
	pull := diff.Scale(1 / dist).Scale(e.cfg.AttractionStrength * dist)
	src.Force = src.Force.Add(pull)
	dst.Force = dst.Force.Sub(pull)
}

// UpdatePositions integrates velocity and position for every non-fixed
// node visible under filter: v += F, v *= damping, p += v, with dt = 1.
// Fixed nodes keep their position and velocity untouched.
func (e *Engine) UpdatePositions(g *topo.Graph, filter topo.FilterState) {
	for _, n := range g.Nodes() {
		if n.Fixed || !filter.Contains(n.ID) {
			continue
		}
		n.Velocity = n.Velocity.Add(n.Force).Scale(e.cfg.Damping)
		n.Position = n.Position.Add(n.Velocity)
	}
}
