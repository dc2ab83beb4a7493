// Package sim wires the simulation together for hosts.
//
// A Sim owns one graph topology, one physics engine, one viewport manager,
// one interaction state machine, and one event bus. Hosts (CLI, HTTP API,
// TUI) drive it through a small surface: feed pointer events, advance ticks,
// and read positions back. By centralizing the wiring here, every entry
// point gets identical behavior.
//
// # Usage
//
//	s, err := sim.New(sim.Options{Graph: g})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s.Pointer(interaction.Down(1, pos, time.Now()))
//	s.Tick()
package sim

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/forcegraph/pkg/event"
	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/host"
	"github.com/matzehuels/forcegraph/pkg/interaction"
	"github.com/matzehuels/forcegraph/pkg/metrics"
	"github.com/matzehuels/forcegraph/pkg/physics"
	"github.com/matzehuels/forcegraph/pkg/topo"
	"github.com/matzehuels/forcegraph/pkg/viewport"
)

// =============================================================================
// Options - Simulation Configuration
// =============================================================================

// Options contains all configuration for a simulation instance.
type Options struct {
	// Graph is the topology to simulate. Defaults to an empty graph.
	Graph *topo.Graph

	// Physics tunes the force model. A zero value means physics defaults.
	Physics physics.Config

	// Interaction tunes gesture recognition. A zero value means defaults.
	Interaction interaction.Config

	// Hooks receives host callbacks. Defaults to no-op hooks.
	Hooks host.Hooks

	// Logger for structured output. Defaults to a discard logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks option fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Graph == nil {
		o.Graph = topo.NewGraph()
	}
	if o.Physics == (physics.Config{}) {
		o.Physics = physics.DefaultConfig()
	}
	if err := o.Physics.Validate(); err != nil {
		return err
	}
	if o.Interaction == (interaction.Config{}) {
		o.Interaction = interaction.DefaultConfig()
	}
	if err := o.Interaction.Validate(); err != nil {
		return err
	}
	if o.Hooks == nil {
		o.Hooks = host.NoopHooks{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Sim - Wired Simulation Instance
// =============================================================================

// Sim is a fully wired simulation instance. It is not safe for concurrent
// use; hosts that serve multiple goroutines must serialize access.
type Sim struct {
	graph   *topo.Graph
	engine  *physics.Engine
	view    *viewport.Manager
	machine *interaction.Machine
	bus     *event.Bus
	logger  *log.Logger
}

// New builds a Sim from opts. It validates options, wires the bus, the
// viewport manager, and the interaction machine, and registers event
// counters for every bus topic.
func New(opts Options) (*Sim, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	bus := event.NewBus()
	view := viewport.NewManager(opts.Hooks)
	machine := interaction.NewMachine(opts.Graph, view, bus, opts.Hooks, opts.Interaction)

	s := &Sim{
		graph:   opts.Graph,
		engine:  physics.NewEngine(opts.Physics),
		view:    view,
		machine: machine,
		bus:     bus,
		logger:  opts.Logger,
	}
	s.countEvents()
	s.syncGauges()
	s.logger.Debug("simulation wired",
		"nodes", s.graph.NodeCount(),
		"edges", s.graph.EdgeCount())
	return s, nil
}

// countEvents subscribes a counter to every topic the engine publishes.
func (s *Sim) countEvents() {
	topics := []event.Topic{
		event.TopicNodeDrag,
		event.TopicPan,
		event.TopicZoom,
		event.TopicFiltered,
		event.TopicFilterReset,
		event.TopicNodeDoubleActivate,
		event.TopicBackgroundDoubleActivate,
	}
	for _, topic := range topics {
		name := string(topic)
		s.bus.Subscribe(topic, func(any) {
			metrics.EventsTotal.WithLabelValues(name).Inc()
		})
	}
}

func (s *Sim) syncGauges() {
	metrics.Nodes.Set(float64(s.graph.NodeCount()))
	metrics.Edges.Set(float64(s.graph.EdgeCount()))
}

// Graph returns the underlying topology.
func (s *Sim) Graph() *topo.Graph { return s.graph }

// Bus returns the event bus for host subscriptions.
func (s *Sim) Bus() *event.Bus { return s.bus }

// View returns the viewport manager.
func (s *Sim) View() *viewport.Manager { return s.view }

// Filter returns the active filter state.
func (s *Sim) Filter() topo.FilterState { return s.machine.Filter() }

// State returns the current interaction state.
func (s *Sim) State() interaction.State { return s.machine.State() }

// =============================================================================
// Simulation Loop
// =============================================================================

// Tick advances the simulation by one step. While a pan gesture is active
// the physics step is suspended so the layout holds still under the
// user's hand; all other interactions run concurrently with physics.
func (s *Sim) Tick() {
	if s.machine.Panning() {
		metrics.TicksTotal.WithLabelValues("suspended").Inc()
		return
	}

	start := time.Now()
	s.engine.Step(s.graph, s.machine.Filter())
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	metrics.TicksTotal.WithLabelValues("stepped").Inc()
	s.syncGauges()
}

// Run advances the simulation n ticks, or until ctx is canceled.
// It returns the number of ticks actually run.
func (s *Sim) Run(ctx context.Context, n int) int {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return i
		default:
		}
		s.Tick()
	}
	return n
}

// =============================================================================
// Host Entry Points
// =============================================================================

// Pointer feeds one pointer event into the interaction machine.
func (s *Sim) Pointer(ev interaction.PointerEvent) {
	s.machine.Handle(ev)
}

// Wheel applies a scroll-wheel zoom step toward pos (screen coordinates).
func (s *Sim) Wheel(delta float64, pos geom.Vec) {
	s.machine.Wheel(delta, pos)
}

// ApplyFilter restricts the visible set to nodes within the configured
// depth of focusID. Unknown ids leave the filter untouched.
func (s *Sim) ApplyFilter(focusID string) topo.FilterState {
	return s.machine.ApplyFilter(focusID)
}

// ClearFilter makes every node visible again.
func (s *Sim) ClearFilter() {
	s.machine.ClearFilter()
}

// ShortestPath returns the node ids along an unweighted shortest path
// between a and b, and whether such a path exists.
func (s *Sim) ShortestPath(a, b string) ([]string, bool) {
	return s.graph.ShortestPath(a, b)
}

// FitToView adjusts the transform so all visible nodes fit inside a
// viewport of the given size with the given padding on each side.
func (s *Sim) FitToView(size geom.Vec, padding float64) {
	bounds, ok := s.graph.Bounds(s.machine.Filter())
	if !ok {
		return
	}
	s.view.FitToBounds(bounds, size, padding)
}

// StopAllInteractions aborts any in-flight gesture, releasing dragged
// nodes and forgetting tracked pointers. Hosts call this on blur or when
// the pointer stream is known to be truncated.
func (s *Sim) StopAllInteractions() {
	s.machine.StopAllInteractions()
}
