// Package interaction consolidates raw pointer input into drag, pan,
// zoom, and double-activation gestures, and drives node positions, the
// viewport transform, and the focus filter accordingly.
//
// The machine is a tagged-union state machine over Idle, Panning,
// Dragging, and Pinching. It owns no timers: the double-activation window
// is evaluated against the timestamps the host samples into each
// PointerEvent. Like the rest of the engine it is single-threaded; the
// host's event loop guarantees one mutator at a time.
package interaction

import (
	"math"
	"slices"
	"time"

	"github.com/matzehuels/forcegraph/pkg/event"
	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/host"
	"github.com/matzehuels/forcegraph/pkg/topo"
	"github.com/matzehuels/forcegraph/pkg/viewport"
)

// State identifies the machine's current interaction mode.
// Exactly one state is active at a time.
type State int

const (
	// StateIdle means no pointer is interacting.
	StateIdle State = iota
	// StatePanning means one pointer is moving the viewport.
	StatePanning
	// StateDragging means one pointer is moving a node.
	StateDragging
	// StatePinching means two pointers are zooming the viewport.
	StatePinching
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePanning:
		return "panning"
	case StateDragging:
		return "dragging"
	case StatePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// Machine is the interaction state machine for one viewport.
type Machine struct {
	graph *topo.Graph
	view  *viewport.Manager
	bus   *event.Bus
	hooks host.Hooks
	cfg   Config

	state    State
	pointers map[int]geom.Vec
	order    []int // active pointer ids, oldest first

	filter topo.FilterState

	// Dragging state.
	dragNodeID   string
	dragWasFixed bool

	// Panning state.
	lastPointer geom.Vec

	// Pinching state.
	lastDistance float64
	lastCenter   geom.Vec

	// Tap candidate for the current single-pointer activation.
	tapStart    time.Time
	tapOrigin   geom.Vec
	tapNode     string // "" = background
	tapMoved    bool
	tapConsumed bool // this activation completed a double; don't re-arm

	// Last completed tap, for double-activation pairing.
	prevTapValid bool
	prevTapEnd   time.Time
	prevTapNode  string
}

// NewMachine wires the machine to its collaborators. A nil bus or hooks
// falls back to a private bus / no-op hooks. The config must have been
// validated by the caller.
func NewMachine(g *topo.Graph, view *viewport.Manager, bus *event.Bus, hooks host.Hooks, cfg Config) *Machine {
	if bus == nil {
		bus = event.NewBus()
	}
	if hooks == nil {
		hooks = host.NoopHooks{}
	}
	return &Machine{
		graph:    g,
		view:     view,
		bus:      bus,
		hooks:    hooks,
		cfg:      cfg,
		pointers: make(map[int]geom.Vec),
	}
}

// State returns the current interaction mode.
func (m *Machine) State() State { return m.state }

// Panning reports whether the viewport is being panned. The tick driver
// suspends physics while panning so the camera move is not fighting
// simulation jitter. Dragging does NOT suspend physics: other nodes keep
// settling while one is moved by hand.
func (m *Machine) Panning() bool { return m.state == StatePanning }

// Filter returns the active focus filter (zero value: all visible).
func (m *Machine) Filter() topo.FilterState { return m.filter }

// Handle feeds one pointer event into the machine.
func (m *Machine) Handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		m.handleDown(ev)
	case PointerMove:
		m.handleMove(ev)
	case PointerUp:
		m.handleUp(ev)
	}
}

func (m *Machine) handleDown(ev PointerEvent) {
	if _, known := m.pointers[ev.PointerID]; !known {
		m.order = append(m.order, ev.PointerID)
	}
	m.pointers[ev.PointerID] = ev.Position

	switch len(m.order) {
	case 1:
		m.beginSinglePointer(ev)
	case 2:
		m.beginPinch()
	default:
		// Additional pointers beyond the second are tracked but do not
		// change the gesture.
	}
}

// beginSinglePointer starts a drag (on a node) or a pan (on background),
// firing a double-activation first when this down pairs with a recent tap
// on the same logical target.
func (m *Machine) beginSinglePointer(ev PointerEvent) {
	hit := m.hitNode(ev.Position)

	m.tapConsumed = false
	if m.prevTapValid && ev.Time.Sub(m.prevTapEnd) <= m.cfg.DoubleWindow && hit == m.prevTapNode {
		m.prevTapValid = false
		m.tapConsumed = true
		m.fireDoubleActivate(hit)
	}

	m.tapStart = ev.Time
	m.tapOrigin = ev.Position
	m.tapNode = hit
	m.tapMoved = false

	if hit != "" {
		node, _ := m.graph.Node(hit)
		m.state = StateDragging
		m.dragNodeID = hit
		m.dragWasFixed = node.Fixed
		node.Fixed = true
		m.hooks.FixNode(hit)
		m.hooks.ShowTooltip(hit, ev.Position)
		return
	}

	m.state = StatePanning
	m.lastPointer = ev.Position
	m.hooks.CloseSettings()
}

// beginPinch switches to two-pointer zoom. An in-flight drag is released
// first, exactly as if its pointer had lifted.
func (m *Machine) beginPinch() {
	if m.state == StateDragging {
		m.releaseDrag()
	}
	m.prevTapValid = false
	m.tapMoved = true // a multi-touch gesture can never be a tap

	p1, p2 := m.pointers[m.order[0]], m.pointers[m.order[1]]
	m.state = StatePinching
	m.lastDistance = geom.Dist(p1, p2)
	m.lastCenter = geom.Mid(p1, p2)
}

func (m *Machine) handleMove(ev PointerEvent) {
	if _, known := m.pointers[ev.PointerID]; !known {
		return
	}
	m.pointers[ev.PointerID] = ev.Position

	if !m.tapMoved && len(m.order) == 1 && geom.Dist(ev.Position, m.tapOrigin) > m.cfg.TapSlop {
		m.tapMoved = true
	}

	switch m.state {
	case StateDragging:
		m.moveDrag(ev.Position)
	case StatePanning:
		if ev.PointerID == m.order[0] {
			m.movePan(ev.Position)
		}
	case StatePinching:
		if ev.PointerID == m.order[0] || ev.PointerID == m.order[1] {
			m.movePinch()
		}
	}
}

// moveDrag recomputes the node's position from the pointer by inverse
// transform. Velocity is left alone so physics resumes smoothly when the
// node is released.
func (m *Machine) moveDrag(pos geom.Vec) {
	node, ok := m.graph.Node(m.dragNodeID)
	if !ok {
		// Node deleted mid-drag; nothing left to move.
		m.state = StateIdle
		m.dragNodeID = ""
		return
	}
	simPos := m.view.Transform().ScreenToSim(pos)
	delta := simPos.Sub(node.Position)
	node.Position = simPos
	m.bus.Publish(event.TopicNodeDrag, event.NodeDrag{
		NodeID:   node.ID,
		Position: simPos,
		Delta:    delta,
	})
}

func (m *Machine) movePan(pos geom.Vec) {
	delta := pos.Sub(m.lastPointer)
	m.lastPointer = pos
	m.view.Translate(delta)
	m.bus.Publish(event.TopicPan, event.Pan{
		Pan:   m.view.Transform().Pan,
		Delta: delta,
	})
}

// movePinch rescales by the ratio of pointer distances, keeping the pinch
// center visually stationary. Coincident pointers leave the transform
// untouched, mirroring the physics skip rule for zero separations.
func (m *Machine) movePinch() {
	p1, p2 := m.pointers[m.order[0]], m.pointers[m.order[1]]
	newDistance := geom.Dist(p1, p2)
	newCenter := geom.Mid(p1, p2)

	if m.lastDistance > 0 && newDistance > 0 {
		target := m.view.Transform().Scale * newDistance / m.lastDistance
		m.view.ZoomToward(target, newCenter)
		t := m.view.Transform()
		m.bus.Publish(event.TopicZoom, event.Zoom{
			Scale:  t.Scale,
			Pan:    t.Pan,
			Center: newCenter,
		})
	}
	m.lastDistance = newDistance
	m.lastCenter = newCenter
}

func (m *Machine) handleUp(ev PointerEvent) {
	if _, known := m.pointers[ev.PointerID]; !known {
		return
	}

	m.recordTap(ev)

	delete(m.pointers, ev.PointerID)
	m.order = slices.DeleteFunc(m.order, func(id int) bool { return id == ev.PointerID })

	switch m.state {
	case StateDragging:
		m.releaseDrag()
		m.state = StateIdle
	case StatePanning:
		m.state = StateIdle
	case StatePinching:
		switch len(m.order) {
		case 1:
			// Seamless downgrade: the remaining pointer becomes the new
			// pan anchor.
			m.state = StatePanning
			m.lastPointer = m.pointers[m.order[0]]
		case 0:
			m.state = StateIdle
		default:
			p1, p2 := m.pointers[m.order[0]], m.pointers[m.order[1]]
			m.lastDistance = geom.Dist(p1, p2)
			m.lastCenter = geom.Mid(p1, p2)
		}
	}

	// All pointers lifted resets to Idle unconditionally.
	if len(m.order) == 0 {
		m.state = StateIdle
	}
}

// recordTap classifies the finished activation. Both gates must pass:
// short duration AND low displacement. A slow press or a real drag
// invalidates any pending tap instead of pairing with it.
func (m *Machine) recordTap(ev PointerEvent) {
	if (m.state != StateDragging && m.state != StatePanning) || len(m.order) != 1 {
		return
	}
	duration := ev.Time.Sub(m.tapStart)
	moved := m.tapMoved || geom.Dist(ev.Position, m.tapOrigin) > m.cfg.TapSlop
	if m.tapConsumed {
		// This activation was the second half of a double; a following
		// tap starts a fresh cycle rather than chaining activations.
		m.prevTapValid = false
		return
	}
	if duration <= m.cfg.TapMaxDuration && !moved {
		m.prevTapValid = true
		m.prevTapEnd = ev.Time
		m.prevTapNode = m.tapNode
	} else {
		m.prevTapValid = false
	}
}

// releaseDrag returns the dragged node to physics control unless it was
// already pinned before the drag started.
func (m *Machine) releaseDrag() {
	if node, ok := m.graph.Node(m.dragNodeID); ok && !m.dragWasFixed {
		node.Fixed = false
		m.hooks.UnfixNode(node.ID)
	}
	m.hooks.HideTooltip()
	m.dragNodeID = ""
}

// fireDoubleActivate applies the filter action for a double-activation
// and publishes the corresponding events.
func (m *Machine) fireDoubleActivate(target string) {
	if target == "" {
		m.bus.Publish(event.TopicBackgroundDoubleActivate, event.BackgroundDoubleActivate{})
		m.ClearFilter()
		return
	}
	m.bus.Publish(event.TopicNodeDoubleActivate, event.NodeDoubleActivate{NodeID: target})
	m.ApplyFilter(target)
}

// ApplyFilter focuses the filter on a node at the configured depth and
// publishes the filtered event. An unknown id is a no-op: "no such node"
// is a normal query outcome.
func (m *Machine) ApplyFilter(focusID string) topo.FilterState {
	f := m.graph.FilterByNode(focusID, m.cfg.FilterDepth)
	if !f.Active() {
		return m.filter
	}
	m.filter = f
	m.bus.Publish(event.TopicFiltered, event.Filtered{
		FocusID:      f.FocusID,
		Depth:        f.Depth,
		VisibleNodes: f.VisibleIDs(m.graph),
	})
	return f
}

// ClearFilter makes every node visible again and publishes the reset.
func (m *Machine) ClearFilter() {
	m.filter = topo.FilterState{}
	m.bus.Publish(event.TopicFilterReset, event.FilterReset{})
}

// Wheel applies one zoom step toward the cursor: the scale is multiplied
// by sensitivity^delta, so positive deltas zoom in and negative out.
func (m *Machine) Wheel(delta float64, pos geom.Vec) {
	target := m.view.Transform().Scale * math.Pow(m.cfg.ZoomSensitivity, delta)
	m.view.ZoomToward(target, pos)
	t := m.view.Transform()
	m.bus.Publish(event.TopicZoom, event.Zoom{Scale: t.Scale, Pan: t.Pan, Center: pos})
}

// StopAllInteractions force-transitions to Idle: any dragged node gets
// its prior fixed state back, all pointer tracking is dropped, and the
// host is told to hide transient UI.
func (m *Machine) StopAllInteractions() {
	if m.state == StateDragging {
		if node, ok := m.graph.Node(m.dragNodeID); ok {
			node.Fixed = m.dragWasFixed
			if !m.dragWasFixed {
				m.hooks.UnfixNode(node.ID)
			}
		}
		m.dragNodeID = ""
	}
	m.hooks.HideTooltip()
	m.state = StateIdle
	m.pointers = make(map[int]geom.Vec)
	m.order = m.order[:0]
	m.prevTapValid = false
}

// hitNode resolves a screen-space point to the visible node under it, or
// "" for background. The pointer is inverse-transformed into simulation
// space and tested against each node's size radius; the closest hit wins.
func (m *Machine) hitNode(pos geom.Vec) string {
	simPos := m.view.Transform().ScreenToSim(pos)
	bestID := ""
	bestDist := math.Inf(1)
	for _, n := range m.graph.Nodes() {
		if !m.filter.Contains(n.ID) {
			continue
		}
		d := geom.Dist(simPos, n.Position)
		if d <= n.Size && d < bestDist {
			bestID, bestDist = n.ID, d
		}
	}
	return bestID
}
