// Package viewport owns the pan/zoom state of a view onto the simulation
// and the conversions between screen space and simulation space.
//
// A Manager is the only mutator of its Transform. Hosts observe changes
// through the UpdateTransform collaborator callback, which fires after
// every mutation.
package viewport

import (
	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/host"
)

// Scale clamp bounds. Every mutation path clamps, so the invariant
// MinScale <= Scale <= MaxScale holds at all times.
const (
	MinScale = 0.2
	MaxScale = 2.0
)

// Transform is the viewport state: screen = sim*Scale + Pan.
type Transform struct {
	Pan   geom.Vec
	Scale float64
}

// Identity is the neutral transform.
var Identity = Transform{Scale: 1}

// ScreenToSim converts a screen-space point into simulation space.
func (t Transform) ScreenToSim(p geom.Vec) geom.Vec {
	return p.Sub(t.Pan).Scale(1 / t.Scale)
}

// SimToScreen converts a simulation-space point into screen space.
func (t Transform) SimToScreen(p geom.Vec) geom.Vec {
	return p.Scale(t.Scale).Add(t.Pan)
}

// Manager owns one viewport's Transform. Not safe for concurrent use.
type Manager struct {
	t     Transform
	hooks host.Hooks
}

// NewManager creates a manager at the identity transform.
// A nil hooks falls back to the no-op collaborator.
func NewManager(hooks host.Hooks) *Manager {
	if hooks == nil {
		hooks = host.NoopHooks{}
	}
	return &Manager{t: Identity, hooks: hooks}
}

// Transform returns the current viewport state.
func (m *Manager) Transform() Transform { return m.t }

// SetTransform replaces the transform, clamping scale.
func (m *Manager) SetTransform(pan geom.Vec, scale float64) {
	m.t = Transform{Pan: pan, Scale: clampScale(scale)}
	m.notify()
}

// Reset restores the identity transform. Used on explicit user request;
// data reloads deliberately leave the viewport alone.
func (m *Manager) Reset() {
	m.t = Identity
	m.notify()
}

// Translate shifts the pan offset by a screen-space delta. Scale is
// untouched.
func (m *Manager) Translate(delta geom.Vec) {
	m.t.Pan = m.t.Pan.Add(delta)
	m.notify()
}

// ZoomToward rescales to targetScale (clamped) while keeping the scene
// point under the screen-space anchor visually stationary: the pan is
// adjusted so anchor maps to the same simulation point before and after.
func (m *Manager) ZoomToward(targetScale float64, anchor geom.Vec) {
	newScale := clampScale(targetScale)
	r := newScale / m.t.Scale
	m.t.Pan = anchor.Sub(anchor.Sub(m.t.Pan).Scale(r))
	m.t.Scale = newScale
	m.notify()
}

// FitToBounds chooses the largest scale (capped at 1:1) that fits bounds
// plus padding inside a viewport of the given size, then centers the
// bounds' centroid. Degenerate bounds (a single node) are centered at
// scale 1.
func (m *Manager) FitToBounds(bounds geom.Rect, viewport geom.Vec, padding float64) {
	w := bounds.Width() + 2*padding
	h := bounds.Height() + 2*padding

	scale := 1.0
	if w > 0 && viewport.X/w < scale {
		scale = viewport.X / w
	}
	if h > 0 && viewport.Y/h < scale {
		scale = viewport.Y / h
	}
	scale = clampScale(scale)

	center := bounds.Center().Scale(scale)
	m.t = Transform{
		Pan:   viewport.Scale(0.5).Sub(center),
		Scale: scale,
	}
	m.notify()
}

func (m *Manager) notify() {
	m.hooks.UpdateTransform(m.t.Pan, m.t.Scale)
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
