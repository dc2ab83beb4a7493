// Package host defines the dependency-inversion boundary between the
// layout engine and its embedding environment.
//
// The engine never touches a document tree or a drawing surface. Instead
// it calls through the Hooks interface, and the host (browser bridge,
// terminal UI, HTTP server, test harness) supplies an implementation.
// NoopHooks is the default, so the whole engine runs and is testable with
// zero rendering technology attached.
package host

import "github.com/matzehuels/forcegraph/pkg/geom"

// Hooks is the set of callbacks the engine requires from its host.
type Hooks interface {
	// FixNode tells the host a node's position is now user-controlled,
	// so it can mirror the pinned state visually.
	FixNode(id string)

	// UnfixNode tells the host physics has regained control of a node.
	UnfixNode(id string)

	// ShowTooltip asks the host to present transient node info at a
	// screen-space position.
	ShowTooltip(id string, screenPos geom.Vec)

	// HideTooltip dismisses any visible tooltip.
	HideTooltip()

	// UpdateTransform delivers the viewport's pan/zoom state after every
	// change; the host applies it to its own coordinate system.
	UpdateTransform(pan geom.Vec, scale float64)

	// CloseSettings is invoked when an interaction starts on the
	// background, so open UI panels get out of the way.
	CloseSettings()
}

// NoopHooks ignores every callback.
type NoopHooks struct{}

func (NoopHooks) FixNode(string)                 {}
func (NoopHooks) UnfixNode(string)               {}
func (NoopHooks) ShowTooltip(string, geom.Vec)   {}
func (NoopHooks) HideTooltip()                   {}
func (NoopHooks) UpdateTransform(geom.Vec, float64) {}
func (NoopHooks) CloseSettings()                 {}
