package event

import "github.com/matzehuels/forcegraph/pkg/geom"

// NodeDrag is published on TopicNodeDrag for every drag movement.
type NodeDrag struct {
	NodeID   string
	Position geom.Vec // new simulation-space position
	Delta    geom.Vec // simulation-space movement since the last event
}

// Pan is published on TopicPan while the viewport is panned.
type Pan struct {
	Pan   geom.Vec // new pan offset
	Delta geom.Vec // screen-space movement since the last event
}

// Zoom is published on TopicZoom for wheel and pinch zooms.
type Zoom struct {
	Scale  float64
	Pan    geom.Vec
	Center geom.Vec // screen-space anchor the zoom kept stationary
}

// Filtered is published on TopicFiltered after a focus filter is applied.
type Filtered struct {
	FocusID      string
	Depth        int
	VisibleNodes []string
}

// FilterReset is published on TopicFilterReset when the filter clears.
type FilterReset struct{}

// NodeDoubleActivate is published on TopicNodeDoubleActivate when a
// double-click/double-tap lands on a node.
type NodeDoubleActivate struct {
	NodeID string
}

// BackgroundDoubleActivate is published on TopicBackgroundDoubleActivate
// when a double-click/double-tap lands on empty space.
type BackgroundDoubleActivate struct{}
