package server

// Wire types for the JSON API. Coordinates are simulation-space except
// where noted; pointer and wheel positions arrive in screen space.

type nodeState struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type,omitempty"`
	Shape   string  `json:"shape,omitempty"`
	Size    float64 `json:"size"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Fixed   bool    `json:"fixed,omitempty"`
	Visible bool    `json:"visible"`
}

type edgeState struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
	Kind   string  `json:"kind,omitempty"`
}

type transformState struct {
	PanX  float64 `json:"pan_x"`
	PanY  float64 `json:"pan_y"`
	Scale float64 `json:"scale"`
}

type filterState struct {
	Active  bool     `json:"active"`
	FocusID string   `json:"focus_id,omitempty"`
	Depth   int      `json:"depth,omitempty"`
	Visible []string `json:"visible,omitempty"`
}

type graphResponse struct {
	Nodes     []nodeState    `json:"nodes"`
	Edges     []edgeState    `json:"edges"`
	Transform transformState `json:"transform"`
	Filter    filterState    `json:"filter"`
}

type positionsResponse struct {
	Positions map[string][2]float64 `json:"positions"`
}

type addNodeRequest struct {
	ID    string   `json:"id"`
	Name  string   `json:"name,omitempty"`
	Type  string   `json:"type,omitempty"`
	Shape string   `json:"shape,omitempty"`
	Size  *float64 `json:"size,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
}

type edgeRequest struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight,omitempty"`
	Kind   string  `json:"kind,omitempty"`
}

type pointerRequest struct {
	Kind      string  `json:"kind"` // "down", "move", or "up"
	PointerID int     `json:"pointer_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

type wheelRequest struct {
	Delta float64 `json:"delta"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type transformRequest struct {
	PanX  float64 `json:"pan_x"`
	PanY  float64 `json:"pan_y"`
	Scale float64 `json:"scale"`
}

type filterRequest struct {
	FocusID string `json:"focus_id"`
}

type fitRequest struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding,omitempty"`
}

type pathResponse struct {
	Path []string `json:"path"`
	Hops int      `json:"hops"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
