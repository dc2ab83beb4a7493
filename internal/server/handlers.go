package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	ferrors "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/geom"
	"github.com/matzehuels/forcegraph/pkg/interaction"
	"github.com/matzehuels/forcegraph/pkg/topo"
)

// =============================================================================
// Read Endpoints
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetGraph(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := s.snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPositions(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	nodes := s.sim.Graph().Nodes()
	resp := positionsResponse{Positions: make(map[string][2]float64, len(nodes))}
	for _, n := range nodes {
		resp.Positions[n.ID] = [2]float64{n.Position.X, n.Position.Y}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTransform(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	t := s.sim.View().Transform()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, transformState{PanX: t.Pan.X, PanY: t.Pan.Y, Scale: t.Scale})
}

func (s *Server) handleGetPath(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, ferrors.New(ferrors.ErrCodeInvalidInput, "from and to query parameters are required"))
		return
	}

	s.mu.Lock()
	path, ok := s.sim.ShortestPath(from, to)
	s.mu.Unlock()
	if !ok {
		writeError(w, ferrors.New(ferrors.ErrCodePathNotFound, "no path between %s and %s", from, to))
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{Path: path, Hops: len(path) - 1})
}

// =============================================================================
// Topology Mutation
// =============================================================================

func (s *Server) handleAddNode(w http.ResponseWriter, r *http.Request) {
	var req addNodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := topo.NodeInput{
		ID:    req.ID,
		Name:  req.Name,
		Type:  req.Type,
		Shape: topo.Shape(req.Shape),
	}
	if req.Size != nil {
		if *req.Size <= 0 {
			writeError(w, ferrors.Wrap(ferrors.ErrCodeInvalidNode, topo.ErrInvalidNodeSize, "add node %s: size %v", req.ID, *req.Size))
			return
		}
		in.Size = *req.Size
	}
	if req.X != nil && req.Y != nil {
		in.Position = geom.V(*req.X, *req.Y)
		in.HasPos = true
	}

	s.mu.Lock()
	_, err := s.sim.Graph().AddNode(in)
	s.mu.Unlock()
	if err != nil {
		writeError(w, ferrors.Wrap(ferrors.ErrCodeInvalidNode, err, "add node %s", req.ID))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleRemoveNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	ok := s.sim.Graph().RemoveNode(id)
	s.mu.Unlock()
	if !ok {
		writeError(w, ferrors.New(ferrors.ErrCodeNodeNotFound, "node %s not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddEdge(w http.ResponseWriter, r *http.Request) {
	var req edgeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Weight == 0 {
		req.Weight = 1
	}

	s.mu.Lock()
	_, err := s.sim.Graph().AddEdge(req.Source, req.Target, req.Weight, req.Kind)
	s.mu.Unlock()
	if err != nil {
		writeError(w, ferrors.Wrap(ferrors.ErrCodeInvalidEdge, err, "add edge %s-%s", req.Source, req.Target))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleRemoveEdge(w http.ResponseWriter, r *http.Request) {
	var req edgeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	ok := s.sim.Graph().RemoveEdge(req.Source, req.Target)
	s.mu.Unlock()
	if !ok {
		writeError(w, ferrors.New(ferrors.ErrCodeNotFound, "edge %s-%s not found", req.Source, req.Target))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Interaction Endpoints
// =============================================================================

var pointerKinds = map[string]interaction.EventKind{
	"down": interaction.PointerDown,
	"move": interaction.PointerMove,
	"up":   interaction.PointerUp,
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	kind, ok := pointerKinds[req.Kind]
	if !ok {
		writeError(w, ferrors.New(ferrors.ErrCodeInvalidPointer, "unknown pointer kind %q", req.Kind))
		return
	}

	ev := interaction.PointerEvent{
		Kind:      kind,
		PointerID: req.PointerID,
		Position:  geom.V(req.X, req.Y),
		Time:      time.Now(),
	}

	s.mu.Lock()
	s.sim.Pointer(ev)
	resp := s.snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWheel(w http.ResponseWriter, r *http.Request) {
	var req wheelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	s.sim.Wheel(req.Delta, geom.V(req.X, req.Y))
	t := s.sim.View().Transform()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, transformState{PanX: t.Pan.X, PanY: t.Pan.Y, Scale: t.Scale})
}

func (s *Server) handlePutTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	s.sim.View().SetTransform(geom.V(req.PanX, req.PanY), req.Scale)
	t := s.sim.View().Transform()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, transformState{PanX: t.Pan.X, PanY: t.Pan.Y, Scale: t.Scale})
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	_, known := s.sim.Graph().Node(req.FocusID)
	var f topo.FilterState
	if known {
		f = s.sim.ApplyFilter(req.FocusID)
	}
	g := s.sim.Graph()
	resp := filterToState(f, g)
	s.mu.Unlock()

	if !known {
		writeError(w, ferrors.New(ferrors.ErrCodeNodeNotFound, "node %s not found", req.FocusID))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearFilter(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.sim.ClearFilter()
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req fitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		writeError(w, ferrors.New(ferrors.ErrCodeInvalidInput, "width and height must be positive"))
		return
	}

	s.mu.Lock()
	s.sim.FitToView(geom.V(req.Width, req.Height), req.Padding)
	t := s.sim.View().Transform()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, transformState{PanX: t.Pan.X, PanY: t.Pan.Y, Scale: t.Scale})
}

// =============================================================================
// Helpers
// =============================================================================

// snapshot assembles the full state response. Callers must hold s.mu.
func (s *Server) snapshot() graphResponse {
	g := s.sim.Graph()
	f := s.sim.Filter()
	t := s.sim.View().Transform()

	nodes := g.Nodes()
	edges := g.Edges()
	resp := graphResponse{
		Nodes:     make([]nodeState, len(nodes)),
		Edges:     make([]edgeState, len(edges)),
		Transform: transformState{PanX: t.Pan.X, PanY: t.Pan.Y, Scale: t.Scale},
		Filter:    filterToState(f, g),
	}
	for i, n := range nodes {
		resp.Nodes[i] = nodeState{
			ID:      n.ID,
			Name:    n.Name,
			Type:    n.Type,
			Shape:   string(n.Shape),
			Size:    n.Size,
			X:       n.Position.X,
			Y:       n.Position.Y,
			Fixed:   n.Fixed,
			Visible: !f.Active() || f.Contains(n.ID),
		}
	}
	for i, e := range edges {
		resp.Edges[i] = edgeState{Source: e.Source, Target: e.Target, Weight: e.Weight, Kind: e.Kind}
	}
	return resp
}

func filterToState(f topo.FilterState, g *topo.Graph) filterState {
	out := filterState{Active: f.Active(), FocusID: f.FocusID, Depth: f.Depth}
	if f.Active() {
		out.Visible = f.VisibleIDs(g)
	}
	return out
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes onto HTTP status codes. Errors
// with no code report as internal.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := ferrors.GetCode(err)
	switch code {
	case ferrors.ErrCodeInvalidInput, ferrors.ErrCodeInvalidGraph, ferrors.ErrCodeInvalidNode,
		ferrors.ErrCodeInvalidEdge, ferrors.ErrCodeInvalidConfig, ferrors.ErrCodeInvalidPointer,
		ferrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case ferrors.ErrCodeNotFound, ferrors.ErrCodeNodeNotFound, ferrors.ErrCodeFileNotFound,
		ferrors.ErrCodePathNotFound:
		status = http.StatusNotFound
	}
	if code == "" {
		code = ferrors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Error: ferrors.UserMessage(err), Code: string(code)})
}
