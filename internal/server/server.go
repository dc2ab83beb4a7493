// Package server exposes a simulation instance over a small JSON HTTP API.
//
// The server owns the tick loop: a background goroutine advances the
// simulation at a fixed interval while handlers feed pointer events and
// read state back. A single mutex serializes all access to the Sim, which
// is not safe for concurrent use on its own.
package server

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/forcegraph/pkg/sim"
)

// DefaultTickInterval is the wall-clock spacing of physics ticks, matching
// a 60fps animation loop.
const DefaultTickInterval = 16 * time.Millisecond

// Server hosts one simulation behind an HTTP API.
type Server struct {
	mu     sync.Mutex
	sim    *sim.Sim
	logger *log.Logger
	tick   time.Duration
}

// New wraps a simulation in an HTTP server. A nil logger discards output.
func New(s *sim.Sim, logger *log.Logger, tickInterval time.Duration) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	return &Server{sim: s, logger: logger, tick: tickInterval}
}

// Handler builds the route table. It is exported separately from Run so
// tests can drive the API through httptest without a listener.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoveryMiddleware)
	r.Use(s.loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/graph", s.handleGetGraph)
		r.Get("/positions", s.handleGetPositions)
		r.Get("/transform", s.handleGetTransform)
		r.Put("/transform", s.handlePutTransform)
		r.Get("/path", s.handleGetPath)

		r.Post("/nodes", s.handleAddNode)
		r.Delete("/nodes/{id}", s.handleRemoveNode)
		r.Post("/edges", s.handleAddEdge)
		r.Delete("/edges", s.handleRemoveEdge)

		r.Post("/pointer", s.handlePointer)
		r.Post("/wheel", s.handleWheel)
		r.Post("/filter", s.handleFilter)
		r.Delete("/filter", s.handleClearFilter)
		r.Post("/fit", s.handleFit)
	})

	return r
}

// Run serves the API on addr and drives the tick loop until ctx is
// canceled, then shuts the listener down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.tickLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.sim.Tick()
			s.mu.Unlock()
		}
	}
}
