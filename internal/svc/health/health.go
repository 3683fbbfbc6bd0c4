// If you are AI: This file implements the liveness and readiness probe endpoints.

package health

import (
	"net/http"

	"hellokube/internal/router"
)

// Readiness reports whether the process has begun shutting down.
// *lifecycle.Controller satisfies it.
type Readiness interface {
	Draining() bool
}

// Service provides health check functionality.
type Service struct {
	readiness Readiness
}

// New creates a new health service that consults readiness on every /readyz.
func New(readiness Readiness) *Service {
	return &Service{readiness: readiness}
}

// RegisterRoutes adds /healthz and /readyz to the router.
func (s *Service) RegisterRoutes(r *router.Router) {
	r.Exact("/healthz", s.handleHealth)
	r.Exact("/readyz", s.handleReady)
}

// handleHealth always answers 200 while the process can serve at all.
func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	router.Text(w, http.StatusOK, "ok")
}

// handleReady answers 503 once draining has begun so the orchestrator
// stops routing new traffic here.
func (s *Service) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.readiness.Draining() {
		router.Text(w, http.StatusServiceUnavailable, "shutting down")
		return
	}
	router.Text(w, http.StatusOK, "ready")
}
