// If you are AI: This file implements the static greeting endpoint.

package hello

import (
	"net/http"

	"hellokube/internal/router"
)

// Greeting is the body served on "/" and every target starting with "/hello".
const Greeting = "Hello from Node on EKS via Argo CD!\n"

// Service serves the greeting.
type Service struct{}

// New creates a new greeting service.
func New() *Service {
	return &Service{}
}

// RegisterRoutes adds "/" and the "/hello" prefix to the router.
func (s *Service) RegisterRoutes(r *router.Router) {
	r.Exact("/", s.handleHello)
	r.Prefix("/hello", s.handleHello)
}

// handleHello writes the greeting regardless of method or query.
func (s *Service) handleHello(w http.ResponseWriter, _ *http.Request) {
	router.Text(w, http.StatusOK, Greeting)
}
