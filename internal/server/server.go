// If you are AI: This file implements the HTTP server lifecycle and routing.

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"hellokube/internal/config"
	"hellokube/internal/lifecycle"
	"hellokube/internal/logger"
	"hellokube/internal/router"
	"hellokube/internal/svc/health"
	"hellokube/internal/svc/hello"
)

// readHeaderTimeout bounds header reads only; request bodies have no deadline.
const readHeaderTimeout = 60 * time.Second

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	lifecycle  *lifecycle.Controller
	listener   net.Listener
}

// New creates a new server instance with the given configuration.
// The server is not started until Listen and Serve are called.
func New(cfg *config.Config) *Server {
	return newServer(cfg, lifecycle.ForceExitTimeout)
}

// newServer wires the router and lifecycle around a fresh http.Server.
func newServer(cfg *config.Config, forceExitTimeout time.Duration) *Server {
	s := &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			ReadHeaderTimeout: readHeaderTimeout,
			// "OPTIONS *" goes to the router like any other target.
			DisableGeneralOptionsHandler: true,
		},
	}
	s.lifecycle = lifecycle.New(s, forceExitTimeout)

	r := router.New()
	health.New(s.lifecycle).RegisterRoutes(r)
	hello.New().RegisterRoutes(r)
	s.httpServer.Handler = r

	return s
}

// Lifecycle returns the controller that owns the drain flag.
func (s *Server) Lifecycle() *lifecycle.Controller {
	return s.lifecycle
}

// Handler returns the request router.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Listen binds the TCP listener and logs the bound port.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln

	port := s.Port()
	logger.Info(fmt.Sprintf("Server listening on %d", port), "port", port, "addr", ln.Addr().String())
	return nil
}

// Port returns the bound TCP port, or 0 before Listen.
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Serve accepts connections on the bound listener.
// This method blocks until the server is stopped or encounters an error;
// after Shutdown it returns http.ErrServerClosed.
func (s *Server) Serve() error {
	if s.listener == nil {
		return fmt.Errorf("serve: listener not bound")
	}
	return s.httpServer.Serve(s.listener)
}

// Shutdown stops accepting connections and waits for in-flight requests.
// It is the drainer driven by the lifecycle controller.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
