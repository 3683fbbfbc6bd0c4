// If you are AI: This file handles graceful shutdown orchestration for the server process.

package server

import (
	"os"

	"hellokube/internal/lifecycle"
)

// ShutdownHandler connects termination signals to the server's lifecycle.
type ShutdownHandler struct {
	server *Server
	stop   func()
}

// NewShutdownHandler subscribes to termination signals immediately, so it
// should be created before the listener is bound. With no signals given it
// uses lifecycle.TerminationSignals.
func NewShutdownHandler(server *Server, signals ...os.Signal) *ShutdownHandler {
	return &ShutdownHandler{
		server: server,
		stop:   server.lifecycle.ListenForSignals(signals...),
	}
}

// Wait blocks until shutdown has finished or timed out and returns the outcome.
// This method should be called from the main goroutine; the caller exits with
// Outcome.Code.
func (h *ShutdownHandler) Wait() lifecycle.Outcome {
	out := h.server.lifecycle.Wait()
	h.stop()
	return out
}
