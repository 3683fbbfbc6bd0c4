// If you are AI: This file implements the process lifecycle state machine.
// It owns the drain flag read by the readiness probe and races listener drain
// against a force-exit timer to decide the process exit code.

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"hellokube/internal/logger"
)

// ForceExitTimeout bounds how long a drain may run before the process gives up.
const ForceExitTimeout = 10 * time.Second

var (
	// ErrListenerClose wraps the error reported by the drainer.
	ErrListenerClose = errors.New("listener close failed")
	// ErrDrainTimeout is recorded when the force-exit timer fires first.
	ErrDrainTimeout = errors.New("drain did not finish before force-exit timeout")
)

// State is the lifecycle phase of the process.
type State int32

const (
	Running State = iota
	Draining
	// Terminated means the exit code is decided; the caller exits next.
	Terminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Draining:
		return "DRAINING"
	case Terminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Drainer stops accepting connections and waits for in-flight requests.
// *http.Server satisfies it.
type Drainer interface {
	Shutdown(ctx context.Context) error
}

// Outcome is the terminal result of a shutdown.
type Outcome struct {
	Code int   // process exit code
	Err  error // nil on a clean drain
}

// Controller drives RUNNING -> DRAINING -> TERMINATED.
type Controller struct {
	drainer Drainer
	timeout time.Duration

	started  atomic.Bool
	draining atomic.Bool
	state    atomic.Int32

	done    chan struct{}
	outcome Outcome
}

// New creates a controller in the Running state.
// timeout is the force-exit bound; production code passes ForceExitTimeout.
func New(drainer Drainer, timeout time.Duration) *Controller {
	return &Controller{
		drainer: drainer,
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

// Draining reports whether shutdown has begun. Once true it stays true.
func (c *Controller) Draining() bool {
	return c.draining.Load()
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Terminate begins shutdown. Only the first call has any effect; it returns
// true for that call and false for every later one.
//
// The drain flag is set before anything else so a readiness probe handled
// after this call returns always sees the draining state.
func (c *Controller) Terminate(reason string) bool {
	if !c.started.CompareAndSwap(false, true) {
		logger.Debug("shutdown already in progress", "signal", reason)
		return false
	}

	c.draining.Store(true)
	c.state.Store(int32(Draining))
	logger.Info(fmt.Sprintf("Received %s, shutting down gracefully...", reason), "signal", reason)

	// No deadline on the drain itself; the timer below is the only bound.
	drained := make(chan error, 1)
	go func() {
		drained <- c.drainer.Shutdown(context.Background())
	}()

	timer := time.NewTimer(c.timeout)
	go c.race(drained, timer)

	return true
}

// race settles the outcome from whichever of drain or timer fires first.
// When the timer wins, the drain goroutine is abandoned to process exit.
func (c *Controller) race(drained <-chan error, timer *time.Timer) {
	var out Outcome

	select {
	case err := <-drained:
		timer.Stop()
		if err != nil {
			logger.Error("Error during shutdown", "error", err)
			out = Outcome{Code: 1, Err: fmt.Errorf("%w: %w", ErrListenerClose, err)}
		} else {
			logger.Info("Server closed. Bye!")
			out = Outcome{Code: 0}
		}
	case <-timer.C:
		logger.Warn("Force exiting after timeout", "timeout", c.timeout)
		out = Outcome{Code: 1, Err: ErrDrainTimeout}
	}

	c.outcome = out
	c.state.Store(int32(Terminated))
	close(c.done)
}

// Done is closed once the outcome is decided.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the outcome is decided and returns it.
// Every caller observes the same outcome.
func (c *Controller) Wait() Outcome {
	<-c.done
	return c.outcome
}
