// If you are AI: This file routes OS termination signals into the controller.

package lifecycle

import (
	"os"
	"os/signal"
	"sync"
)

// ListenForSignals delivers each received signal to Terminate until stop is
// called. With no arguments it listens for TerminationSignals.
// Interrupt and terminate are treated identically.
func (c *Controller) ListenForSignals(signals ...os.Signal) (stop func()) {
	if len(signals) == 0 {
		signals = TerminationSignals()
	}

	sigChan := make(chan os.Signal, len(signals))
	signal.Notify(sigChan, signals...)

	quit := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigChan:
				c.Terminate(signalName(sig))
			case <-quit:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(quit)
		})
	}
}
