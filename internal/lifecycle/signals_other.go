// If you are AI: This file defines the termination signals on platforms without x/sys/unix.

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package lifecycle

import (
	"os"
	"syscall"
)

// TerminationSignals returns the operator interrupt and orchestrator terminate signals.
func TerminationSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}

// signalName maps the portable signals to their conventional names.
func signalName(sig os.Signal) string {
	switch sig {
	case os.Interrupt:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return sig.String()
	}
}
