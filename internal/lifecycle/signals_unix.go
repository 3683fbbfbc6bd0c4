// If you are AI: This file defines the termination signals on unix systems.

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package lifecycle

import (
	"os"

	"golang.org/x/sys/unix"
)

// TerminationSignals returns the operator interrupt and orchestrator terminate signals.
func TerminationSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM}
}

// signalName returns the conventional name, e.g. "SIGTERM".
func signalName(sig os.Signal) string {
	if s, ok := sig.(unix.Signal); ok {
		if name := unix.SignalName(s); name != "" {
			return name
		}
	}
	return sig.String()
}
