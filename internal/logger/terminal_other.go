// If you are AI: This file holds the platform-specific piece of terminal detection.

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package logger

// isTerminal reports false on platforms without termios support.
func isTerminal(uintptr) bool { return false }
