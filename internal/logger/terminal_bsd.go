// If you are AI: This file holds the platform-specific piece of terminal detection.

//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package logger

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TIOCGETA
