// If you are AI: This file implements the human-readable slog handler used for text output.

package logger

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

const (
	colorReset = "\033[0m"
	colorKey   = "\033[36m"
)

// levelColors maps each level to its terminal color.
var levelColors = map[Level]string{
	LevelDebug: "\033[90m",
	LevelInfo:  "\033[32m",
	LevelWarn:  "\033[33m",
	LevelError: "\033[31m",
}

// ColorTextHandler writes records as "[time] [LEVEL] message key=value ...".
type ColorTextHandler struct {
	level    slog.Leveler
	w        io.Writer
	mu       *sync.Mutex
	attrs    []slog.Attr
	useColor bool
}

// NewColorTextHandler creates a handler writing to w at or above level.
func NewColorTextHandler(w io.Writer, level slog.Leveler, useColor bool) *ColorTextHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ColorTextHandler{level: level, w: w, mu: &sync.Mutex{}, useColor: useColor}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ColorTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a log record.
func (h *ColorTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 128)
	buf = append(buf, '[')
	buf = r.Time.AppendFormat(buf, "2006-01-02 15:04:05")
	buf = append(buf, "] ["...)
	buf = h.appendLevel(buf, fromSlogLevel(r.Level))
	buf = append(buf, "] "...)
	buf = append(buf, r.Message...)

	for _, a := range h.attrs {
		buf = h.appendAttr(buf, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func (h *ColorTextHandler) appendLevel(buf []byte, l Level) []byte {
	if !h.useColor {
		return append(buf, l.String()...)
	}
	buf = append(buf, levelColors[l]...)
	buf = append(buf, l.String()...)
	return append(buf, colorReset...)
}

// appendAttr writes " key=value"; empty attrs are skipped.
func (h *ColorTextHandler) appendAttr(buf []byte, a slog.Attr) []byte {
	if a.Equal(slog.Attr{}) {
		return buf
	}
	buf = append(buf, ' ')
	if h.useColor {
		buf = append(buf, colorKey...)
		buf = append(buf, a.Key...)
		buf = append(buf, colorReset...)
	} else {
		buf = append(buf, a.Key...)
	}
	buf = append(buf, '=')
	return append(buf, a.Value.Resolve().String()...)
}

// WithAttrs returns a handler that prefixes every record with attrs.
func (h *ColorTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup is a no-op: groups are flattened in text output.
func (h *ColorTextHandler) WithGroup(_ string) slog.Handler {
	return h
}
