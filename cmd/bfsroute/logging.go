package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w that drops records below lvl.
func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
