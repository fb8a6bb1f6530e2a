// Package logging builds the process-wide *slog.Logger from configuration.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownFormat is returned by New for formats other than text and json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ParseLevel maps debug, info, warn/warning and error (any case) to a
// slog.Level. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
	}
}

// New returns a logger writing to w with a text or json handler at the
// given level.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
