// SPDX-License-Identifier: MIT

// Package logging builds the slog.Logger used by the lvsearch command.
//
// Library packages (core, search, heuristic, loader, report) never log; they
// report through return values and hooks. Only the command wires a logger, and
// every record it emits carries a run_id attribute so that concurrent
// invocations writing to a shared sink can be told apart.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Config selects the handler and threshold.
type Config struct {
	Level  string    // debug, info, warn, error; empty means info
	JSON   bool      // JSON handler instead of text
	Output io.Writer // nil means os.Stderr
	RunID  string    // empty means a fresh random ID
}

// ParseLevel maps a case-insensitive level name to slog.Level.
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
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New returns a logger for cfg, tagged with run_id.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return slog.New(handler).With("run_id", runID), nil
}

// NewRunID returns a short random identifier (48 bits of a UUIDv4).
func NewRunID() string {
	return uuid.NewString()[:12]
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
