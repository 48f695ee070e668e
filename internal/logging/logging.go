// Package logging sets up the slog logger. The TUI owns the terminal, so
// records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileName is the log file created inside the config directory.
const FileName = "icebreaker.log"

// Options controls where and how much is logged.
type Options struct {
	Debug bool
	Dir   string
}

// Setup builds a logger tagged with a fresh run id. With Debug off it
// discards everything. The returned closer must be called on exit.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	runID := uuid.NewString()

	if !opts.Debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)).With("run", runID), nopCloser{}, nil
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(opts.Dir, FileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("run", runID), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
