package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/drawer/pkg/utils"
)

// logSink owns the destinations of the global logger. While the demo holds
// the terminal, console output is buffered and printed by close.
type logSink struct {
	file     *os.File
	deferred *utils.DeferredWriter
}

// configure points the global logger at stderr, or at the deferred buffer
// when hold is set, and additionally at path when it is not empty.
func (s *logSink) configure(level, path string, hold bool) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var console io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if hold {
		s.deferred = &utils.DeferredWriter{}
		console = s.deferred
	}

	out := console
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		s.file = f
		out = io.MultiWriter(f, console)
	}

	log.Logger = log.Output(out).Level(parsed)
	return nil
}

// close prints any held log lines to w and closes the log file.
func (s *logSink) close(w io.Writer) error {
	var errs []error
	if s.deferred != nil && s.deferred.Len() > 0 {
		errs = append(errs, s.deferred.Flush(zerolog.ConsoleWriter{Out: w, NoColor: true}))
	}
	if s.file != nil {
		errs = append(errs, s.file.Close())
		s.file = nil
	}
	return errors.Join(errs...)
}
