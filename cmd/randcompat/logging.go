package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// setupLogger builds a stderr logger for the given level and format.
func setupLogger(level, format string) (*log.Logger, error) {
	return newLogger(os.Stderr, level, format)
}

func newLogger(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}
	switch format {
	case "", "text":
		opts.Formatter = log.TextFormatter
	case "logfmt":
		opts.Formatter = log.LogfmtFormatter
		opts.TimeFormat = time.RFC3339Nano
	case "json":
		opts.Formatter = log.JSONFormatter
		opts.TimeFormat = time.RFC3339Nano
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log.NewWithOptions(w, opts), nil
}
