package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger: slog's JSON handler for "json", or a
// charmbracelet console logger behind slog for "text".
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel})), nil
	case "text":
		consoleLevel, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		console := log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Level:           consoleLevel,
		})
		return slog.New(console), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}
