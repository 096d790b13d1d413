// Package logging builds the rotating JSON file logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Path  string
	Level string
}

// FileLogger owns the rotating log file. Close flushes and releases it.
type FileLogger struct {
	Logger *slog.Logger
	Close  func() error
	Path   string
}

func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// NewFileLogger writes JSON records to opts.Path, rotating at 10 MB. An empty
// path disables logging.
func NewFileLogger(opts Options) (FileLogger, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return FileLogger{Logger: Nop(), Close: func() error { return nil }}, nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return FileLogger{Logger: Nop(), Close: func() error { return nil }}, err
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o700); err != nil {
		return FileLogger{Logger: Nop(), Close: func() error { return nil }}, fmt.Errorf("create log dir: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level})
	return FileLogger{
		Logger: slog.New(handler),
		Close:  sink.Close,
		Path:   opts.Path,
	}, nil
}

func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}
