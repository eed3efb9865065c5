// Package logging provides structured logging for benchchart commands.
//
// It is a thin layer over log/slog:
//
//   - Default: text output on stderr, Info level
//   - Optional: JSON output for machine consumption
//   - Optional: a log file written alongside stderr
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug})
//	defer logger.Close()
//	logger.Info("charts rendered", "count", 2)
//
// Library packages accept a *slog.Logger; pass logger.Slog() to them.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	LevelDebug Level = iota
	// LevelInfo is for normal operational messages.
	LevelInfo
	// LevelWarn is for recoverable problems.
	LevelWarn
	// LevelError is for failed operations.
	LevelError
)

// String returns the human-readable name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a flag value such as "debug" or "WARN" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
}

// Config configures the Logger. A zero Config logs Info+ text to stderr.
type Config struct {
	// Level sets the minimum log level.
	Level Level

	// JSON switches the primary output to JSON lines.
	JSON bool

	// Output overrides the primary destination. Default: os.Stderr.
	Output io.Writer

	// LogFile additionally writes JSON logs to this path. The parent
	// directory is created when missing.
	LogFile string

	// Service is attached to every entry as the "service" attribute.
	Service string
}

// Logger wraps slog.Logger and owns any log file it opened.
type Logger struct {
	slog *slog.Logger

	mu   sync.Mutex
	file *os.File
}

// New creates a Logger from cfg. If the log file cannot be opened the
// logger falls back to the primary output and reports the failure there.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}
	var primary slog.Handler
	if cfg.JSON {
		primary = slog.NewJSONHandler(out, opts)
	} else {
		primary = slog.NewTextHandler(out, opts)
	}

	l := &Logger{}
	handler := primary
	var fileErr error
	if cfg.LogFile != "" {
		f, err := openLogFile(cfg.LogFile)
		if err != nil {
			fileErr = err
		} else {
			l.file = f
			handler = fanout{primary, slog.NewJSONHandler(f, opts)}
		}
	}

	l.slog = slog.New(handler)
	if cfg.Service != "" {
		l.slog = l.slog.With("service", cfg.Service)
	}
	if fileErr != nil {
		l.slog.Warn("file logging disabled", "path", cfg.LogFile, "error", fileErr)
	}
	return l
}

// Default returns a Logger with the zero Config.
func Default() *Logger {
	return New(Config{})
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// With returns a logger carrying additional attributes. The child shares
// the parent's log file; only the parent should be closed.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.slog.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.slog.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// Close closes the log file, if any. It is safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
