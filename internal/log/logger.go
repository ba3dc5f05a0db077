// Package log configures structured logging for commentary.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents the log output format.
type Format string

const (
	// FormatText outputs human-readable key=value lines.
	FormatText Format = "text"
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = "json"
)

// Standard field keys.
const (
	ComponentKey = "component"
	BufferKey    = "buffer"
	LanguageKey  = "language"
	PathKey      = "path"
)

// Config holds the logging configuration.
type Config struct {
	// Level sets the minimum level (debug, info, warn, error).
	// Default: warn
	Level string

	// Format sets the output format (text, json).
	// Default: text
	Format Format

	// Output is the writer for log output.
	// Default: os.Stderr
	Output io.Writer

	// AddSource adds source file and line information.
	AddSource bool
}

// DefaultConfig returns the CLI defaults: warnings and errors as text on
// stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:  "warn",
		Format: FormatText,
		Output: os.Stderr,
	}
}

// FromEnv creates a Config from environment variables:
//   - COMMENTARY_DEBUG: true/1 enables debug level and source locations
//   - COMMENTARY_LOG_LEVEL: debug, info, warn, error
//   - COMMENTARY_LOG_FORMAT: text, json
func FromEnv() *Config {
	cfg := DefaultConfig()

	if debug := os.Getenv("COMMENTARY_DEBUG"); debug == "true" || debug == "1" {
		cfg.Level = "debug"
		cfg.AddSource = true
	} else if level := os.Getenv("COMMENTARY_LOG_LEVEL"); level != "" {
		cfg.Level = strings.ToLower(level)
	}

	if format := os.Getenv("COMMENTARY_LOG_FORMAT"); format != "" {
		cfg.Format = Format(strings.ToLower(format))
	}
	return cfg
}

// New creates a logger from cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

// ParseLevel converts a level name to slog.Level. Unknown names map to
// info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(ComponentKey, component)
}

// Error creates an error attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
