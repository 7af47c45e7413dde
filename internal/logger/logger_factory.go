package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"expense_tracker/internal/config"
)

// NewAppLogger creates a new AppLogger writing to stdout with the configured level and format.
// The underlying slog logger also becomes the process default.
func NewAppLogger(cfg config.LoggerConfig) (AppLogger, error) {
	l, err := NewAppLoggerTo(os.Stdout, cfg)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// NewAppLoggerTo is like NewAppLogger but writes to out.
func NewAppLoggerTo(out io.Writer, cfg config.LoggerConfig) (AppLogger, error) {
	level, err := toSlogLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler, err := toSlogHandler(cfg.Format, out, opts)
	if err != nil {
		return nil, fmt.Errorf("logger setup failed: %w", err)
	}

	slogLogger := slog.New(handler)
	slog.SetDefault(slogLogger)

	return NewSlogAdapter(slogLogger), nil
}

// toSlogLevel converts a config.LogLevel to a slog.Level.
func toSlogLevel(level config.LogLevel) (slog.Level, error) {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug, nil
	case config.LogLevelInfo:
		return slog.LevelInfo, nil
	case config.LogLevelWarn:
		return slog.LevelWarn, nil
	case config.LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported logger level: %s", level)
	}
}

// toSlogHandler creates a slog.Handler based on the config.LogFormat.
func toSlogHandler(format config.LogFormat, out io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(out, opts), nil
	case config.LogFormatText:
		return slog.NewTextHandler(out, opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
