package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/starjumper/internal/errors"
)

// SetupLogging installs the default slog logger writing to w.
func SetupLogging(w io.Writer, cfg LoggingConfig) (*slog.Logger, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText, "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, errors.InvalidArgumentf("unknown log format %q", cfg.Format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	logger.Debug("Logger initialized", "level", level.String(), "format", cfg.Format)
	return logger, nil
}

// ParseLogLevel maps a level name to its slog level. Empty means warn.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, errors.InvalidArgumentf("unknown log level %q", level)
	}
}
