package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/stash-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig, tags every record
// with the service name and build version, and installs it as slog's default.
//
// "json" is meant for production; anything else yields text with source locations.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(
		slog.String("app", "stash-api"),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)

	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: true,
	})
}

// parseLevel accepts slog's level names in any case; unknown values mean info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
