package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/meltui/melt/internal/errors"
	"github.com/meltui/melt/pkg/reactive"
)

type logOptions struct {
	level   string
	json    bool
	noColor bool
}

// setupLogging installs the default slog logger. The level from melt.yaml
// applies later, in commands that load the configuration, unless
// --log-level was given.
func setupLogging(w io.Writer, opts logOptions) error {
	if opts.noColor {
		errors.DisableColors()
	}
	level, err := parseLevel(opts.level)
	if err != nil {
		return err
	}
	installLogger(w, level, opts.json)
	return nil
}

var logLevel = new(slog.LevelVar)

func installLogger(w io.Writer, level slog.Level, json bool) {
	logLevel.Set(level)
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, handlerOpts)
	} else {
		h = slog.NewTextHandler(w, handlerOpts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	reactive.SetLogger(logger)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, errors.New("M002").WithDetail("unknown log level " + s).
			WithSuggestion("Use debug, info, warn or error.")
	}
	return level, nil
}
