package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/crystaldolphin/supatools/internal/config"
)

// setupLogging builds the process logger and makes it the slog default.
// Logs never go to stdout: the stdio transport owns it.
func setupLogging(lc config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel()}

	var h slog.Handler
	if strings.EqualFold(lc.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
