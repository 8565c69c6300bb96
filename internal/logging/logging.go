// Package logging provides the structured logger used by bbc commands.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/samber/oops"
)

// appHandler wraps a slog.Handler to stamp every record with the program
// name and version.
type appHandler struct {
	handler slog.Handler
	version string
}

// Handle adds the app attributes to the log record.
func (h *appHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(
		slog.String("app", "bbc"),
		slog.String("version", h.version),
	)
	return h.handler.Handle(ctx, r)
}

// Enabled returns true if the level is enabled.
func (h *appHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs returns a new handler with the given attributes.
func (h *appHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &appHandler{handler: h.handler.WithAttrs(attrs), version: h.version}
}

// WithGroup returns a new handler with the given group.
func (h *appHandler) WithGroup(name string) slog.Handler {
	return &appHandler{handler: h.handler.WithGroup(name), version: h.version}
}

// Setup creates a configured slog.Logger.
// format: "json" or "text" (defaults to "text" if empty).
// verbose lowers the level from warn to debug.
// If w is nil, writes to os.Stderr.
func Setup(version, format string, verbose bool, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var base slog.Handler
	if format == "json" {
		base = slog.NewJSONHandler(w, opts)
	} else {
		base = slog.NewTextHandler(w, opts)
	}

	return slog.New(&appHandler{handler: base, version: version})
}

// LogError logs err at error level. For oops errors the code and context are
// logged as separate attributes.
func LogError(logger *slog.Logger, msg string, err error) {
	if oopsErr, ok := oops.AsOops(err); ok {
		attrs := []any{"error", oopsErr.Error()}
		if code := oopsErr.Code(); code != nil {
			attrs = append(attrs, "code", code)
		}
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			attrs = append(attrs, "context", ctx)
		}
		logger.Error(msg, attrs...)
		return
	}
	logger.Error(msg, "error", err)
}
