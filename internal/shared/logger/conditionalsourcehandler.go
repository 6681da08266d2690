package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// conditionalSourceHandler decorates records at or above a threshold level
// with their source location. The wrapped handler must run with
// AddSource: false; the location is derived from the record's own PC, so it
// points at the real call site regardless of wrapper depth.
type conditionalSourceHandler struct {
	handler  slog.Handler
	minLevel slog.Level
}

// NewConditionalSourceHandler shows source location for records at minLevel
// and above.
func NewConditionalSourceHandler(handler slog.Handler, minLevel slog.Level) slog.Handler {
	return &conditionalSourceHandler{handler: handler, minLevel: minLevel}
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}

	return h.handler.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithAttrs(attrs), minLevel: h.minLevel}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{handler: h.handler.WithGroup(name), minLevel: h.minLevel}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
