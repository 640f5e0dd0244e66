package logs

import (
	"context"
	"log/slog"
)

type featureKey struct{}

// WithFeature tags records logged with the returned context by the editor
// feature being served.
func WithFeature(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, featureKey{}, name)
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(featureKey{}).(string); ok {
		record.Add("feature", v)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}
