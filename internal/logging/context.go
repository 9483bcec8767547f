package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every event logged through the returned context with
// the subsystem name ("navigation", "recents", ...).
func WithComponent(ctx context.Context, component string) context.Context {
	child := FromContext(ctx).With().Str("component", component).Logger()
	return WithContext(ctx, child)
}

// WithLocation tags events with the location being opened or recorded.
func WithLocation(ctx context.Context, location string) context.Context {
	child := FromContext(ctx).With().Str("location", location).Logger()
	return WithContext(ctx, child)
}
