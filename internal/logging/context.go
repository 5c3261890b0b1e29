package logging

import (
	"context"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// traceIDKey is the context key for the invocation trace ID.
type traceIDKey struct{}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none has been attached. Callers never need to nil-check the result.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	return *zerolog.Ctx(ctx)
}

// ContextWithTraceID stores a trace ID in ctx for correlation across
// log events of a single CLI invocation.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or empty string.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// NewTraceID generates a ULID trace ID. ULIDs sort by creation time, which
// keeps interleaved log files greppable per invocation.
func NewTraceID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // trace IDs are not security sensitive
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// GetOrGenerateTraceID returns the trace ID already present in ctx, or a
// freshly generated one when the context carries none.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}
