package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger is the structured logging contract used across techconsult. Fields
// are key/value pairs. Implementations attach the correlation ID found in ctx
// to every entry. Common keys:
//   - correlation_id (one per CLI invocation)
//   - component (shell, request, theme, submission, ...)
//   - route, theme, reference
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context, or "" when none
// was set.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID returns a fresh UUIDv4. Call it once per command.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
