package utils

import "context"

// ctxKey is unexported to prevent collisions.
type ctxKey string

// CtxKeyCorrelationID stores the per-request correlation id.
const CtxKeyCorrelationID ctxKey = "correlationID"

// HeaderRequestID carries the correlation id in and out of the service.
const HeaderRequestID = "X-Request-ID"

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyCorrelationID, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return "N/A"
	}
	if id, ok := ctx.Value(CtxKeyCorrelationID).(string); ok && id != "" {
		return id
	}
	return "N/A"
}
