package internal

import (
	"context"
	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "requestID"

func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID tags ctx with a fresh id unless it already carries one,
// so nested handlers share the id of the outer request.
func WithRequestID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(requestIDKey).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, GenerateRequestID())
}

// GetRequestID is "" for contexts not passed through WithRequestID.
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok {
		return reqID
	}
	return ""
}
