package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	userKeyKey   ctxKey = "user_key"
	requestIDKey ctxKey = "request_id"
)

// WithUserKey stores the authenticated user key ("<provider>:<sub>") in the context.
func WithUserKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, userKeyKey, key)
}

// UserKeyFromCtx extracts the user key from the context.
// Returns "" and false if the value is missing, blank, or of the wrong type.
func UserKeyFromCtx(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(userKeyKey).(string)
	if !ok || strings.TrimSpace(key) == "" {
		return "", false
	}
	return key, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
