package ctxutil

import (
	"context"
	"testing"
)

func TestWithUserKey_And_UserKeyFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithUserKey(context.Background(), "google:123")

	got, ok := UserKeyFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for a set key")
	}
	if got != "google:123" {
		t.Fatalf("expected google:123, got %q", got)
	}
}

func TestUserKeyFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := UserKeyFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty key, got %q", got)
	}
}

func TestUserKeyFromCtx_Blank(t *testing.T) {
	t.Parallel()

	ctx := WithUserKey(context.Background(), "  ")

	if _, ok := UserKeyFromCtx(ctx); ok {
		t.Fatal("expected ok=false for blank key")
	}
}

func TestUserKeyFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("user_key"), 42)

	if _, ok := UserKeyFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
