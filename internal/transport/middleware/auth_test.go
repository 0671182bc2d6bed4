package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lumenapp/lumen/internal/auth"
	"github.com/lumenapp/lumen/pkg/ctxutil"
)

func acceptOnly(valid string) *tokenValidatorMock {
	return &tokenValidatorMock{
		ValidateTokenFunc: func(ctx context.Context, token string) (auth.Identity, error) {
			if token == valid {
				return auth.Identity{Provider: "google", Subject: "123"}, nil
			}
			return auth.Identity{}, errors.New("invalid token")
		},
	}
}

func TestAuth_ValidToken(t *testing.T) {
	validator := acceptOnly("valid-token")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := ctxutil.UserKeyFromCtx(r.Context())
		if !ok {
			t.Error("expected user key in context")
			return
		}
		if key != "google:123" {
			t.Errorf("expected user key google:123, got %q", key)
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := acceptOnly("valid-token")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid token")
	})

	wrapped := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"detail":"invalid token"`) {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestAuth_Anonymous(t *testing.T) {
	headers := map[string]string{
		"no header":    "",
		"basic auth":   "Basic dXNlcjpwYXNz",
		"empty bearer": "Bearer ",
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			validator := &tokenValidatorMock{
				ValidateTokenFunc: func(ctx context.Context, token string) (auth.Identity, error) {
					t.Error("ValidateToken should not be called")
					return auth.Identity{}, errors.New("should not be called")
				},
			}

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, ok := ctxutil.UserKeyFromCtx(r.Context()); ok {
					t.Error("expected no user key for anonymous request")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			Auth(validator)(handler).ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
			if len(validator.ValidateTokenCalls()) > 0 {
				t.Error("ValidateToken should not be called for anonymous request")
			}
		})
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer with token", "Bearer valid-token", "valid-token"},
		{"bearer lowercase", "bearer valid-token", "valid-token"},
		{"bearer mixed case", "BEARER valid-token", "valid-token"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
		{"bearer no space", "Bearertoken", ""},
		{"bearer empty token", "Bearer ", ""},
		{"just bearer", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			got := extractBearerToken(req)
			if got != tc.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}
