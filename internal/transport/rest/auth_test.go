package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenapp/lumen/internal/domain"
	"github.com/lumenapp/lumen/internal/service/auth"
)

type authServiceMock struct {
	LoginFunc func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	inputs    []auth.LoginInput
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if m.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	m.inputs = append(m.inputs, input)
	return m.LoginFunc(ctx, input)
}

func TestAuth_LoginProviders(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{"google", "apple"} {
		t.Run(provider, func(t *testing.T) {
			t.Parallel()

			svc := &authServiceMock{
				LoginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
					return &auth.AuthResult{
						AccessToken: "app-token",
						User:        map[string]any{"sub": "123", "email": "a@b.c"},
					}, nil
				},
			}
			h := NewAuthHandler(svc, slog.Default())

			req := httptest.NewRequest(http.MethodPost, "/auth/"+provider, strings.NewReader(`{"id_token":"raw"}`))
			rec := httptest.NewRecorder()
			if provider == "google" {
				h.Google(rec, req)
			} else {
				h.Apple(rec, req)
			}

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"access_token":"app-token","user":{"sub":"123","email":"a@b.c"}}`, rec.Body.String())
			require.Len(t, svc.inputs, 1)
			assert.Equal(t, auth.LoginInput{Provider: provider, IDToken: "raw"}, svc.inputs[0])
		})
	}
}

func TestAuth_LoginRejected(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
			return nil, fmt.Errorf("%w: token is expired", domain.ErrUnauthorized)
		},
	}
	h := NewAuthHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`{"id_token":"raw"}`))
	rec := httptest.NewRecorder()
	h.Google(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized: token is expired", decodeDetail(t, rec))
}

func TestAuth_MissingToken(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
			return nil, input.Validate()
		},
	}
	h := NewAuthHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/auth/apple", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Apple(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeDetail(t, rec), "id_token")
}

func TestAuth_BadJSON(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/auth/google", strings.NewReader(`nope`))
	rec := httptest.NewRecorder()
	h.Google(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
