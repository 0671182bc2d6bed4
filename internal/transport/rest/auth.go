package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lumenapp/lumen/internal/domain"
	"github.com/lumenapp/lumen/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

// AuthHandler serves the sign-in endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	IDToken string `json:"id_token"`
}

type authResponse struct {
	AccessToken string         `json:"access_token"`
	User        map[string]any `json:"user"`
}

// Google handles POST /auth/google.
func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, "google")
}

// Apple handles POST /auth/apple.
func (h *AuthHandler) Apple(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, "apple")
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, provider string) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Provider: provider,
		IDToken:  req.IDToken,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: result.AccessToken,
		User:        result.User,
	})
}
