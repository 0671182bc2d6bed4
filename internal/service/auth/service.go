package auth

import (
	"context"
	"log/slog"

	"github.com/lumenapp/lumen/internal/auth"
)

// idTokenVerifier validates an identity provider's ID token.
type idTokenVerifier interface {
	Provider() string
	VerifyIDToken(ctx context.Context, idToken string) (auth.Identity, error)
}

// jwtManager defines the app-token interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(id auth.Identity) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Service exchanges provider ID tokens for app access tokens.
type Service struct {
	log       *slog.Logger
	verifiers map[string]idTokenVerifier
	jwt       jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, jwt jwtManager, verifiers ...idTokenVerifier) *Service {
	m := make(map[string]idTokenVerifier, len(verifiers))
	for _, v := range verifiers {
		m[v.Provider()] = v
	}
	return &Service{
		log:       logger.With("service", "auth"),
		verifiers: m,
		jwt:       jwt,
	}
}
