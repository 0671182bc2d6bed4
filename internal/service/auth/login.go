package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lumenapp/lumen/internal/auth"
	"github.com/lumenapp/lumen/internal/domain"
)

// Login verifies an ID token with its provider and issues an app access token.
// Any verification failure is reported as domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	verifier, ok := s.verifiers[input.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported provider %q", domain.ErrUnauthorized, input.Provider)
	}

	identity, err := verifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		s.log.WarnContext(ctx, "login rejected",
			slog.String("provider", input.Provider),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	token, err := s.jwt.GenerateAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("provider", identity.Provider),
		slog.String("sub", identity.Subject))

	user := identity.Claims
	if user == nil {
		user = map[string]any{"sub": identity.Subject}
	}

	return &AuthResult{AccessToken: token, User: user}, nil
}

// ValidateToken checks an app access token and returns the identity it carries.
func (s *Service) ValidateToken(ctx context.Context, token string) (auth.Identity, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", slog.String("error", err.Error()))
		return auth.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return id, nil
}
