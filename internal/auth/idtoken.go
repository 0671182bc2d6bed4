package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotConfigured is returned when a sign-in provider has no client id.
var ErrNotConfigured = errors.New("provider not configured")

// IDTokenConfig describes how to verify one provider's ID tokens.
type IDTokenConfig struct {
	Provider string
	Audience string
	Issuers  []string
	Leeway   time.Duration
}

// VerifyIDToken checks an RS256 ID token against keys and cfg and returns the
// identity it asserts.
func VerifyIDToken(ctx context.Context, keys *KeySet, cfg IDTokenConfig, rawToken string) (Identity, error) {
	if cfg.Audience == "" {
		return Identity{}, fmt.Errorf("%s: %w", cfg.Provider, ErrNotConfigured)
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, keys.Keyfunc(ctx),
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(cfg.Audience),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid %s ID token: %w", cfg.Provider, err)
	}

	iss, _ := claims.GetIssuer()
	if !slices.Contains(cfg.Issuers, iss) {
		return Identity{}, fmt.Errorf("invalid %s token issuer %q", cfg.Provider, iss)
	}

	sub, _ := claims.GetSubject()
	if sub == "" {
		return Identity{}, fmt.Errorf("invalid %s ID token: missing subject", cfg.Provider)
	}

	email, _ := claims["email"].(string)
	return Identity{
		Provider: cfg.Provider,
		Subject:  sub,
		Email:    email,
		Claims:   claims,
	}, nil
}
