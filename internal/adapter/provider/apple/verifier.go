// Package apple verifies Sign in with Apple identity tokens.
package apple

import (
	"context"
	"log/slog"

	"github.com/lumenapp/lumen/internal/auth"
)

// Provider is the identity provider name embedded in app tokens.
const Provider = "apple"

// Issuer is the iss claim on every Apple identity token.
const Issuer = "https://appleid.apple.com"

// Made variable for testing purposes
var keysURL = "https://appleid.apple.com/auth/keys"

// Verifier validates Apple identity tokens against Apple's JWKS.
type Verifier struct {
	clientID string
	keys     *auth.KeySet
	log      *slog.Logger
}

// NewVerifier creates an Apple verifier for clientID (the app's bundle or services id).
func NewVerifier(clientID string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID: clientID,
		keys:     auth.NewKeySet(keysURL),
		log:      logger.With("adapter", "apple_signin"),
	}
}

// Provider returns the provider name.
func (v *Verifier) Provider() string { return Provider }

// VerifyIDToken checks an RS256 identity token's signature, audience, issuer and expiry.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (auth.Identity, error) {
	id, err := auth.VerifyIDToken(ctx, v.keys, auth.IDTokenConfig{
		Provider: Provider,
		Audience: v.clientID,
		Issuers:  []string{Issuer},
	}, idToken)
	if err != nil {
		v.log.WarnContext(ctx, "apple id token rejected", slog.String("error", err.Error()))
		return auth.Identity{}, err
	}

	v.log.DebugContext(ctx, "apple sign-in success", slog.String("sub", id.Subject))
	return id, nil
}
