package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// keyWait bounds how long one verification waits on the JWKS client. A
// token with an unknown kid may trigger at most one refetch per rate-limit
// window; later ones fail within this bound instead of queueing.
const keyWait = 3 * time.Second

// KeySet resolves the signing keys an identity provider publishes as a JWKS
// document. The document is loaded on first use and refreshed in the
// background; refetches for unknown key ids are rate limited.
type KeySet struct {
	url string

	once sync.Once
	kf   keyfunc.Keyfunc
	err  error

	ctx    context.Context
	cancel context.CancelFunc
}

// NewKeySet creates a key set for the JWKS document at url. Nothing is
// fetched until the first token is verified.
func NewKeySet(url string) *KeySet {
	ctx, cancel := context.WithCancel(context.Background())
	return &KeySet{url: url, ctx: ctx, cancel: cancel}
}

func (s *KeySet) load() (keyfunc.Keyfunc, error) {
	s.once.Do(func() {
		s.kf, s.err = keyfunc.NewDefaultCtx(s.ctx, []string{s.url})
	})
	return s.kf, s.err
}

// Keyfunc returns a jwt.Keyfunc that looks keys up under ctx.
func (s *KeySet) Keyfunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		kf, err := s.load()
		if err != nil {
			return nil, fmt.Errorf("jwks %s: %w", s.url, err)
		}
		ctx, cancel := context.WithTimeout(ctx, keyWait)
		defer cancel()
		return kf.KeyfuncCtx(ctx)(token)
	}
}

// Close stops the background refresh.
func (s *KeySet) Close() { s.cancel() }
