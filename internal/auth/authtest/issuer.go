// Package authtest provides a fake OpenID identity provider for tests.
package authtest

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer serves a JWKS document and signs RS256 ID tokens with its key.
type Issuer struct {
	Server *httptest.Server
	KeyID  string

	key     *rsa.PrivateKey
	fetches atomic.Int32
}

// NewIssuer starts a JWKS server that is closed when the test ends.
func NewIssuer(t *testing.T) *Issuer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	iss := &Issuer{KeyID: "test-kid", key: key}
	iss.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		iss.fetches.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": iss.KeyID,
				"alg": "RS256",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes()),
			}},
		})
	}))
	t.Cleanup(iss.Server.Close)
	return iss
}

// URL is the JWKS endpoint.
func (i *Issuer) URL() string { return i.Server.URL }

// Fetches reports how many times the JWKS document was served.
func (i *Issuer) Fetches() int { return int(i.fetches.Load()) }

// Sign returns an RS256 token over claims with the issuer's kid.
func (i *Issuer) Sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	return i.SignWithKID(t, i.KeyID, claims)
}

// SignWithKID signs with an arbitrary kid header.
func (i *Issuer) SignWithKID(t *testing.T, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(i.key)
	if err != nil {
		t.Fatalf("sign id token: %v", err)
	}
	return signed
}
