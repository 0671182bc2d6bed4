package auth

import (
	"context"
	"sync"

	"github.com/lumenapp/lumen/internal/auth"
)

var (
	_ jwtManager      = &jwtManagerMock{}
	_ idTokenVerifier = &verifierMock{}
)

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(id auth.Identity) (string, error)
	ValidateAccessTokenFunc func(token string) (auth.Identity, error)

	lock                sync.RWMutex
	generateAccessCalls []auth.Identity
}

func (mock *jwtManagerMock) GenerateAccessToken(id auth.Identity) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.generateAccessCalls = append(mock.generateAccessCalls, id)
	mock.lock.Unlock()
	return mock.GenerateAccessTokenFunc(id)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []auth.Identity {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.generateAccessCalls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (auth.Identity, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	return mock.ValidateAccessTokenFunc(token)
}

type verifierMock struct {
	ProviderName      string
	VerifyIDTokenFunc func(ctx context.Context, idToken string) (auth.Identity, error)

	lock  sync.RWMutex
	calls []string
}

func (mock *verifierMock) Provider() string { return mock.ProviderName }

func (mock *verifierMock) VerifyIDToken(ctx context.Context, idToken string) (auth.Identity, error) {
	if mock.VerifyIDTokenFunc == nil {
		panic("verifierMock.VerifyIDTokenFunc: method is nil but idTokenVerifier.VerifyIDToken was just called")
	}
	mock.lock.Lock()
	mock.calls = append(mock.calls, idToken)
	mock.lock.Unlock()
	return mock.VerifyIDTokenFunc(ctx, idToken)
}

func (mock *verifierMock) VerifyIDTokenCalls() []string {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls
}
