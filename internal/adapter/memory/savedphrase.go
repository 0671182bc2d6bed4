// Package memory holds process-local stores used when no database is
// configured and by the CLI.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lumenapp/lumen/internal/domain"
)

// SavedPhrases is an in-memory saved-phrase store with the same contract as
// the PostgreSQL repository. Safe for concurrent use.
type SavedPhrases struct {
	mu    sync.RWMutex
	users map[string]map[uuid.UUID]domain.SavedPhrase
}

// NewSavedPhrases creates an empty store.
func NewSavedPhrases() *SavedPhrases {
	return &SavedPhrases{users: make(map[string]map[uuid.UUID]domain.SavedPhrase)}
}

// List returns a user's saved phrases, most recently saved first.
func (s *SavedPhrases) List(ctx context.Context, userKey string) ([]domain.SavedPhrase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := lo.Values(s.users[userKey])
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.SavedPhrase) int {
		if c := b.SavedAt.Compare(a.SavedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Phrase.ID.String(), b.Phrase.ID.String())
	})
	return out, nil
}

// Exists reports whether the phrase is in the user's saved set.
func (s *SavedPhrases) Exists(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userKey][phraseID]
	return ok, nil
}

// Save adds a phrase. Saving an already saved phrase keeps the original entry.
func (s *SavedPhrases) Save(ctx context.Context, sp domain.SavedPhrase) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.users[sp.UserKey]
	if !ok {
		set = make(map[uuid.UUID]domain.SavedPhrase)
		s.users[sp.UserKey] = set
	}
	if _, exists := set[sp.Phrase.ID]; !exists {
		set[sp.Phrase.ID] = sp
	}
	return nil
}

// Delete removes a phrase and reports whether it was present.
func (s *SavedPhrases) Delete(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.users[userKey]
	if _, ok := set[phraseID]; !ok {
		return false, nil
	}
	delete(set, phraseID)
	if len(set) == 0 {
		delete(s.users, userKey)
	}
	return true, nil
}

// LockPhrase is a no-op beyond the ctx check: TxManager already serializes
// every transaction against the store.
func (s *SavedPhrases) LockPhrase(ctx context.Context, _ string, _ uuid.UUID) error {
	return ctx.Err()
}

// TxManager serializes callbacks so read-modify-write sequences against the
// in-memory stores are atomic with respect to each other. Like the postgres
// manager, a nested call with the callback's ctx joins the outer one.
type TxManager struct {
	mu sync.Mutex
}

type txKey struct{}

// NewTxManager creates a TxManager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTx runs fn while holding the manager's lock.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if owner, ok := ctx.Value(txKey{}).(*TxManager); ok && owner == m {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, m))
}
