package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lumenapp/lumen/internal/domain"
)

type savedStore interface {
	List(ctx context.Context, userKey string) ([]domain.SavedPhrase, error)
	Exists(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error)
	Save(ctx context.Context, sp domain.SavedPhrase) error
	Delete(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error)
	// LockPhrase serializes read-modify-write sequences on one saved entry
	// until the surrounding transaction ends.
	LockPhrase(ctx context.Context, userKey string, phraseID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the signed-in user's saved phrases.
type Service struct {
	saved savedStore
	tx    txManager
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new library service.
func NewService(
	log *slog.Logger,
	saved savedStore,
	tx txManager,
) *Service {
	return &Service{
		saved: saved,
		tx:    tx,
		log:   log.With("service", "library"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}
