package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lumenapp/lumen/internal/domain"
	"github.com/lumenapp/lumen/pkg/ctxutil"
)

// List returns the user's saved phrases, most recently saved first.
func (s *Service) List(ctx context.Context) ([]domain.SavedPhrase, error) {
	userKey, ok := ctxutil.UserKeyFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	saved, err := s.saved.List(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("list saved phrases: %w", err)
	}
	return saved, nil
}

// IsSaved reports whether the phrase is in the user's saved set.
func (s *Service) IsSaved(ctx context.Context, phraseID uuid.UUID) (bool, error) {
	userKey, ok := ctxutil.UserKeyFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	exists, err := s.saved.Exists(ctx, userKey, phraseID)
	if err != nil {
		return false, fmt.Errorf("check saved phrase: %w", err)
	}
	return exists, nil
}

// Save adds a phrase to the user's saved set. Saving twice is a no-op.
func (s *Service) Save(ctx context.Context, phrase domain.Phrase) error {
	userKey, ok := ctxutil.UserKeyFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := validatePhrase(phrase); err != nil {
		return err
	}

	if err := s.saved.Save(ctx, s.entry(userKey, phrase)); err != nil {
		return fmt.Errorf("save phrase: %w", err)
	}

	s.log.InfoContext(ctx, "phrase saved",
		slog.String("user_key", userKey),
		slog.String("phrase_id", phrase.ID.String()),
	)
	return nil
}

// Unsave removes a phrase from the user's saved set.
// Returns domain.ErrNotFound if it was not saved.
func (s *Service) Unsave(ctx context.Context, phraseID uuid.UUID) error {
	userKey, ok := ctxutil.UserKeyFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	removed, err := s.saved.Delete(ctx, userKey, phraseID)
	if err != nil {
		return fmt.Errorf("delete saved phrase: %w", err)
	}
	if !removed {
		return fmt.Errorf("saved phrase %s: %w", phraseID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "phrase unsaved",
		slog.String("user_key", userKey),
		slog.String("phrase_id", phraseID.String()),
	)
	return nil
}

// Toggle flips the saved state of a phrase and returns the new state.
func (s *Service) Toggle(ctx context.Context, phrase domain.Phrase) (bool, error) {
	userKey, ok := ctxutil.UserKeyFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	if err := validatePhrase(phrase); err != nil {
		return false, err
	}

	var saved bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.saved.LockPhrase(txCtx, userKey, phrase.ID); err != nil {
			return fmt.Errorf("lock saved phrase: %w", err)
		}
		exists, err := s.saved.Exists(txCtx, userKey, phrase.ID)
		if err != nil {
			return fmt.Errorf("check saved phrase: %w", err)
		}
		if exists {
			if _, err := s.saved.Delete(txCtx, userKey, phrase.ID); err != nil {
				return fmt.Errorf("delete saved phrase: %w", err)
			}
			return nil
		}
		if err := s.saved.Save(txCtx, s.entry(userKey, phrase)); err != nil {
			return fmt.Errorf("save phrase: %w", err)
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "phrase toggled",
		slog.String("user_key", userKey),
		slog.String("phrase_id", phrase.ID.String()),
		slog.Bool("saved", saved),
	)
	return saved, nil
}

func (s *Service) entry(userKey string, phrase domain.Phrase) domain.SavedPhrase {
	return domain.SavedPhrase{
		UserKey: userKey,
		Phrase:  phrase,
		SavedAt: s.now(),
	}
}
