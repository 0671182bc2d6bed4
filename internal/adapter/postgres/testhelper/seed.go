package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumenapp/lumen/internal/domain"
)

// UserKey returns a user key that no other test shares.
func UserKey() string {
	return "test:" + uuid.NewString()
}

// SeedSavedPhrase inserts a saved phrase row directly and returns it.
func SeedSavedPhrase(t *testing.T, pool *pgxpool.Pool, userKey, text string, savedAt time.Time) domain.SavedPhrase {
	t.Helper()

	phrase, err := domain.NewPhrase(text, text+" (pt)", domain.DifficultyIntermediate, "Everyday")
	if err != nil {
		t.Fatalf("SeedSavedPhrase: build phrase: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO saved_phrases (user_key, phrase_id, text, translation, difficulty, category, saved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		userKey, phrase.ID, phrase.Text, phrase.Translation, phrase.Difficulty.String(), phrase.Category, savedAt,
	)
	if err != nil {
		t.Fatalf("SeedSavedPhrase: insert: %v", err)
	}

	return domain.SavedPhrase{UserKey: userKey, Phrase: phrase, SavedAt: savedAt}
}
