// Package savedphrase implements the saved-phrase store using PostgreSQL.
package savedphrase

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lumenapp/lumen/internal/adapter/postgres"
	"github.com/lumenapp/lumen/internal/domain"
)

const table = "saved_phrases"

var columns = []string{
	"phrase_id", "text", "translation", "difficulty", "category", "example", "audio_url", "saved_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides saved-phrase persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved-phrase repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns a user's saved phrases, most recently saved first.
func (r *Repo) List(ctx context.Context, userKey string) ([]domain.SavedPhrase, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_key": userKey}).
		OrderBy("saved_at DESC", "phrase_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "saved_phrase", userKey)
	}

	saved, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SavedPhrase, error) {
		return scanSaved(row, userKey)
	})
	if err != nil {
		return nil, postgres.MapError(err, "saved_phrase", userKey)
	}

	return saved, nil
}

// Exists reports whether the phrase is in the user's saved set.
func (r *Repo) Exists(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error) {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{"user_key": userKey, "phrase_id": phraseID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "saved_phrase", phraseID.String())
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save adds a phrase to the user's saved set. Saving an already saved phrase
// is a no-op and keeps the original saved_at.
func (r *Repo) Save(ctx context.Context, sp domain.SavedPhrase) error {
	p := sp.Phrase
	query, args, err := psql.Insert(table).
		Columns(append([]string{"user_key"}, columns...)...).
		Values(sp.UserKey, p.ID, p.Text, p.Translation, p.Difficulty.String(), p.Category, p.Example, p.AudioURL, sp.SavedAt).
		Suffix("ON CONFLICT (user_key, phrase_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "saved_phrase", p.ID.String())
	}
	return nil
}

// Delete removes a phrase from the user's saved set and reports whether a
// row was removed.
func (r *Repo) Delete(ctx context.Context, userKey string, phraseID uuid.UUID) (bool, error) {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"user_key": userKey, "phrase_id": phraseID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "saved_phrase", phraseID.String())
	}
	return tag.RowsAffected() > 0, nil
}

// LockPhrase takes a transaction-scoped advisory lock on the (user, phrase)
// pair. Inside RunInTx it blocks concurrent holders of the same pair until the
// transaction ends; outside a transaction it is released immediately.
func (r *Repo) LockPhrase(ctx context.Context, userKey string, phraseID uuid.UUID) error {
	const query = "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))"

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, userKey+":"+phraseID.String()); err != nil {
		return postgres.MapError(err, "saved_phrase", phraseID.String())
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanSaved(row pgx.CollectableRow, userKey string) (domain.SavedPhrase, error) {
	var (
		sp         domain.SavedPhrase
		difficulty string
	)
	err := row.Scan(
		&sp.Phrase.ID,
		&sp.Phrase.Text,
		&sp.Phrase.Translation,
		&difficulty,
		&sp.Phrase.Category,
		&sp.Phrase.Example,
		&sp.Phrase.AudioURL,
		&sp.SavedAt,
	)
	if err != nil {
		return domain.SavedPhrase{}, err
	}
	sp.UserKey = userKey
	sp.Phrase.Difficulty = domain.DifficultyOrDefault(difficulty)
	return sp, nil
}
