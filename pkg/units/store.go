package units

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labdex/labdex/pkg/database"
)

// PGStore is the Postgres-backed Store. Alias rows are global vocabulary,
// not tenant data, so writes go through the admin pool.
type PGStore struct {
	client *database.Client
}

// NewPGStore wraps the database client.
func NewPGStore(client *database.Client) *PGStore {
	return &PGStore{client: client}
}

// NormalizeText applies the normalize_unit_text SQL helper (NFKC, case and
// whitespace folding).
func (s *PGStore) NormalizeText(ctx context.Context, raw string) (string, error) {
	var normalized stdsql.NullString
	err := s.client.AdminDB().QueryRowContext(ctx,
		`SELECT normalize_unit_text($1)`, raw).Scan(&normalized)
	if err != nil {
		return "", fmt.Errorf("normalize_unit_text: %w", err)
	}
	if !normalized.Valid {
		return "", nil
	}
	return normalized.String, nil
}

// LookupAlias resolves a normalized alias to its canonical.
func (s *PGStore) LookupAlias(ctx context.Context, normalized string) (string, bool, error) {
	var canonical string
	err := s.client.AdminDB().QueryRowContext(ctx,
		`SELECT canonical FROM unit_aliases WHERE alias = $1`, normalized).Scan(&canonical)
	if errors.Is(err, stdsql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup unit alias: %w", err)
	}
	return canonical, true, nil
}

// WithAliasLock delegates to the advisory-lock primitive.
func (s *PGStore) WithAliasLock(ctx context.Context, alias string, fn func(ctx context.Context) error) error {
	return s.client.WithAliasLock(ctx, alias, func(_ *stdsql.Conn) error {
		return fn(ctx)
	})
}

// InsertAlias records a newly learned alias.
func (s *PGStore) InsertAlias(ctx context.Context, alias, canonical, source string) error {
	_, err := s.client.AdminDB().ExecContext(ctx, `
		INSERT INTO unit_aliases (alias, canonical, source, learn_count, last_used_at)
		VALUES ($1, $2, $3, 1, now())`,
		alias, canonical, source)
	if err != nil {
		return fmt.Errorf("insert unit alias: %w", err)
	}
	return nil
}

// BumpAlias increments learn_count and refreshes last_used_at.
func (s *PGStore) BumpAlias(ctx context.Context, alias string) error {
	_, err := s.client.AdminDB().ExecContext(ctx, `
		UPDATE unit_aliases
		SET learn_count = learn_count + 1, last_used_at = now()
		WHERE alias = $1`, alias)
	if err != nil {
		return fmt.Errorf("bump unit alias: %w", err)
	}
	return nil
}

// QueueReview inserts a review row. At most one pending row exists per raw
// unit, and the result_id uniqueness absorbs duplicate submissions.
func (s *PGStore) QueueReview(ctx context.Context, review Review) error {
	_, err := s.client.AdminDB().ExecContext(ctx, `
		INSERT INTO unit_reviews
			(id, result_id, raw_unit, normalized_input, llm_suggestion,
			 confidence, issue_type, issue_details, status)
		SELECT $1, $2, $3, $4, $5, $6, $7, jsonb_build_object('details', $8::text), 'pending'
		WHERE NOT EXISTS (
			SELECT 1 FROM unit_reviews
			WHERE raw_unit = $3 AND status = 'pending'
		)
		ON CONFLICT (result_id) DO NOTHING`,
		uuid.NewString(), review.ResultID.String(), review.RawUnit,
		review.NormalizedInput, review.Suggestion, review.Confidence,
		review.IssueType, review.IssueDetails)
	if err != nil {
		return fmt.Errorf("queue unit review: %w", err)
	}
	return nil
}
