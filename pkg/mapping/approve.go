package mapping

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ApproveResult reports what one approval changed. Backfilled counts
// results mapped by trigram against the new aliases; Linked counts results
// mapped through their match review. The two paths are reported separately.
type ApproveResult struct {
	AnalyteID       string
	Code            string
	AliasesInserted int
	Backfilled      int
	Linked          int
	ReviewsResolved int
}

// ErrPendingNotFound is returned when no pending analyte holds the code.
var ErrPendingNotFound = errors.New("pending analyte not found")

// ApproveAnalyte promotes a pending analyte in one transaction: insert the
// analyte, learn its aliases, backfill unmapped results by trigram, then
// resolve every match review that referenced the pending code. A review
// whose result was already mapped by the backfill still resolves; its
// resolved_via records which path won.
func (s *PGStore) ApproveAnalyte(ctx context.Context, proposedCode, category string) (*ApproveResult, error) {
	tx, err := s.client.AdminDB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin approve tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		pendingID, name, unit string
		variationsJSON        []byte
	)
	err = tx.QueryRowContext(ctx, `
		SELECT id, proposed_name, unit, COALESCE(parameter_variations, '[]'::jsonb)
		FROM pending_analytes
		WHERE proposed_code = $1 AND status = 'pending'
		FOR UPDATE`, proposedCode).
		Scan(&pendingID, &name, &unit, &variationsJSON)
	if errors.Is(err, stdsql.ErrNoRows) {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load pending analyte: %w", err)
	}

	var variations []string
	if err := json.Unmarshal(variationsJSON, &variations); err != nil {
		return nil, fmt.Errorf("decode parameter variations: %w", err)
	}

	res := &ApproveResult{Code: proposedCode, AnalyteID: uuid.NewString()}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO analytes (id, code, name, canonical_unit, category)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
		res.AnalyteID, proposedCode, name, unit, category)
	if err != nil {
		return nil, fmt.Errorf("insert analyte: %w", err)
	}

	for _, variation := range variations {
		alias := NormalizeLabel(variation)
		if alias == "" {
			continue
		}
		tag, err := tx.ExecContext(ctx, `
			INSERT INTO analyte_aliases (id, analyte_id, alias, display, source)
			VALUES ($1, $2, $3, $4, 'evidence_auto')
			ON CONFLICT (analyte_id, alias) DO NOTHING`,
			uuid.NewString(), res.AnalyteID, alias, variation)
		if err != nil {
			return nil, fmt.Errorf("insert alias %q: %w", alias, err)
		}
		if n, _ := tag.RowsAffected(); n > 0 {
			res.AliasesInserted++
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE pending_analytes SET status = 'approved', updated_at = now()
		WHERE id = $1`, pendingID); err != nil {
		return nil, fmt.Errorf("mark pending approved: %w", err)
	}

	// Backfill unmapped results whose parameter name trigram-matches one of
	// the new aliases.
	tag, err := tx.ExecContext(ctx, `
		UPDATE lab_results lr
		SET analyte_id = $1,
		    mapping_confidence = sub.sim,
		    mapping_source = $2,
		    mapped_at = now()
		FROM (
			SELECT lr2.id, MAX(similarity(aa.alias, lower(lr2.parameter_name))) AS sim
			FROM lab_results lr2
			JOIN analyte_aliases aa ON aa.analyte_id = $1
			WHERE lr2.analyte_id IS NULL
			  AND similarity(aa.alias, lower(lr2.parameter_name)) >= $3
			GROUP BY lr2.id
		) sub
		WHERE lr.id = sub.id`,
		res.AnalyteID, SourceManualApproved, 0.70)
	if err != nil {
		return nil, fmt.Errorf("backfill results: %w", err)
	}
	if n, _ := tag.RowsAffected(); n > 0 {
		res.Backfilled = int(n)
	}

	// Map results still open behind a review that referenced this code.
	tag, err = tx.ExecContext(ctx, `
		UPDATE lab_results lr
		SET analyte_id = $1,
		    mapping_confidence = 1.0,
		    mapping_source = $2,
		    mapped_at = now()
		FROM match_reviews mr
		WHERE mr.pending_code = $3
		  AND mr.status = 'pending'
		  AND lr.id = mr.result_id
		  AND lr.analyte_id IS NULL`,
		res.AnalyteID, SourceManualApproved, proposedCode)
	if err != nil {
		return nil, fmt.Errorf("link reviewed results: %w", err)
	}
	if n, _ := tag.RowsAffected(); n > 0 {
		res.Linked = int(n)
	}

	// Resolve every review referencing the code, including those whose
	// result the backfill already mapped.
	tag, err = tx.ExecContext(ctx, `
		UPDATE match_reviews mr
		SET status = 'resolved',
		    resolved_at = now(),
		    resolved_via = CASE
				WHEN lr.mapping_source = $2 AND lr.mapping_confidence = 1.0
					THEN 'match_review_link'
				ELSE 'alias_backfill'
			END
		FROM lab_results lr
		WHERE mr.pending_code = $1
		  AND mr.status = 'pending'
		  AND lr.id = mr.result_id`,
		proposedCode, SourceManualApproved)
	if err != nil {
		return nil, fmt.Errorf("resolve match reviews: %w", err)
	}
	if n, _ := tag.RowsAffected(); n > 0 {
		res.ReviewsResolved = int(n)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit approve tx: %w", err)
	}

	slog.Info("Pending analyte approved",
		"code", proposedCode,
		"aliases", res.AliasesInserted,
		"backfilled", res.Backfilled,
		"linked", res.Linked,
		"reviews_resolved", res.ReviewsResolved)
	return res, nil
}
