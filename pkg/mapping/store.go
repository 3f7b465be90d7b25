package mapping

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labdex/labdex/pkg/database"
)

// Store is the persistence surface the mapper needs. Tests inject fakes;
// PGStore is the production implementation.
type Store interface {
	// ExactAlias returns the analyte for an exact normalized-alias hit.
	ExactAlias(ctx context.Context, labelNorm string) (*Candidate, error)
	// FuzzyCandidates returns trigram hits ordered by similarity.
	FuzzyCandidates(ctx context.Context, labelNorm string, floor float64, limit int) ([]Candidate, error)
	// AnalyteSchema lists approved and pending analytes for the prompt.
	AnalyteSchema(ctx context.Context) ([]SchemaEntry, error)
	// CategoriesForReport lists categories of already-mapped rows.
	CategoriesForReport(ctx context.Context, reportID string) ([]string, error)
	// AnalyteByCode resolves a code against approved analytes and, failing
	// that, reports whether a pending analyte holds it.
	AnalyteByCode(ctx context.Context, code string) (approved *Candidate, pending bool, err error)
	// WriteMapping annotates a lab result with its resolved analyte.
	WriteMapping(ctx context.Context, resultID, analyteID string, confidence float64, source string) error
	// InsertAlias learns a new alias; duplicate (analyte, alias) is a no-op.
	InsertAlias(ctx context.Context, analyteID, alias, display, source string, confidence float64) error
	// QueueMatchReview inserts a review row; one per result.
	QueueMatchReview(ctx context.Context, review MatchReview) error
	// UpsertPending inserts or merges a pending-analyte proposal.
	UpsertPending(ctx context.Context, p PendingProposal) error
}

// PGStore implements Store on the shared catalog tables. The catalog is not
// tenant data, so access goes through the admin pool; the lab_results write
// is keyed by primary key and carries no cross-tenant risk.
type PGStore struct {
	client *database.Client
}

// NewPGStore wraps the database client.
func NewPGStore(client *database.Client) *PGStore {
	return &PGStore{client: client}
}

func (s *PGStore) ExactAlias(ctx context.Context, labelNorm string) (*Candidate, error) {
	var c Candidate
	err := s.client.AdminDB().QueryRowContext(ctx, `
		SELECT a.id, a.code, a.name, aa.alias
		FROM analyte_aliases aa
		JOIN analytes a ON a.id = aa.analyte_id
		WHERE aa.alias = $1
		LIMIT 1`, labelNorm).Scan(&c.AnalyteID, &c.Code, &c.Name, &c.Alias)
	if errors.Is(err, stdsql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("exact alias lookup: %w", err)
	}
	c.Similarity = 1.0
	return &c, nil
}

func (s *PGStore) FuzzyCandidates(ctx context.Context, labelNorm string, floor float64, limit int) ([]Candidate, error) {
	matches, err := database.SimilarAnalyteAliases(ctx, s.client.AdminDB(), labelNorm, floor, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		out = append(out, Candidate{
			AnalyteID:  m.AnalyteID,
			Code:       m.Code,
			Name:       m.Name,
			Alias:      m.Alias,
			Similarity: m.Similarity,
		})
	}
	return out, nil
}

func (s *PGStore) AnalyteSchema(ctx context.Context) ([]SchemaEntry, error) {
	rows, err := s.client.AdminDB().QueryContext(ctx, `
		SELECT code, name, canonical_unit, COALESCE(category, ''), false
		FROM analytes
		UNION ALL
		SELECT proposed_code, proposed_name, unit, COALESCE(category, ''), true
		FROM pending_analytes WHERE status = 'pending'
		ORDER BY 5, 1`)
	if err != nil {
		return nil, fmt.Errorf("load analyte schema: %w", err)
	}
	defer rows.Close()

	var out []SchemaEntry
	for rows.Next() {
		var e SchemaEntry
		if err := rows.Scan(&e.Code, &e.Name, &e.Unit, &e.Category, &e.Pending); err != nil {
			return nil, fmt.Errorf("scan analyte schema row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PGStore) CategoriesForReport(ctx context.Context, reportID string) ([]string, error) {
	rows, err := s.client.AdminDB().QueryContext(ctx, `
		SELECT DISTINCT a.category
		FROM lab_results lr
		JOIN analytes a ON a.id = lr.analyte_id
		WHERE lr.report_id = $1 AND a.category IS NOT NULL
		ORDER BY a.category`, reportID)
	if err != nil {
		return nil, fmt.Errorf("report categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PGStore) AnalyteByCode(ctx context.Context, code string) (*Candidate, bool, error) {
	var c Candidate
	err := s.client.AdminDB().QueryRowContext(ctx,
		`SELECT id, code, name FROM analytes WHERE code = $1`, code).
		Scan(&c.AnalyteID, &c.Code, &c.Name)
	if err == nil {
		return &c, false, nil
	}
	if !errors.Is(err, stdsql.ErrNoRows) {
		return nil, false, fmt.Errorf("analyte by code: %w", err)
	}

	var pendingID string
	err = s.client.AdminDB().QueryRowContext(ctx,
		`SELECT id FROM pending_analytes WHERE proposed_code = $1 AND status = 'pending'`, code).
		Scan(&pendingID)
	if errors.Is(err, stdsql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("pending analyte by code: %w", err)
	}
	return nil, true, nil
}

func (s *PGStore) WriteMapping(ctx context.Context, resultID, analyteID string, confidence float64, source string) error {
	_, err := s.client.AdminDB().ExecContext(ctx, `
		UPDATE lab_results
		SET analyte_id = $2, mapping_confidence = $3, mapping_source = $4, mapped_at = now()
		WHERE id = $1 AND analyte_id IS NULL`,
		resultID, analyteID, confidence, source)
	if err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}
	return nil
}

func (s *PGStore) InsertAlias(ctx context.Context, analyteID, alias, display, source string, confidence float64) error {
	_, err := s.client.AdminDB().ExecContext(ctx, `
		INSERT INTO analyte_aliases (id, analyte_id, alias, display, source, confidence)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (analyte_id, alias) DO NOTHING`,
		uuid.NewString(), analyteID, alias, display, source, confidence)
	if err != nil {
		return fmt.Errorf("insert analyte alias: %w", err)
	}
	return nil
}

func (s *PGStore) QueueMatchReview(ctx context.Context, review MatchReview) error {
	cands, err := json.Marshal(review.Candidates)
	if err != nil {
		return fmt.Errorf("marshal candidates: %w", err)
	}
	_, err = s.client.AdminDB().ExecContext(ctx, `
		INSERT INTO match_reviews (id, result_id, candidates, source, pending_code, llm_comment, status)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, 'pending')
		ON CONFLICT (result_id) DO NOTHING`,
		uuid.NewString(), review.ResultID, cands, review.Source, review.PendingCode, review.Comment)
	if err != nil {
		return fmt.Errorf("queue match review: %w", err)
	}
	return nil
}

// UpsertPending merges a proposal into pending_analytes: evidence gains the
// report occurrence, parameter_variations appends the label once, and the
// occurrence counter increments.
func (s *PGStore) UpsertPending(ctx context.Context, p PendingProposal) error {
	evidence, err := json.Marshal(map[string]any{
		"report_id":        p.ReportID,
		"label":            p.Label,
		"occurrence_count": 1,
	})
	if err != nil {
		return fmt.Errorf("marshal evidence: %w", err)
	}
	variations, err := json.Marshal([]string{p.Label})
	if err != nil {
		return fmt.Errorf("marshal variations: %w", err)
	}

	_, err = s.client.AdminDB().ExecContext(ctx, `
		INSERT INTO pending_analytes
			(id, proposed_code, proposed_name, unit, confidence, evidence, parameter_variations)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb)
		ON CONFLICT (proposed_code) DO UPDATE SET
			confidence = GREATEST(pending_analytes.confidence, EXCLUDED.confidence),
			evidence = jsonb_set(
				pending_analytes.evidence,
				'{occurrence_count}',
				to_jsonb(COALESCE((pending_analytes.evidence->>'occurrence_count')::int, 1) + 1)),
			parameter_variations = CASE
				WHEN pending_analytes.parameter_variations @> EXCLUDED.parameter_variations
					THEN pending_analytes.parameter_variations
				ELSE pending_analytes.parameter_variations || EXCLUDED.parameter_variations
			END,
			updated_at = now()`,
		uuid.NewString(), p.Code, p.Name, p.Unit, p.Confidence, evidence, variations)
	if err != nil {
		return fmt.Errorf("upsert pending analyte: %w", err)
	}
	return nil
}
