package mapping

import (
	"context"
	"log/slog"
)

// MatchReview is one entry for the match review queue.
type MatchReview struct {
	ResultID    string
	Candidates  []Candidate
	Source      string
	PendingCode string
	Comment     string
}

// PendingProposal is an LLM-proposed analyte awaiting admin approval.
type PendingProposal struct {
	Code       string
	Name       string
	Unit       string
	Category   string
	Confidence float64
	ReportID   string
	Label      string
}

// applyWritePolicy turns each row's final decision into a catalog write, a
// review-queue entry, or a pending-analyte proposal. Per-row failures log
// and continue.
func (m *Mapper) applyWritePolicy(ctx context.Context, reportID string, res *BatchResult) error {
	for _, row := range res.Rows {
		switch row.Decision {
		case DecisionMatchExact:
			m.write(ctx, res, row, SourceAutoExact)

		case DecisionMatchFuzzy:
			if row.Confidence >= m.cfg.AutoAccept {
				m.write(ctx, res, row, SourceAutoFuzzy)
			} else {
				m.queue(ctx, res, MatchReview{
					ResultID:   row.ResultID,
					Candidates: row.Candidates,
					Source:     "fuzzy",
				})
			}

		case DecisionMatchFuzzyConfirmed:
			m.write(ctx, res, row, SourceAutoFuzzyLLM)

		case DecisionMatchLLM:
			m.writeLLMMatch(ctx, res, row)

		case DecisionAmbiguousFuzzy, DecisionNeedsLLMReview:
			m.queue(ctx, res, MatchReview{
				ResultID:   row.ResultID,
				Candidates: row.Candidates,
				Source:     "fuzzy",
			})

		case DecisionConflictFuzzyLLM:
			cands := row.Candidates
			if row.LLMAlternative != nil {
				cands = append(append([]Candidate{}, cands...), *row.LLMAlternative)
			}
			m.queue(ctx, res, MatchReview{
				ResultID:   row.ResultID,
				Candidates: cands,
				Source:     "conflict",
				Comment:    row.LLMComment,
			})

		case DecisionAbstainLLM, DecisionUnmapped:
			m.queue(ctx, res, MatchReview{
				ResultID:   row.ResultID,
				Candidates: row.Suggestions,
				Source:     "abstain",
				Comment:    row.LLMComment,
			})

		case DecisionNewLLM:
			m.proposeNew(ctx, reportID, res, row)
		}
	}
	return nil
}

// writeLLMMatch handles the MATCH_LLM branches: approved code writes,
// pending code queues, unknown code logs.
func (m *Mapper) writeLLMMatch(ctx context.Context, res *BatchResult, row *Row) {
	if row.Confidence < m.cfg.AutoAccept {
		m.queue(ctx, res, MatchReview{
			ResultID:   row.ResultID,
			Candidates: row.Candidates,
			Source:     "llm_low_confidence",
			Comment:    row.LLMComment,
		})
		return
	}

	approved, pending, err := m.store.AnalyteByCode(ctx, row.Code)
	if err != nil {
		slog.Warn("Analyte lookup failed for LLM match",
			"result_id", row.ResultID, "code", row.Code, "error", err)
		return
	}

	switch {
	case approved != nil:
		row.AnalyteID = approved.AnalyteID
		m.write(ctx, res, row, SourceAutoLLM)
		// The LLM vindicated a weak fuzzy suggestion: learn the alias so
		// the next report resolves at Tier A.
		for _, s := range row.Suggestions {
			if s.Code == row.Code {
				if err := m.store.InsertAlias(ctx, approved.AnalyteID, row.LabelNorm,
					row.Label, SourceLLMSemanticMatch, row.Confidence); err != nil {
					slog.Warn("Semantic-match alias insert failed",
						"alias", row.LabelNorm, "code", row.Code, "error", err)
				}
				break
			}
		}
	case pending:
		m.queue(ctx, res, MatchReview{
			ResultID:    row.ResultID,
			Candidates:  row.Candidates,
			Source:      "pending_analyte",
			PendingCode: row.Code,
			Comment:     row.LLMComment,
		})
	default:
		slog.Warn("LLM matched a code that exists nowhere, skipping",
			"result_id", row.ResultID, "code", row.Code)
	}
}

func (m *Mapper) proposeNew(ctx context.Context, reportID string, res *BatchResult, row *Row) {
	// Safety net: the model sometimes proposes NEW for an analyte that is
	// already approved under the same code.
	approved, _, err := m.store.AnalyteByCode(ctx, row.Code)
	if err == nil && approved != nil {
		slog.Warn("NEW proposal collides with approved analyte, skipping",
			"result_id", row.ResultID, "code", row.Code)
		return
	}

	err = m.store.UpsertPending(ctx, PendingProposal{
		Code:       row.Code,
		Name:       row.ProposedName,
		Unit:       row.Unit,
		Confidence: row.Confidence,
		ReportID:   reportID,
		Label:      row.Label,
	})
	if err != nil {
		slog.Warn("Pending analyte upsert failed",
			"code", row.Code, "error", err)
		return
	}
	res.Pending++
}

func (m *Mapper) write(ctx context.Context, res *BatchResult, row *Row, source string) {
	if err := m.store.WriteMapping(ctx, row.ResultID, row.AnalyteID, row.Confidence, source); err != nil {
		slog.Warn("Mapping write failed",
			"result_id", row.ResultID, "analyte_id", row.AnalyteID, "error", err)
		return
	}
	res.Written++
}

func (m *Mapper) queue(ctx context.Context, res *BatchResult, review MatchReview) {
	if err := m.store.QueueMatchReview(ctx, review); err != nil {
		slog.Warn("Match review queue write failed",
			"result_id", review.ResultID, "error", err)
		return
	}
	res.Queued++
}
