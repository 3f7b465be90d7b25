// Package mapping resolves raw lab-result parameter names to catalog
// analytes. Resolution is tiered: exact alias lookup, trigram fuzzy match,
// then one batched LLM adjudication per report for everything still open.
// Writes either annotate the result row, queue a review, or propose a new
// analyte for admin approval.
package mapping

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labdex/labdex/pkg/config"
	"github.com/labdex/labdex/pkg/llm"
)

// Decision is the mapping state of one row.
type Decision string

const (
	DecisionUnmapped            Decision = "UNMAPPED"
	DecisionNeedsLLMReview      Decision = "NEEDS_LLM_REVIEW"
	DecisionAmbiguousFuzzy      Decision = "AMBIGUOUS_FUZZY"
	DecisionMatchExact          Decision = "MATCH_EXACT"
	DecisionMatchFuzzy          Decision = "MATCH_FUZZY"
	DecisionMatchFuzzyConfirmed Decision = "MATCH_FUZZY_CONFIRMED"
	DecisionMatchLLM            Decision = "MATCH_LLM"
	DecisionConflictFuzzyLLM    Decision = "CONFLICT_FUZZY_LLM"
	DecisionNewLLM              Decision = "NEW_LLM"
	DecisionAbstainLLM          Decision = "ABSTAIN_LLM"
)

// Mapping sources written to lab_results.mapping_source.
const (
	SourceAutoExact         = "auto_exact"
	SourceAutoFuzzy         = "auto_fuzzy"
	SourceAutoFuzzyLLM      = "auto_fuzzy_llm_confirmed"
	SourceAutoLLM           = "auto_llm"
	SourceManualApproved    = "manual_approved"
	SourceLLMSemanticMatch  = "llm_semantic_match"
	SourceManualDisambigAls = "manual_disambiguation"
)

// Candidate is one analyte candidate with its similarity score.
type Candidate struct {
	AnalyteID  string  `json:"analyte_id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Alias      string  `json:"alias"`
	Similarity float64 `json:"similarity"`
}

// Row is the mapper's working state for one lab result.
type Row struct {
	ResultID      string
	Label         string
	LabelNorm     string
	Unit          string
	ReferenceHint string

	Decision        Decision
	InitialDecision Decision
	Confidence      float64
	AnalyteID       string
	Code            string

	// Fuzzy context carried into Tier C.
	Provisional    *Candidate
	Candidates     []Candidate
	Suggestions    []Candidate // positive hits below the queue floor
	LLMAlternative *Candidate
	LLMComment     string
	ProposedName   string
}

// provisional reports whether the row carries a single fuzzy frontrunner.
func (r *Row) provisional() bool {
	return r.InitialDecision == DecisionNeedsLLMReview && r.Provisional != nil
}

func (r *Row) fuzzyConfidence() float64 {
	if r.Provisional != nil {
		return r.Provisional.Similarity
	}
	if len(r.Candidates) > 0 {
		return r.Candidates[0].Similarity
	}
	return 0
}

// Counters tracks how many rows sit in each decision bucket. Transitions
// decrement the old bucket and increment the new one exactly once.
type Counters map[Decision]int

func (c Counters) seed(d Decision) { c[d]++ }

func (c Counters) transition(from, to Decision) {
	if from == to {
		return
	}
	c[from]--
	c[to]++
}

// Total sums all buckets; it must equal the input row count at all times.
func (c Counters) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Input is one unmapped lab result entering the mapper.
type Input struct {
	ResultID      string
	ParameterName string
	Unit          string
	ReferenceHint string
}

// BatchResult is the outcome of one wet run.
type BatchResult struct {
	Rows     []*Row
	Counters Counters
	Written  int
	Queued   int
	Pending  int
}

// suggestionFloor is the minimum similarity a below-threshold hit needs to
// count as a low-confidence suggestion for the LLM.
const suggestionFloor = 0.3

// Mapper drives the tiered resolution.
type Mapper struct {
	store Store
	llm   llm.Client
	cfg   config.MappingConfig
	model string
}

// NewMapper wires the mapper.
func NewMapper(store Store, client llm.Client, cfg config.MappingConfig, model string) *Mapper {
	return &Mapper{store: store, llm: client, cfg: cfg, model: model}
}

// WetRun maps all rows of one report and applies the write policy.
// reportID feeds pending-analyte evidence. Per-row failures do not fail the
// batch.
func (m *Mapper) WetRun(ctx context.Context, reportID string, inputs []Input) (*BatchResult, error) {
	res := &BatchResult{Counters: Counters{}}
	started := time.Now()

	for _, in := range inputs {
		row := &Row{
			ResultID:      in.ResultID,
			Label:         in.ParameterName,
			LabelNorm:     NormalizeLabel(in.ParameterName),
			Unit:          in.Unit,
			ReferenceHint: in.ReferenceHint,
		}
		if err := m.resolveFuzzyTiers(ctx, row); err != nil {
			slog.Warn("Tiered resolution failed, leaving unmapped",
				"result_id", row.ResultID, "error", err)
			row.Decision = DecisionUnmapped
		}
		row.InitialDecision = row.Decision
		res.Counters.seed(row.Decision)
		res.Rows = append(res.Rows, row)
	}

	if open := openRows(res.Rows); len(open) > 0 {
		if err := m.adjudicate(ctx, reportID, open, res.Counters); err != nil {
			slog.Warn("LLM adjudication failed, open rows stay queued",
				"report_id", reportID, "rows", len(open), "error", err)
		}
	}

	if err := m.applyWritePolicy(ctx, reportID, res); err != nil {
		return res, fmt.Errorf("apply write policy: %w", err)
	}

	slog.Info("Analyte mapping batch done",
		"report_id", reportID,
		"rows", len(res.Rows),
		"written", res.Written,
		"queued", res.Queued,
		"pending", res.Pending,
		"duration", time.Since(started))
	return res, nil
}

// resolveFuzzyTiers runs Tier A (exact) and Tier B (trigram) for one row.
func (m *Mapper) resolveFuzzyTiers(ctx context.Context, row *Row) error {
	exact, err := m.store.ExactAlias(ctx, row.LabelNorm)
	if err != nil {
		return fmt.Errorf("exact alias lookup: %w", err)
	}
	if exact != nil {
		row.Decision = DecisionMatchExact
		row.AnalyteID = exact.AnalyteID
		row.Code = exact.Code
		row.Confidence = 1.0
		return nil
	}

	cands, err := m.store.FuzzyCandidates(ctx, row.LabelNorm, suggestionFloor, 5)
	if err != nil {
		return fmt.Errorf("fuzzy candidates: %w", err)
	}
	cands = dedupeByAnalyte(cands)
	if len(cands) > 2 {
		cands = cands[:2]
	}

	var above []Candidate
	for _, c := range cands {
		if c.Similarity >= m.cfg.QueueLower {
			above = append(above, c)
		} else {
			row.Suggestions = append(row.Suggestions, c)
		}
	}

	switch {
	case len(above) == 0:
		row.Decision = DecisionUnmapped
	case len(above) >= 2 && above[0].Similarity-above[1].Similarity <= m.cfg.AmbiguityDelta:
		row.Decision = DecisionAmbiguousFuzzy
		row.Candidates = above
	case above[0].Similarity >= m.cfg.AutoAccept:
		row.Decision = DecisionMatchFuzzy
		row.AnalyteID = above[0].AnalyteID
		row.Code = above[0].Code
		row.Confidence = above[0].Similarity
		row.Candidates = above
	default:
		row.Decision = DecisionNeedsLLMReview
		c := above[0]
		row.Provisional = &c
		row.Candidates = above
	}
	return nil
}

// openRows returns the rows Tier C must adjudicate.
func openRows(rows []*Row) []*Row {
	var out []*Row
	for _, r := range rows {
		switch r.Decision {
		case DecisionUnmapped, DecisionAmbiguousFuzzy, DecisionNeedsLLMReview:
			out = append(out, r)
		}
	}
	return out
}

// dedupeByAnalyte keeps the best-scoring alias per analyte, preserving
// score order.
func dedupeByAnalyte(cands []Candidate) []Candidate {
	seen := map[string]bool{}
	var out []Candidate
	for _, c := range cands {
		if seen[c.AnalyteID] {
			continue
		}
		seen[c.AnalyteID] = true
		out = append(out, c)
	}
	return out
}
