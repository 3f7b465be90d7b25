// Package units resolves raw unit strings from lab reports to canonical
// UCUM expressions. Resolution is tiered: exact alias lookup, then an LLM
// suggestion validated against the UCUM table, with auto-learning of
// high-confidence results and a review queue for everything doubtful.
package units

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"google.golang.org/genai"

	"github.com/google/uuid"
	"github.com/labdex/labdex/pkg/config"
	"github.com/labdex/labdex/pkg/llm"
	"github.com/labdex/labdex/pkg/units/ucum"
)

// Tier labels how a canonical unit was obtained.
type Tier string

const (
	// TierExact means the alias table answered directly.
	TierExact Tier = "exact"
	// TierLLM means the model proposed the canonical and UCUM accepted it.
	TierLLM Tier = "llm"
	// TierRaw means no resolution happened; the raw input stands.
	TierRaw Tier = "raw"
)

// Confidence levels the model reports.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

var confidenceRank = map[string]int{
	ConfidenceLow:    1,
	ConfidenceMedium: 2,
	ConfidenceHigh:   3,
}

// Outcome is the result of normalizing one raw unit.
type Outcome struct {
	Canonical  string
	Tier       Tier
	Confidence *string
}

func rawOutcome(raw string) Outcome {
	return Outcome{Canonical: raw, Tier: TierRaw}
}

// Review issue types.
const (
	IssueLowConfidence        = "low_confidence"
	IssueAliasConflict        = "alias_conflict"
	IssueInvalidUCUM          = "invalid_ucum"
	IssueSanitizationRejected = "sanitization_rejected"
)

// Review is one entry for the unit review queue.
type Review struct {
	ResultID        uuid.UUID
	RawUnit         string
	NormalizedInput string
	Suggestion      *string
	Confidence      *string
	IssueType       string
	IssueDetails    string
}

// Store is the persistence surface the normalizer needs. The Postgres
// implementation lives in this package; tests inject fakes.
type Store interface {
	// NormalizeText applies the SQL normalize_unit_text helper.
	NormalizeText(ctx context.Context, raw string) (string, error)
	// LookupAlias returns the canonical for a normalized alias, if known.
	LookupAlias(ctx context.Context, normalized string) (string, bool, error)
	// WithAliasLock runs fn holding the advisory lock for alias.
	WithAliasLock(ctx context.Context, alias string, fn func(ctx context.Context) error) error
	// InsertAlias records a new alias -> canonical pair.
	InsertAlias(ctx context.Context, alias, canonical, source string) error
	// BumpAlias increments learn_count and refreshes last_used_at.
	BumpAlias(ctx context.Context, alias string) error
	// QueueReview inserts a review row; one pending row per raw unit.
	QueueReview(ctx context.Context, review Review) error
}

// Normalizer drives the resolution pipeline.
type Normalizer struct {
	store Store
	llm   llm.Client
	cfg   config.UnitsConfig
	model string
}

// NewNormalizer wires the pipeline.
func NewNormalizer(store Store, client llm.Client, cfg config.UnitsConfig, model string) *Normalizer {
	return &Normalizer{store: store, llm: client, cfg: cfg, model: model}
}

// Normalize resolves one raw unit. parameterName is optional context for
// the model prompt. Review-queue failures are logged, never fatal.
func (n *Normalizer) Normalize(ctx context.Context, raw string, resultID uuid.UUID, parameterName string) (Outcome, error) {
	if strings.TrimSpace(raw) == "" {
		return Outcome{Canonical: "", Tier: TierRaw}, nil
	}

	normalized, err := n.store.NormalizeText(ctx, raw)
	if err != nil {
		return rawOutcome(raw), fmt.Errorf("normalize unit text: %w", err)
	}
	if normalized == "" {
		return Outcome{Canonical: "", Tier: TierRaw}, nil
	}

	if canonical, ok, err := n.store.LookupAlias(ctx, normalized); err != nil {
		return rawOutcome(raw), fmt.Errorf("alias lookup: %w", err)
	} else if ok {
		return Outcome{Canonical: canonical, Tier: TierExact}, nil
	}

	// The model only ever sees sanitized input. Inputs that sanitization
	// empties or truncates never reach it; a human decides instead.
	if input, truncated := sanitizePromptInput(normalized); input == "" || truncated {
		detail := "input empty after sanitization"
		if truncated {
			detail = fmt.Sprintf("input exceeds %d bytes after sanitization", maxPromptInput)
		}
		n.queue(ctx, Review{
			ResultID:        resultID,
			RawUnit:         raw,
			NormalizedInput: normalized,
			IssueType:       IssueSanitizationRejected,
			IssueDetails:    detail,
		})
		return rawOutcome(raw), nil
	}

	suggestion, err := n.askModel(ctx, normalized, parameterName, nil)
	if err != nil {
		slog.Warn("Unit LLM tier failed, keeping raw",
			"unit", raw, "error", err)
		return rawOutcome(raw), nil
	}

	canonical := asciiPreprocess(suggestion.Canonical)
	if canonical == "" {
		n.queue(ctx, Review{
			ResultID:        resultID,
			RawUnit:         raw,
			NormalizedInput: normalized,
			Confidence:      &suggestion.Confidence,
			IssueType:       IssueInvalidUCUM,
			IssueDetails:    "model output empty after preprocessing",
		})
		return rawOutcome(raw), nil
	}

	if n.cfg.UCUMValidationEnable {
		canonical, err = n.validateUCUM(ctx, raw, normalized, parameterName, canonical, suggestion, resultID)
		if err != nil || canonical == "" {
			return rawOutcome(raw), nil
		}
	}

	if confidenceRank[suggestion.Confidence] < confidenceRank[n.cfg.AutoLearnConfidence] {
		n.queue(ctx, Review{
			ResultID:        resultID,
			RawUnit:         raw,
			NormalizedInput: normalized,
			Suggestion:      &canonical,
			Confidence:      &suggestion.Confidence,
			IssueType:       IssueLowConfidence,
			IssueDetails:    fmt.Sprintf("confidence %s below %s", suggestion.Confidence, n.cfg.AutoLearnConfidence),
		})
		return rawOutcome(raw), nil
	}

	learned, err := n.autoLearn(ctx, normalized, canonical, resultID, raw)
	if err != nil {
		return rawOutcome(raw), fmt.Errorf("auto-learn alias: %w", err)
	}
	if !learned {
		// Conflict with an existing alias; queued for review.
		return rawOutcome(raw), nil
	}

	conf := suggestion.Confidence
	return Outcome{Canonical: canonical, Tier: TierLLM, Confidence: &conf}, nil
}

// validateUCUM applies the three-way UCUM verdict, retrying the model once
// with the suggestion list before giving up to the review queue.
func (n *Normalizer) validateUCUM(ctx context.Context, raw, normalized, parameterName, canonical string, suggestion *modelSuggestion, resultID uuid.UUID) (string, error) {
	res := ucum.Validate(canonical)
	switch res.Status {
	case ucum.StatusValid:
		return canonical, nil
	case ucum.StatusCorrected:
		return res.Corrected, nil
	}

	if len(res.Suggestions) > 0 {
		retry, err := n.askModel(ctx, normalized, parameterName, res.Suggestions)
		if err == nil {
			retried := asciiPreprocess(retry.Canonical)
			if v := ucum.Validate(retried); v.Status == ucum.StatusValid {
				suggestion.Confidence = retry.Confidence
				return retried, nil
			} else if v.Status == ucum.StatusCorrected {
				suggestion.Confidence = retry.Confidence
				return v.Corrected, nil
			}
		}
	}

	n.queue(ctx, Review{
		ResultID:        resultID,
		RawUnit:         raw,
		NormalizedInput: normalized,
		Suggestion:      &canonical,
		Confidence:      &suggestion.Confidence,
		IssueType:       IssueInvalidUCUM,
		IssueDetails:    fmt.Sprintf("%q failed UCUM validation; suggestions %v", canonical, res.Suggestions),
	})
	return "", nil
}

// autoLearn inserts or bumps the alias under the advisory lock. Returns
// false when the alias already maps to a different canonical; that conflict
// is queued and the caller falls back to raw.
func (n *Normalizer) autoLearn(ctx context.Context, alias, canonical string, resultID uuid.UUID, raw string) (bool, error) {
	learned := false
	err := n.store.WithAliasLock(ctx, alias, func(ctx context.Context) error {
		existing, found, err := n.store.LookupAlias(ctx, alias)
		if err != nil {
			return err
		}
		switch {
		case !found:
			if err := n.store.InsertAlias(ctx, alias, canonical, "llm"); err != nil {
				return err
			}
			learned = true
		case existing == canonical:
			if err := n.store.BumpAlias(ctx, alias); err != nil {
				return err
			}
			learned = true
		default:
			n.queue(ctx, Review{
				ResultID:        resultID,
				RawUnit:         raw,
				NormalizedInput: alias,
				Suggestion:      &canonical,
				IssueType:       IssueAliasConflict,
				IssueDetails:    fmt.Sprintf("alias already maps to %q", existing),
			})
		}
		return nil
	})
	return learned, err
}

func (n *Normalizer) queue(ctx context.Context, review Review) {
	if err := n.store.QueueReview(ctx, review); err != nil {
		slog.Warn("Unit review queue write failed",
			"raw_unit", review.RawUnit, "issue", review.IssueType, "error", err)
	}
}

type modelSuggestion struct {
	Canonical  string `json:"canonical"`
	Confidence string `json:"confidence"`
}

var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"canonical": {Type: genai.TypeString},
		"confidence": {
			Type: genai.TypeString,
			Enum: []string{ConfidenceLow, ConfidenceMedium, ConfidenceHigh},
		},
	},
	Required: []string{"canonical", "confidence"},
}

func (n *Normalizer) askModel(ctx context.Context, normalized, parameterName string, pickFrom []string) (*modelSuggestion, error) {
	input, _ := sanitizePromptInput(normalized)

	var b strings.Builder
	b.WriteString("Convert the following laboratory unit to its canonical UCUM form.\n")
	fmt.Fprintf(&b, "Unit: %s\n", input)
	if parameterName != "" {
		fmt.Fprintf(&b, "Measured parameter: %s\n", parameterName)
	}
	if len(pickFrom) > 0 {
		fmt.Fprintf(&b, "Pick the best match from this list, or report low confidence: %s\n",
			strings.Join(pickFrom, ", "))
	}

	out, err := n.llm.GenerateStructured(ctx, llm.StructuredRequest{
		Model:  n.model,
		System: "You are a clinical unit normalization assistant. Answer only with the requested JSON.",
		Prompt: b.String(),
		Schema: suggestionSchema,
	})
	if err != nil {
		return nil, err
	}

	var s modelSuggestion
	if err := json.Unmarshal(out, &s); err != nil {
		return nil, fmt.Errorf("decode unit suggestion: %w", err)
	}
	if confidenceRank[s.Confidence] == 0 {
		s.Confidence = ConfidenceLow
	}
	return &s, nil
}

// maxPromptInput caps what goes into the model prompt.
const maxPromptInput = 100

// sanitizePromptInput whitelists letters in any script, digits, whitespace
// and the punctuation that occurs in real units, including ^ for 10^9/L.
func sanitizePromptInput(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			b.WriteRune(r)
		case strings.ContainsRune(`^/*%.()-[]{}`, r):
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > maxPromptInput {
		return out[:maxPromptInput], true
	}
	return out, false
}

// asciiPreprocess folds the symbols models emit despite instructions and
// drops implausibly long outputs.
func asciiPreprocess(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(
		"μ", "u",
		"µ", "u",
		"Ω", "Ohm",
		"°", "deg",
	)
	s = replacer.Replace(s)
	if len(s) > 50 {
		return ""
	}
	return s
}
