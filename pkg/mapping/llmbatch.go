package mapping

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/labdex/labdex/pkg/llm"
)

// verdict is the model's per-row output.
type verdict struct {
	ResultID   string  `json:"id"`
	Decision   string  `json:"decision"` // MATCH | NEW | ABSTAIN
	Code       string  `json:"code,omitempty"`
	Name       string  `json:"name,omitempty"`
	Confidence float64 `json:"confidence"`
	Comment    string  `json:"comment"`
}

var verdictSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"rows": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":         {Type: genai.TypeString},
					"decision":   {Type: genai.TypeString, Enum: []string{"MATCH", "NEW", "ABSTAIN"}},
					"code":       {Type: genai.TypeString},
					"name":       {Type: genai.TypeString},
					"confidence": {Type: genai.TypeNumber},
					"comment":    {Type: genai.TypeString},
				},
				Required: []string{"id", "decision", "confidence", "comment"},
			},
		},
	},
	Required: []string{"rows"},
}

// adjudicate sends all open rows of a report in one prompt and merges the
// verdicts back. One call per report; a provider failure leaves every open
// row in its pre-LLM state.
func (m *Mapper) adjudicate(ctx context.Context, reportID string, open []*Row, counters Counters) error {
	schema, err := m.store.AnalyteSchema(ctx)
	if err != nil {
		return fmt.Errorf("load analyte schema: %w", err)
	}
	categories, err := m.store.CategoriesForReport(ctx, reportID)
	if err != nil {
		return fmt.Errorf("load report categories: %w", err)
	}

	prompt := buildBatchPrompt(schema, categories, open)
	out, err := m.llm.GenerateStructured(ctx, llm.StructuredRequest{
		Model: m.model,
		System: "You map laboratory parameter labels to a catalog of analytes. " +
			"Answer MATCH only when certain of the analyte code, NEW for a genuinely " +
			"missing analyte, ABSTAIN otherwise.",
		Prompt: prompt,
		Schema: verdictSchema,
	})
	if err != nil {
		return fmt.Errorf("adjudication call: %w", err)
	}

	var parsed struct {
		Rows []verdict `json:"rows"`
	}
	if err := json.Unmarshal(out, &parsed); err != nil {
		return fmt.Errorf("decode adjudication output: %w", err)
	}

	byID := make(map[string]verdict, len(parsed.Rows))
	for _, v := range parsed.Rows {
		byID[v.ResultID] = v
	}

	for _, row := range open {
		v, ok := byID[row.ResultID]
		if !ok {
			// Model skipped the row; it stays in its pre-LLM bucket.
			continue
		}
		mergeVerdict(row, v, counters, m.cfg.AutoAccept)
	}
	return nil
}

// SchemaEntry is one analyte line in the adjudication prompt.
type SchemaEntry struct {
	Code     string
	Name     string
	Unit     string
	Category string
	Pending  bool
}

func buildBatchPrompt(schema []SchemaEntry, categories []string, open []*Row) string {
	var b strings.Builder

	b.WriteString("Analyte catalog:\n")
	for _, e := range schema {
		tag := ""
		if e.Pending {
			tag = " [PENDING]"
		}
		fmt.Fprintf(&b, "- %s: %s (%s, %s)%s\n", e.Code, e.Name, e.Unit, e.Category, tag)
	}

	if len(categories) > 0 {
		fmt.Fprintf(&b, "\nCategories already present in this report: %s\n",
			strings.Join(categories, ", "))
	}

	b.WriteString("\nRows to adjudicate:\n")
	for _, row := range open {
		fmt.Fprintf(&b, "- id=%s label=%q unit=%q", row.ResultID, row.Label, row.Unit)
		if row.ReferenceHint != "" {
			fmt.Fprintf(&b, " reference=%q", row.ReferenceHint)
		}
		switch {
		case row.provisional():
			fmt.Fprintf(&b, " provisional=%s(%.2f)", row.Provisional.Code, row.Provisional.Similarity)
		case row.InitialDecision == DecisionAmbiguousFuzzy:
			b.WriteString(" ambiguous=")
			for i, c := range row.Candidates {
				if i > 0 {
					b.WriteByte(',')
				}
				fmt.Fprintf(&b, "%s(%.2f)", c.Code, c.Similarity)
			}
		}
		if len(row.Suggestions) > 0 {
			b.WriteString(" weak_candidates=")
			for i, c := range row.Suggestions {
				if i > 0 {
					b.WriteByte(',')
				}
				fmt.Fprintf(&b, "%s(%.2f)", c.Code, c.Similarity)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// mergeVerdict applies the decision-merge table for one row and records the
// counter transition.
func mergeVerdict(row *Row, v verdict, counters Counters, autoAccept float64) {
	from := row.InitialDecision

	switch v.Decision {
	case "MATCH":
		switch {
		case row.provisional() && v.Code == row.Provisional.Code:
			row.Decision = DecisionMatchFuzzyConfirmed
			row.AnalyteID = row.Provisional.AnalyteID
			row.Code = row.Provisional.Code
			row.Confidence = max(v.Confidence, max(row.Provisional.Similarity, autoAccept))
		case v.Confidence > row.fuzzyConfidence():
			row.Decision = DecisionMatchLLM
			row.Code = v.Code
			row.Confidence = v.Confidence
			row.AnalyteID = "" // hydrated by the write policy
		case row.provisional():
			row.Decision = DecisionConflictFuzzyLLM
			row.AnalyteID = row.Provisional.AnalyteID
			row.Code = row.Provisional.Code
			row.Confidence = row.Provisional.Similarity
			row.LLMAlternative = &Candidate{Code: v.Code, Name: v.Name, Similarity: v.Confidence}
		default:
			// Non-provisional with a weaker LLM match still beats nothing.
			row.Decision = DecisionMatchLLM
			row.Code = v.Code
			row.Confidence = v.Confidence
		}
	case "NEW":
		row.Decision = DecisionNewLLM
		row.Code = v.Code
		row.ProposedName = v.Name
		row.Confidence = v.Confidence
		row.LLMComment = v.Comment
	case "ABSTAIN":
		if row.provisional() {
			row.Decision = DecisionMatchFuzzy
			row.AnalyteID = row.Provisional.AnalyteID
			row.Code = row.Provisional.Code
			row.Confidence = row.Provisional.Similarity
		} else {
			row.Decision = DecisionAbstainLLM
			row.LLMComment = v.Comment
		}
	default:
		// Unknown decision string; treat as abstain.
		row.Decision = DecisionAbstainLLM
		row.LLMComment = v.Comment
	}

	counters.transition(from, row.Decision)
}
