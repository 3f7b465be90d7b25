// Package sqlval reduces a generated SQL statement to a safe, single,
// read-only form or rejects it with a structured list of violations.
//
// Layers run in order: lexical guardrails, plot-query shape, limit clamp,
// dynamic EXPLAIN check, patient-scope check. Any layer failure short-
// circuits the dynamic layers but still reports every static violation
// found so the model can fix them all in one retry.
package sqlval

import (
	"context"
	"os"
)

// RuleVersion identifies the active guardrail rule set in audit records.
const RuleVersion = "v3"

// Strategy names the validation approach in audit records.
const Strategy = "regex+explain"

// QueryMode selects the limit ceiling applied in the clamp layer.
type QueryMode string

// Query modes and their limit ceilings.
const (
	ModeExplore QueryMode = "explore" // 20
	ModeTable   QueryMode = "table"   // 50
	ModePlot    QueryMode = "plot"    // 5000
	ModeData    QueryMode = "data"    // 50, default data query
)

// Violation codes.
const (
	CodeNotSelect          = "NOT_SELECT"
	CodeForbiddenKeyword   = "FORBIDDEN_KEYWORD"
	CodeForbiddenFunction  = "FORBIDDEN_FUNCTION"
	CodeSystemSchema       = "SYSTEM_SCHEMA"
	CodePlaceholderSyntax  = "PLACEHOLDER_SYNTAX"
	CodeMultipleStatements = "MULTIPLE_STATEMENTS"
	CodeTooManyJoins       = "TOO_MANY_JOINS"
	CodeSubqueryNesting    = "SUBQUERY_NESTING"
	CodeTooManyAggregates  = "TOO_MANY_AGGREGATES"
	CodePlotShape          = "PLOT_SHAPE"
	CodeExplainFailed      = "EXPLAIN_FAILED"
	CodeForbiddenPlanNode  = "FORBIDDEN_PLAN_NODE"
	CodePatientScope       = "PATIENT_SCOPE_MISSING"
	CodeEmptyStatement     = "EMPTY_STATEMENT"
)

// Violation is one structured validation failure.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Result is the validator's verdict.
type Result struct {
	Valid        bool        `json:"valid"`
	Violations   []Violation `json:"violations"`
	SQLWithLimit string      `json:"sql_with_limit"`
	RuleVersion  string      `json:"rule_version"`
	Strategy     string      `json:"strategy"`
}

// Limits carries the per-mode limit ceilings and complexity caps.
type Limits struct {
	Explore int
	Table   int
	Plot    int
	Data    int

	MaxJoins         int
	MaxSubqueryDepth int
	MaxAggregates    int
}

// DefaultLimits returns the standard ceilings.
func DefaultLimits() Limits {
	return Limits{
		Explore:          20,
		Table:            50,
		Plot:             5000,
		Data:             50,
		MaxJoins:         5,
		MaxSubqueryDepth: 2,
		MaxAggregates:    10,
	}
}

func (l Limits) ceiling(mode QueryMode) int {
	switch mode {
	case ModeExplore:
		return l.Explore
	case ModeTable:
		return l.Table
	case ModePlot:
		return l.Plot
	default:
		return l.Data
	}
}

// PatientScope declares the patient-scope requirement. Enforced only
// when the caller knows the user has more than one patient and a specific
// patient is selected in session scope. Exploration queries are exempt.
type PatientScope struct {
	Enforce   bool
	PatientID string
}

// Options parameterize one validation run.
type Options struct {
	Mode    QueryMode
	Patient PatientScope
	// Explainer runs the dynamic EXPLAIN check. Nil skips it (static-only
	// validation, used by unit tests and the forced-completion path when
	// the connection is gone).
	Explainer Explainer
}

// Validator applies the layered checks.
type Validator struct {
	limits Limits
}

// New creates a Validator with the given limits.
func New(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// Validate runs all layers against sqlText.
func (v *Validator) Validate(ctx context.Context, sqlText string, opts Options) Result {
	res := Result{
		RuleVersion:  RuleVersion,
		Strategy:     Strategy,
		SQLWithLimit: sqlText,
	}

	// Test-harness escape hatch. Never set in production.
	if os.Getenv("LABDEX_TEST_BYPASS_VALIDATOR") == "1" {
		res.Valid = true
		return res
	}

	// Lexical guardrails on the comment-stripped, string-masked form.
	res.Violations = append(res.Violations, v.lexicalViolations(sqlText)...)

	// Plot shape.
	if opts.Mode == ModePlot {
		res.Violations = append(res.Violations, plotShapeViolations(sqlText)...)
	}

	// Patient scope is a string-level check, so it runs with the static
	// layers and is reported alongside them.
	if opts.Patient.Enforce && opts.Mode != ModeExplore {
		if !hasPatientScope(sqlText, opts.Patient.PatientID) {
			res.Violations = append(res.Violations, Violation{
				Code: CodePatientScope,
				Message: "query must filter by the selected patient: add " +
					"WHERE patient_id = '" + opts.Patient.PatientID + "'",
			})
		}
	}

	if len(res.Violations) > 0 {
		return res
	}

	// Limit clamp. Only rewrites; cannot fail.
	res.SQLWithLimit = clampLimit(sqlText, v.limits.ceiling(opts.Mode))

	// Dynamic read-only check via EXPLAIN.
	if opts.Explainer != nil {
		if viol := explainViolation(ctx, opts.Explainer, res.SQLWithLimit); viol != nil {
			res.Violations = append(res.Violations, *viol)
			return res
		}
	}

	res.Valid = true
	return res
}
