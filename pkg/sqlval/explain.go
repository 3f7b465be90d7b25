package sqlval

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
)

// Explainer runs the wrapped EXPLAIN for the dynamic read-only check.
type Explainer interface {
	ExplainJSON(ctx context.Context, sqlText string) (string, error)
}

// allowedPlanRoots is the whitelist of acceptable root plan node types.
// ModifyTable, utility nodes and function scans are not in it.
var allowedPlanRoots = map[string]bool{
	"Seq Scan":         true,
	"Index Scan":       true,
	"Index Only Scan":  true,
	"Bitmap Heap Scan": true,
	"Nested Loop":      true,
	"Hash Join":        true,
	"Merge Join":       true,
	"Aggregate":        true,
	"Sort":             true,
	"Limit":            true,
	"Subquery Scan":    true,
	"CTE Scan":         true,
	"Group":            true,
	"Hash":             true,
	"Result":           true,
	"Gather":           true,
	"Gather Merge":     true,
}

// explainViolation runs the dynamic check. A failing EXPLAIN (syntax error, missing
// relation, statement timeout) or a non-whitelisted root node yields a
// violation; nil means the plan is acceptable.
func explainViolation(ctx context.Context, ex Explainer, sqlText string) *Violation {
	planJSON, err := ex.ExplainJSON(ctx, sqlText)
	if err != nil {
		return &Violation{
			Code:    CodeExplainFailed,
			Message: "statement failed EXPLAIN",
			Detail:  err.Error(),
		}
	}

	var plans []struct {
		Plan struct {
			NodeType string `json:"Node Type"`
		} `json:"Plan"`
	}
	if err := json.Unmarshal([]byte(planJSON), &plans); err != nil || len(plans) == 0 {
		return &Violation{
			Code:    CodeExplainFailed,
			Message: "could not parse EXPLAIN output",
		}
	}

	root := plans[0].Plan.NodeType
	if !allowedPlanRoots[root] {
		return &Violation{
			Code:    CodeForbiddenPlanNode,
			Message: fmt.Sprintf("plan root node %q is not allowed", root),
		}
	}
	return nil
}

// ConnExplainer implements Explainer on a user-scoped connection. The
// 1-second statement timeout is SET LOCAL inside a rolled-back transaction
// so it never outlives the probe. Do not raise it.
type ConnExplainer struct {
	Conn *stdsql.Conn
}

// ExplainJSON implements Explainer.
func (e ConnExplainer) ExplainJSON(ctx context.Context, sqlText string) (string, error) {
	tx, err := e.Conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin explain tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SET LOCAL statement_timeout = 1000`); err != nil {
		return "", fmt.Errorf("set statement timeout: %w", err)
	}

	var plan string
	row := tx.QueryRowContext(ctx, "EXPLAIN (FORMAT JSON) "+sqlText)
	if err := row.Scan(&plan); err != nil {
		return "", fmt.Errorf("explain: %w", err)
	}
	return plan, nil
}
