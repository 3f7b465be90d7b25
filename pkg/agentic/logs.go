package agentic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/labdex/labdex/pkg/sqlval"
)

// logRun records the terminal state of one run in sql_generation_logs.
// Best-effort: an audit insert failure never fails the run.
func (l *Loop) logRun(ctx context.Context, req Request, res *Result) {
	var generatedSQL, sqlHash any
	meta := map[string]any{
		"rule_version":    sqlval.RuleVersion,
		"strategy":        sqlval.Strategy,
		"llm_duration_ms": res.LLMDuration.Milliseconds(),
		"displays":        len(res.Displays),
	}
	if res.Query != nil {
		generatedSQL = res.Query.SQL
		sqlHash = hashHex([]byte(res.Query.SQL))
		meta["query_type"] = res.Query.QueryType
		meta["confidence"] = res.Query.Confidence
	}
	if len(res.Violations) > 0 {
		codes := make([]string, 0, len(res.Violations))
		for _, v := range res.Violations {
			codes = append(codes, v.Code)
		}
		meta["violations"] = codes
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		metaJSON = []byte("{}")
	}

	_, err = l.db.AdminDB().ExecContext(ctx, `
		INSERT INTO sql_generation_logs
			(id, status, user_hash, prompt, generated_sql, sql_hash,
			 iterations, duration_ms, metadata, session_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, NULLIF($10, ''))`,
		uuid.NewString(), res.Status, hashHex([]byte(req.UserID)), req.Question,
		generatedSQL, sqlHash, res.Iterations, res.Duration.Milliseconds(),
		string(metaJSON), req.SessionID)
	if err != nil {
		slog.Error("SQL generation audit insert failed",
			"status", res.Status, "error", err)
	}
}

func hashHex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
