// Package agentic runs the bounded tool-calling conversation that turns a
// natural-language question into a single validated, read-only SQL
// statement. The model explores with fuzzy search and probe queries, then
// terminates through generate_final_query; every candidate passes the full
// validator before it is accepted.
package agentic

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/labdex/labdex/pkg/database"
	"github.com/labdex/labdex/pkg/llm"
	"github.com/labdex/labdex/pkg/schemactx"
	"github.com/labdex/labdex/pkg/sqlval"
)

// Terminal statuses of one loop run.
const (
	StatusSuccess          = "SUCCESS"
	StatusValidationFailed = "VALIDATION_FAILED"
	StatusNoFinalQuery     = "NO_FINAL_QUERY"
	StatusTimeout          = "TIMEOUT"
)

// maxProbeRows caps how many rows of a probe query are serialized back to
// the model. The LIMIT clamp already bounds the statement itself.
const maxProbeRows = 100

// Request is one question against one user's data.
type Request struct {
	UserID            string
	SessionID         string
	Question          string
	SelectedPatientID string
	// PatientCount decides patient-scope enforcement: with more than one
	// patient and one selected, data queries must filter by it.
	PatientCount int
	// History carries prior turns of the session transcript.
	History []llm.Message
}

// Result is the outcome of one run. Query is set only on SUCCESS and holds
// the clamped statement.
type Result struct {
	Status      string
	Query       *FinalQuery
	Violations  []sqlval.Violation
	Displays    []Display
	Iterations  int
	Duration    time.Duration
	LLMDuration time.Duration
}

// Loop orchestrates the conversation. One Loop serves all sessions; each
// Run is sequential within itself, concurrent runs are independent.
type Loop struct {
	llm           llm.Client
	model         string
	db            *database.Client
	validator     *sqlval.Validator
	schema        *schemactx.Cache
	similarity    float64
	maxIterations int
	timeout       time.Duration
}

// New wires a Loop.
func New(client llm.Client, model string, db *database.Client, validator *sqlval.Validator,
	schema *schemactx.Cache, similarity float64, maxIterations int, timeout time.Duration) *Loop {
	return &Loop{
		llm:           client,
		model:         model,
		db:            db,
		validator:     validator,
		schema:        schema,
		similarity:    similarity,
		maxIterations: maxIterations,
		timeout:       timeout,
	}
}

// Run executes the loop for one question. The exploration connection is
// user-scoped so probes and the EXPLAIN check see only the caller's rows.
func (l *Loop) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	deadline := start.Add(l.timeout)
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	manifest, err := l.schema.Manifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("schema context: %w", err)
	}
	section := l.schema.BuildSchemaSection(manifest, req.Question)

	res := &Result{Status: StatusNoFinalQuery}
	err = l.db.WithUserConn(ctx, req.UserID, func(conn *stdsql.Conn) error {
		pr := probe{q: conn, explainer: sqlval.ConnExplainer{Conn: conn}}
		l.converse(ctx, pr, req, section.Text, res, deadline)
		return nil
	})
	res.Duration = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("agentic run: %w", err)
	}

	if res.Status == StatusSuccess && res.Query != nil {
		l.schema.TouchTables(tableNames(res.Query.SQL)...)
	}
	l.logRun(context.WithoutCancel(ctx), req, res)
	return res, nil
}

// probe bundles the user-scoped query surface handed to tools and the
// validator's dynamic check. A zero explainer skips the EXPLAIN layer.
type probe struct {
	q         database.Querier
	explainer sqlval.Explainer
}

type runState struct {
	messages      []llm.Message
	retriedSQL    bool
	retriedPlotMD bool
}

func (l *Loop) converse(ctx context.Context, pr probe, req Request, schemaSection string, res *Result, deadline time.Time) {
	st := &runState{
		messages: append(append([]llm.Message{}, req.History...),
			llm.Message{Role: llm.RoleUser, Content: req.Question}),
	}
	system := buildSystemPrompt(schemaSection, req.SelectedPatientID, req.PatientCount)

	for iter := 0; iter < l.maxIterations; iter++ {
		if time.Now().After(deadline) || ctx.Err() != nil {
			res.Status = StatusTimeout
			return
		}
		res.Iterations = iter + 1

		completion, err := l.complete(ctx, res, llm.CompleteRequest{
			Model:    l.model,
			System:   system,
			Messages: st.messages,
			Tools:    toolDefinitions(),
		})
		if err != nil {
			if ctx.Err() != nil {
				res.Status = StatusTimeout
				return
			}
			slog.Error("Model call failed", "iteration", iter+1, "error", err)
			res.Status = StatusNoFinalQuery
			return
		}
		st.messages = append(st.messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   completion.Text,
			ToolCalls: completion.ToolCalls,
		})

		if len(completion.ToolCalls) == 0 {
			st.messages = append(st.messages, llm.Message{
				Role: llm.RoleUser, Content: nudgeInstruction,
			})
			continue
		}

		if done := l.handleToolCalls(ctx, pr, req, st, res, completion.ToolCalls); done {
			return
		}
	}

	l.forcedCompletion(ctx, pr, req, st, res, system)
}

// handleToolCalls executes the model's tool calls in emission order.
// Returns true when a terminal state was reached.
func (l *Loop) handleToolCalls(ctx context.Context, pr probe, req Request, st *runState, res *Result, calls []llm.ToolCall) bool {
	for _, call := range calls {
		if call.Name == toolFinalQuery {
			return l.finalize(ctx, pr, req, st, res, call)
		}

		output := l.runExplorationTool(ctx, pr, req, res, call)
		st.messages = append(st.messages, llm.Message{
			Role:       llm.RoleTool,
			ToolCallID: call.ID,
			ToolName:   call.Name,
			Content:    output,
		})
	}
	return false
}

// finalize validates a generate_final_query candidate. One validation retry
// and one plot-metadata retry are permitted across the whole run.
func (l *Loop) finalize(ctx context.Context, pr probe, req Request, st *runState, res *Result, call llm.ToolCall) bool {
	fq := parseFinalQuery(call.Args)

	if fq.QueryType == QueryTypePlot && fq.PlotMetadata == nil {
		if !st.retriedPlotMD {
			st.retriedPlotMD = true
			st.messages = append(st.messages, llm.Message{
				Role: llm.RoleTool, ToolCallID: call.ID, ToolName: call.Name,
				Content: "plot_metadata is required for plot queries. Call " +
					"generate_final_query again with x_axis, y_axis and series_by.",
			})
			return false
		}
		fq.PlotMetadata = defaultPlotMetadata()
	}

	mode := sqlval.ModeData
	if fq.QueryType == QueryTypePlot {
		mode = sqlval.ModePlot
	}
	cleaned := sqlval.StripTrailingLineComments(fq.SQL)
	verdict := l.validator.Validate(ctx, cleaned, sqlval.Options{
		Mode:      mode,
		Patient:   l.patientScope(req),
		Explainer: pr.explainer,
	})

	if verdict.Valid {
		fq.SQL = verdict.SQLWithLimit
		res.Query = &fq
		res.Status = StatusSuccess
		return true
	}

	if !st.retriedSQL {
		st.retriedSQL = true
		st.messages = append(st.messages, llm.Message{
			Role: llm.RoleTool, ToolCallID: call.ID, ToolName: call.Name,
			Content: violationFeedback(verdict.Violations),
		})
		return false
	}

	res.Status = StatusValidationFailed
	res.Violations = verdict.Violations
	return true
}

// forcedCompletion is the last-chance call after the iteration budget: the
// model may only call generate_final_query.
func (l *Loop) forcedCompletion(ctx context.Context, pr probe, req Request, st *runState, res *Result, system string) {
	if ctx.Err() != nil {
		res.Status = StatusTimeout
		return
	}

	st.messages = append(st.messages, llm.Message{
		Role: llm.RoleUser, Content: forcedInstruction,
	})
	completion, err := l.complete(ctx, res, llm.CompleteRequest{
		Model:    l.model,
		System:   system,
		Messages: st.messages,
		Tools:    toolDefinitions(),
		ToolChoice: llm.ToolChoice{
			Required: true,
			Only:     []string{toolFinalQuery},
		},
	})
	if err != nil {
		slog.Error("Forced completion failed", "error", err)
		res.Status = StatusNoFinalQuery
		return
	}

	for _, call := range completion.ToolCalls {
		if call.Name != toolFinalQuery {
			continue
		}
		// No retry budget left on the forced path.
		st.retriedSQL = true
		st.retriedPlotMD = true
		l.finalize(ctx, pr, req, st, res, call)
		return
	}
	res.Status = StatusNoFinalQuery
}

func (l *Loop) complete(ctx context.Context, res *Result, req llm.CompleteRequest) (*llm.Completion, error) {
	callStart := time.Now()
	completion, err := l.llm.Complete(ctx, req)
	res.LLMDuration += time.Since(callStart)
	return completion, err
}

func (l *Loop) patientScope(req Request) sqlval.PatientScope {
	return sqlval.PatientScope{
		Enforce:   req.PatientCount > 1 && req.SelectedPatientID != "",
		PatientID: req.SelectedPatientID,
	}
}

// runExplorationTool executes a non-terminal tool. Failures are returned as
// text for the model to react to, never as loop errors.
func (l *Loop) runExplorationTool(ctx context.Context, pr probe, req Request, res *Result, call llm.ToolCall) string {
	switch call.Name {
	case toolSearchParameters:
		term := argString(call.Args, "term")
		limit := clampSearchLimit(argInt(call.Args, "limit", maxSearchLimit))
		matches, err := database.SearchParameterNames(ctx, pr.q, term, l.similarity, limit)
		return toolJSON(matches, err)

	case toolSearchAnalytes:
		term := argString(call.Args, "term")
		limit := clampSearchLimit(argInt(call.Args, "limit", maxSearchLimit))
		matches, err := database.SearchAnalyteNames(ctx, pr.q, term, l.similarity, limit)
		return toolJSON(matches, err)

	case toolExecuteSQL:
		return l.executeProbe(ctx, pr, req, call.Args)

	case toolShowPlot:
		res.Displays = append(res.Displays, Display{
			Kind:            "plot",
			Title:           argString(call.Args, "plot_title"),
			Data:            call.Args["data"],
			ReplacePrevious: argBool(call.Args, "replace_previous"),
			Thumbnail:       argBool(call.Args, "thumbnail"),
		})
		return `{"displayed": true}`

	case toolShowTable:
		res.Displays = append(res.Displays, Display{
			Kind:            "table",
			Title:           argString(call.Args, "table_title"),
			Data:            call.Args["data"],
			ReplacePrevious: argBool(call.Args, "replace_previous"),
		})
		return `{"displayed": true}`

	default:
		return fmt.Sprintf(`{"error": "unknown tool %q"}`, call.Name)
	}
}

// executeProbe validates and runs an exploration query on the user-scoped
// connection, returning its rows as JSON.
func (l *Loop) executeProbe(ctx context.Context, pr probe, req Request, args map[string]any) string {
	var mode sqlval.QueryMode
	switch argString(args, "query_type") {
	case "explore":
		mode = sqlval.ModeExplore
	case "plot":
		mode = sqlval.ModePlot
	case "table":
		mode = sqlval.ModeTable
	default:
		return `{"error": "query_type must be explore, plot or table"}`
	}

	cleaned := sqlval.StripTrailingLineComments(argString(args, "sql"))
	verdict := l.validator.Validate(ctx, cleaned, sqlval.Options{
		Mode:      mode,
		Patient:   l.patientScope(req),
		Explainer: pr.explainer,
	})
	if !verdict.Valid {
		out, _ := json.Marshal(map[string]any{"violations": verdict.Violations})
		return string(out)
	}

	rows, err := queryRows(ctx, pr.q, verdict.SQLWithLimit)
	if err != nil {
		return toolJSON(nil, err)
	}
	return toolJSON(map[string]any{"rows": rows, "row_count": len(rows)}, nil)
}

// queryRows runs a validated statement and collects up to maxProbeRows rows
// as generic maps.
func queryRows(ctx context.Context, q database.Querier, sqlText string) ([]map[string]any, error) {
	rows, err := q.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for rows.Next() && len(out) < maxProbeRows {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				rec[col] = string(b)
			} else {
				rec[col] = vals[i]
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func toolJSON(v any, err error) string {
	if err != nil {
		out, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(out)
	}
	out, jerr := json.Marshal(v)
	if jerr != nil {
		return `{"error": "could not serialize tool result"}`
	}
	return string(out)
}

func clampSearchLimit(n int) int {
	if n < 1 || n > maxSearchLimit {
		return maxSearchLimit
	}
	return n
}

var tableNamePattern = regexp.MustCompile(`(?i)\b(?:from|join)\s+([a-z_][a-z0-9_]*)`)

// tableNames extracts the referenced table names from an accepted statement
// to feed the schema MRU.
func tableNames(sqlText string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range tableNamePattern.FindAllStringSubmatch(sqlval.StripComments(sqlText), -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
