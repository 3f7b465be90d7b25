package agentic

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labdex/labdex/pkg/llm"
	"github.com/labdex/labdex/pkg/sqlval"
)

type fakeChat struct {
	completions []*llm.Completion
	errs        []error
	requests    []llm.CompleteRequest
}

func (f *fakeChat) Complete(_ context.Context, req llm.CompleteRequest) (*llm.Completion, error) {
	f.requests = append(f.requests, req)
	i := len(f.requests) - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.completions) {
		return &llm.Completion{}, nil
	}
	return f.completions[i], nil
}

func (f *fakeChat) GenerateStructured(context.Context, llm.StructuredRequest) (json.RawMessage, error) {
	return nil, errors.New("not implemented")
}

func newTestLoop(chat llm.Client, iterations int) *Loop {
	return &Loop{
		llm:           chat,
		model:         "test-model",
		validator:     sqlval.New(sqlval.DefaultLimits()),
		similarity:    0.3,
		maxIterations: iterations,
		timeout:       time.Minute,
	}
}

func runConverse(t *testing.T, l *Loop, req Request) *Result {
	t.Helper()
	res := &Result{Status: StatusNoFinalQuery}
	l.converse(context.Background(), probe{}, req, "TABLE lab_results (...)", res, time.Now().Add(time.Minute))
	return res
}

func finalCall(args map[string]any) llm.ToolCall {
	return llm.ToolCall{ID: "call-1", Name: toolFinalQuery, Args: args}
}

const validDataSQL = "SELECT parameter_name, numeric_result FROM lab_results LIMIT 10"

func TestLoop_FinalQueryAccepted(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql":         validDataSQL,
			"explanation": "lists measurements",
			"confidence":  0.9,
			"query_type":  QueryTypeData,
		})}},
	}}
	l := newTestLoop(chat, 5)

	res := runConverse(t, l, Request{UserID: "u1", Question: "what was measured?"})
	assert.Equal(t, StatusSuccess, res.Status)
	require.NotNil(t, res.Query)
	assert.Equal(t, validDataSQL, res.Query.SQL)
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 0.9, res.Query.Confidence, 1e-9)
}

func TestLoop_LimitClampedOnAccept(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql":         "SELECT parameter_name FROM lab_results LIMIT 9999",
			"explanation": "x",
			"confidence":  0.8,
			"query_type":  QueryTypeData,
		})}},
	}}
	res := runConverse(t, newTestLoop(chat, 5), Request{UserID: "u1", Question: "q"})

	assert.Equal(t, StatusSuccess, res.Status)
	require.NotNil(t, res.Query)
	assert.Equal(t, "SELECT parameter_name FROM lab_results LIMIT 50", res.Query.SQL)
}

func TestLoop_TrailingCommentStrippedBeforeValidation(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql":         validDataSQL + "; -- final answer",
			"explanation": "x",
			"confidence":  0.8,
			"query_type":  QueryTypeData,
		})}},
	}}
	res := runConverse(t, newTestLoop(chat, 5), Request{UserID: "u1", Question: "q"})

	assert.Equal(t, StatusSuccess, res.Status)
	require.NotNil(t, res.Query)
	assert.Equal(t, validDataSQL+";", res.Query.SQL)
}

func TestLoop_NudgeOnToolLessResponse(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{Text: "Let me think about this."},
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": validDataSQL, "explanation": "x", "confidence": 0.7,
			"query_type": QueryTypeData,
		})}},
	}}
	l := newTestLoop(chat, 5)

	res := runConverse(t, l, Request{UserID: "u1", Question: "q"})
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, 2, res.Iterations)

	// The second request must carry the nudge as the last user message.
	require.Len(t, chat.requests, 2)
	msgs := chat.requests[1].Messages
	assert.Equal(t, nudgeInstruction, msgs[len(msgs)-1].Content)
}

func TestLoop_ValidationRetryThenSuccess(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": "DELETE FROM lab_results", "explanation": "x",
			"confidence": 0.9, "query_type": QueryTypeData,
		})}},
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": validDataSQL, "explanation": "fixed", "confidence": 0.9,
			"query_type": QueryTypeData,
		})}},
	}}
	l := newTestLoop(chat, 5)

	res := runConverse(t, l, Request{UserID: "u1", Question: "q"})
	assert.Equal(t, StatusSuccess, res.Status)

	// The retry request carries the violation feedback as a tool result.
	require.Len(t, chat.requests, 2)
	msgs := chat.requests[1].Messages
	last := msgs[len(msgs)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Contains(t, last.Content, sqlval.CodeNotSelect)
}

func TestLoop_SecondValidationFailureTerminates(t *testing.T) {
	bad := map[string]any{
		"sql": "DROP TABLE lab_results", "explanation": "x",
		"confidence": 0.9, "query_type": QueryTypeData,
	}
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{finalCall(bad)}},
		{ToolCalls: []llm.ToolCall{finalCall(bad)}},
	}}
	res := runConverse(t, newTestLoop(chat, 5), Request{UserID: "u1", Question: "q"})

	assert.Equal(t, StatusValidationFailed, res.Status)
	assert.Nil(t, res.Query)
	assert.NotEmpty(t, res.Violations)
}

func TestLoop_PatientScopeEnforced(t *testing.T) {
	const patient = "11111111-1111-1111-1111-111111111111"
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": validDataSQL, "explanation": "x", "confidence": 0.9,
			"query_type": QueryTypeData,
		})}},
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": "SELECT parameter_name FROM lab_results WHERE patient_id = '" +
				patient + "' LIMIT 10",
			"explanation": "scoped", "confidence": 0.9, "query_type": QueryTypeData,
		})}},
	}}
	l := newTestLoop(chat, 5)

	res := runConverse(t, l, Request{
		UserID: "u1", Question: "q",
		SelectedPatientID: patient, PatientCount: 2,
	})
	assert.Equal(t, StatusSuccess, res.Status)

	require.Len(t, chat.requests, 2)
	msgs := chat.requests[1].Messages
	assert.Contains(t, msgs[len(msgs)-1].Content, sqlval.CodePatientScope)
}

const validPlotSQL = "SELECT EXTRACT(EPOCH FROM measured_at)::bigint * 1000 AS t, " +
	"numeric_result::numeric AS y FROM lab_results ORDER BY t ASC LIMIT 500"

func TestLoop_PlotMetadataRetryThenDefaults(t *testing.T) {
	noMeta := map[string]any{
		"sql": validPlotSQL, "explanation": "trend", "confidence": 0.8,
		"query_type": QueryTypePlot,
	}
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{finalCall(noMeta)}},
		{ToolCalls: []llm.ToolCall{finalCall(noMeta)}},
	}}
	l := newTestLoop(chat, 5)

	res := runConverse(t, l, Request{UserID: "u1", Question: "plot it"})
	assert.Equal(t, StatusSuccess, res.Status)
	require.NotNil(t, res.Query)
	require.NotNil(t, res.Query.PlotMetadata)
	assert.Equal(t, "t", res.Query.PlotMetadata.XAxis)
	assert.Equal(t, "y", res.Query.PlotMetadata.YAxis)
	assert.Equal(t, "unit", res.Query.PlotMetadata.SeriesBy)

	// First response was answered with the metadata retry prompt.
	require.Len(t, chat.requests, 2)
	msgs := chat.requests[1].Messages
	assert.Contains(t, msgs[len(msgs)-1].Content, "plot_metadata")
}

func TestLoop_PlotMetadataSuppliedFirstTime(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": validPlotSQL, "explanation": "trend", "confidence": 0.8,
			"query_type": QueryTypePlot,
			"plot_metadata": map[string]any{
				"x_axis": "t", "y_axis": "y", "series_by": "parameter_name",
			},
		})}},
	}}
	res := runConverse(t, newTestLoop(chat, 5), Request{UserID: "u1", Question: "plot"})

	assert.Equal(t, StatusSuccess, res.Status)
	require.NotNil(t, res.Query.PlotMetadata)
	assert.Equal(t, "parameter_name", res.Query.PlotMetadata.SeriesBy)
}

func TestLoop_ForcedCompletionRestrictsTools(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		// Burns the only iteration on a display tool.
		{ToolCalls: []llm.ToolCall{{ID: "c1", Name: toolShowTable, Args: map[string]any{
			"data": []any{}, "table_title": "partial",
		}}}},
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": validDataSQL, "explanation": "x", "confidence": 0.6,
			"query_type": QueryTypeData,
		})}},
	}}
	l := newTestLoop(chat, 1)

	res := runConverse(t, l, Request{UserID: "u1", Question: "q"})
	assert.Equal(t, StatusSuccess, res.Status)

	require.Len(t, chat.requests, 2)
	forced := chat.requests[1]
	assert.True(t, forced.ToolChoice.Required)
	assert.Equal(t, []string{toolFinalQuery}, forced.ToolChoice.Only)
}

func TestLoop_ForcedCompletionWithoutFinalQuery(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{Text: "hmm"},
		{Text: "still no tool call"},
	}}
	res := runConverse(t, newTestLoop(chat, 1), Request{UserID: "u1", Question: "q"})
	assert.Equal(t, StatusNoFinalQuery, res.Status)
}

func TestLoop_ForcedFinalStillValidated(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{Text: "thinking"},
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": "TRUNCATE lab_results", "explanation": "x",
			"confidence": 0.5, "query_type": QueryTypeData,
		})}},
	}}
	res := runConverse(t, newTestLoop(chat, 1), Request{UserID: "u1", Question: "q"})

	assert.Equal(t, StatusValidationFailed, res.Status)
	assert.NotEmpty(t, res.Violations)
}

func TestLoop_TimeoutBeforeFirstIteration(t *testing.T) {
	chat := &fakeChat{}
	l := newTestLoop(chat, 5)

	res := &Result{Status: StatusNoFinalQuery}
	l.converse(context.Background(), probe{}, Request{UserID: "u1", Question: "q"},
		"schema", res, time.Now().Add(-time.Second))

	assert.Equal(t, StatusTimeout, res.Status)
	assert.Empty(t, chat.requests)
}

func TestLoop_ModelErrorTerminates(t *testing.T) {
	chat := &fakeChat{errs: []error{errors.New("overloaded")}}
	res := runConverse(t, newTestLoop(chat, 5), Request{UserID: "u1", Question: "q"})
	assert.Equal(t, StatusNoFinalQuery, res.Status)
}

func TestLoop_DisplaysCollected(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{
			{ID: "c1", Name: toolShowPlot, Args: map[string]any{
				"data":       []any{map[string]any{"t": 1.0, "y": 2.0}},
				"plot_title": "Hemoglobin over time",
			}},
			{ID: "c2", Name: toolShowTable, Args: map[string]any{
				"data": []any{}, "table_title": "Raw values", "replace_previous": true,
			}},
			finalCall(map[string]any{
				"sql": validDataSQL, "explanation": "x", "confidence": 0.9,
				"query_type": QueryTypeData,
			}),
		}},
	}}
	res := runConverse(t, newTestLoop(chat, 5), Request{UserID: "u1", Question: "q"})

	assert.Equal(t, StatusSuccess, res.Status)
	require.Len(t, res.Displays, 2)
	assert.Equal(t, "plot", res.Displays[0].Kind)
	assert.Equal(t, "Hemoglobin over time", res.Displays[0].Title)
	assert.Equal(t, "table", res.Displays[1].Kind)
	assert.True(t, res.Displays[1].ReplacePrevious)
}

func TestLoop_InvalidProbeFeedsViolationsBack(t *testing.T) {
	chat := &fakeChat{completions: []*llm.Completion{
		{ToolCalls: []llm.ToolCall{{ID: "c1", Name: toolExecuteSQL, Args: map[string]any{
			"sql": "UPDATE lab_results SET numeric_result = 0",
			"reasoning": "probe", "query_type": "explore",
		}}}},
		{ToolCalls: []llm.ToolCall{finalCall(map[string]any{
			"sql": validDataSQL, "explanation": "x", "confidence": 0.9,
			"query_type": QueryTypeData,
		})}},
	}}
	l := newTestLoop(chat, 5)

	res := runConverse(t, l, Request{UserID: "u1", Question: "q"})
	assert.Equal(t, StatusSuccess, res.Status)

	require.Len(t, chat.requests, 2)
	msgs := chat.requests[1].Messages
	last := msgs[len(msgs)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Contains(t, last.Content, sqlval.CodeNotSelect)
}

func TestTableNames(t *testing.T) {
	names := tableNames("SELECT r.parameter_name FROM lab_results r " +
		"JOIN patient_reports pr ON pr.id = r.report_id " +
		"JOIN lab_results lr2 ON lr2.id = r.id -- from audit_logs")
	assert.Equal(t, []string{"lab_results", "patient_reports"}, names)
}

func TestClampSearchLimit(t *testing.T) {
	assert.Equal(t, 10, clampSearchLimit(10))
	assert.Equal(t, maxSearchLimit, clampSearchLimit(0))
	assert.Equal(t, maxSearchLimit, clampSearchLimit(-1))
	assert.Equal(t, maxSearchLimit, clampSearchLimit(500))
}

func TestParseFinalQuery(t *testing.T) {
	fq := parseFinalQuery(map[string]any{
		"sql":         "SELECT 1",
		"explanation": "trivial",
		"confidence":  0.42,
		"query_type":  QueryTypePlot,
		"plot_title":  "T",
		"plot_metadata": map[string]any{
			"x_axis": "t", "y_axis": "y", "series_by": "unit",
		},
	})
	assert.Equal(t, "SELECT 1", fq.SQL)
	assert.InDelta(t, 0.42, fq.Confidence, 1e-9)
	require.NotNil(t, fq.PlotMetadata)
	assert.Equal(t, "unit", fq.PlotMetadata.SeriesBy)

	empty := parseFinalQuery(map[string]any{"sql": "SELECT 1", "query_type": QueryTypeData})
	assert.Nil(t, empty.PlotMetadata)
}
