package sqlval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *Validator {
	return New(DefaultLimits())
}

func codes(res Result) []string {
	out := make([]string, 0, len(res.Violations))
	for _, v := range res.Violations {
		out = append(out, v.Code)
	}
	return out
}

func TestValidate_RejectsNonSelect(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		sql  string
		code string
	}{
		{"insert", "INSERT INTO lab_results VALUES (1)", CodeNotSelect},
		{"update", "UPDATE patients SET name = 'x'", CodeNotSelect},
		{"delete", "DELETE FROM patients", CodeNotSelect},
		{"truncate", "TRUNCATE lab_results", CodeNotSelect},
		{"empty", "   ", CodeEmptyStatement},
		{"comment only", "-- nothing here", CodeEmptyStatement},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := v.Validate(context.Background(), tc.sql, Options{Mode: ModeData})
			assert.False(t, res.Valid)
			assert.Contains(t, codes(res), tc.code)
		})
	}
}

func TestValidate_ForbiddenKeywords(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		sql  string
		code string
	}{
		{"cte smuggled delete", "WITH x AS (DELETE FROM patients RETURNING *) SELECT * FROM x", CodeForbiddenKeyword},
		{"select into", "SELECT * INTO evil FROM lab_results", CodeForbiddenKeyword},
		{"for update", "SELECT * FROM lab_results FOR UPDATE", CodeForbiddenKeyword},
		{"lock", "LOCK TABLE lab_results", CodeForbiddenKeyword},
		{"notify", "SELECT 1; NOTIFY chan", CodeForbiddenKeyword},
		{"set", "SET search_path TO public", CodeForbiddenKeyword},
		{"pg_sleep", "SELECT pg_sleep(10)", CodeForbiddenFunction},
		{"pg_read_file", "SELECT pg_read_file('/etc/passwd')", CodeForbiddenFunction},
		{"dblink", "SELECT dblink_connect('host=evil')", CodeForbiddenFunction},
		{"pg_temp", "SELECT * FROM pg_temp.t", CodeSystemSchema},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := v.Validate(context.Background(), tc.sql, Options{Mode: ModeData})
			assert.False(t, res.Valid)
			assert.Contains(t, codes(res), tc.code)
		})
	}
}

func TestValidate_KeywordInsideLiteralOrCommentIsFine(t *testing.T) {
	v := newTestValidator()

	tests := []string{
		"SELECT * FROM lab_results WHERE parameter_name = 'DELETE ME' LIMIT 10",
		"SELECT value FROM lab_results -- was an UPDATE once\n LIMIT 10",
		"SELECT /* DROP nothing */ value FROM lab_results LIMIT 10",
	}

	for _, sqlText := range tests {
		res := v.Validate(context.Background(), sqlText, Options{Mode: ModeData})
		assert.True(t, res.Valid, "should pass: %s", sqlText)
	}
}

func TestValidate_Placeholders(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		sql  string
		bad  bool
	}{
		{"named", "SELECT * FROM lab_results WHERE patient_id = :pid", true},
		{"dollar", "SELECT * FROM lab_results WHERE patient_id = $1", true},
		{"question mark", "SELECT * FROM lab_results WHERE patient_id = ?", true},
		{"typecast is fine", "SELECT value::numeric FROM lab_results LIMIT 5", false},
		{"colon in literal is fine", "SELECT * FROM lab_results WHERE note = 'time: 10:30' LIMIT 5", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := v.Validate(context.Background(), tc.sql, Options{Mode: ModeData})
			if tc.bad {
				assert.Contains(t, codes(res), CodePlaceholderSyntax)
			} else {
				assert.True(t, res.Valid)
			}
		})
	}
}

func TestValidate_MultipleStatements(t *testing.T) {
	v := newTestValidator()

	res := v.Validate(context.Background(),
		"SELECT 1; DROP TABLE patients", Options{Mode: ModeData})
	assert.Contains(t, codes(res), CodeMultipleStatements)

	// A single trailing semicolon is allowed.
	res = v.Validate(context.Background(),
		"SELECT value FROM lab_results LIMIT 5;", Options{Mode: ModeData})
	assert.True(t, res.Valid)
}

func TestValidate_ComplexityCaps(t *testing.T) {
	v := newTestValidator()

	joins := "SELECT a.id FROM t a" +
		strings.Repeat(" JOIN t b ON a.id = b.id", 6) + " LIMIT 5"
	res := v.Validate(context.Background(), joins, Options{Mode: ModeData})
	assert.Contains(t, codes(res), CodeTooManyJoins)

	nested := "SELECT * FROM (SELECT * FROM (SELECT * FROM (SELECT 1) a) b) c LIMIT 5"
	res = v.Validate(context.Background(), nested, Options{Mode: ModeData})
	assert.Contains(t, codes(res), CodeSubqueryNesting)

	// Function-call parens do not count toward nesting depth.
	funcs := "SELECT count(*), avg(coalesce(value, 0)) FROM (SELECT value FROM lab_results) s LIMIT 5"
	res = v.Validate(context.Background(), funcs, Options{Mode: ModeData})
	assert.True(t, res.Valid)

	var aggs []string
	for i := 0; i < 11; i++ {
		aggs = append(aggs, fmt.Sprintf("sum(c%d)", i))
	}
	res = v.Validate(context.Background(),
		"SELECT "+strings.Join(aggs, ", ")+" FROM lab_results LIMIT 5", Options{Mode: ModeData})
	assert.Contains(t, codes(res), CodeTooManyAggregates)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		ceiling int
		want    string
	}{
		{
			name:    "compliant unchanged",
			sql:     "SELECT * FROM lab_results LIMIT 10",
			ceiling: 50,
			want:    "SELECT * FROM lab_results LIMIT 10",
		},
		{
			name:    "too high rewritten",
			sql:     "SELECT * FROM lab_results LIMIT 9999",
			ceiling: 50,
			want:    "SELECT * FROM lab_results LIMIT 50",
		},
		{
			name:    "missing appended",
			sql:     "SELECT * FROM lab_results",
			ceiling: 20,
			want:    "SELECT * FROM lab_results LIMIT 20",
		},
		{
			name:    "semicolon preserved on append",
			sql:     "SELECT * FROM lab_results;",
			ceiling: 20,
			want:    "SELECT * FROM lab_results LIMIT 20;",
		},
		{
			name:    "semicolon preserved on rewrite",
			sql:     "SELECT * FROM lab_results LIMIT 500;",
			ceiling: 50,
			want:    "SELECT * FROM lab_results LIMIT 50;",
		},
		{
			name:    "inner limit ignored",
			sql:     "SELECT * FROM (SELECT * FROM lab_results LIMIT 9999) s",
			ceiling: 50,
			want:    "SELECT * FROM (SELECT * FROM lab_results LIMIT 9999) s LIMIT 50",
		},
		{
			name:    "limit word inside literal ignored",
			sql:     "SELECT * FROM lab_results WHERE note = 'LIMIT 9999'",
			ceiling: 50,
			want:    "SELECT * FROM lab_results WHERE note = 'LIMIT 9999' LIMIT 50",
		},
		{
			name:    "outer limit after inner rewritten",
			sql:     "SELECT * FROM (SELECT 1 LIMIT 3) s LIMIT 800",
			ceiling: 50,
			want:    "SELECT * FROM (SELECT 1 LIMIT 3) s LIMIT 50",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clampLimit(tc.sql, tc.ceiling))
		})
	}
}

func TestValidate_PlotShape(t *testing.T) {
	v := newTestValidator()

	good := `SELECT EXTRACT(EPOCH FROM pr.report_date)::bigint * 1000 AS t,
		lr.value::numeric AS y
		FROM lab_results lr JOIN patient_reports pr ON pr.id = lr.report_id
		WHERE lr.analyte_id = 3
		ORDER BY t ASC LIMIT 1000`
	res := v.Validate(context.Background(), good, Options{Mode: ModePlot})
	assert.True(t, res.Valid)

	bad := "SELECT report_date AS t, value AS y FROM lab_results ORDER BY t DESC"
	res = v.Validate(context.Background(), bad, Options{Mode: ModePlot})
	assert.Contains(t, codes(res), CodePlotShape)

	// Plot checks do not apply to other modes.
	res = v.Validate(context.Background(),
		"SELECT value FROM lab_results LIMIT 5", Options{Mode: ModeTable})
	assert.True(t, res.Valid)
}

func TestValidate_PatientScope(t *testing.T) {
	v := newTestValidator()
	pid := "6c1a2f57-13a1-4d0e-9a10-2f2b4f9f1a9e"
	scope := PatientScope{Enforce: true, PatientID: pid}

	res := v.Validate(context.Background(),
		"SELECT value FROM lab_results LIMIT 5",
		Options{Mode: ModeData, Patient: scope})
	assert.Contains(t, codes(res), CodePatientScope)

	res = v.Validate(context.Background(),
		fmt.Sprintf("SELECT value FROM lab_results WHERE patient_id = '%s' LIMIT 5", pid),
		Options{Mode: ModeData, Patient: scope})
	assert.True(t, res.Valid)

	res = v.Validate(context.Background(),
		fmt.Sprintf("SELECT value FROM lab_results WHERE patient_id IN ('%s') LIMIT 5", pid),
		Options{Mode: ModeData, Patient: scope})
	assert.True(t, res.Valid)

	// Exploration queries are exempt.
	res = v.Validate(context.Background(),
		"SELECT DISTINCT parameter_name FROM lab_results LIMIT 20",
		Options{Mode: ModeExplore, Patient: scope})
	assert.True(t, res.Valid)
}

type fakeExplainer struct {
	plan string
	err  error
	last string
}

func (f *fakeExplainer) ExplainJSON(_ context.Context, sqlText string) (string, error) {
	f.last = sqlText
	return f.plan, f.err
}

func TestValidate_Explain(t *testing.T) {
	v := newTestValidator()

	t.Run("allowed root", func(t *testing.T) {
		ex := &fakeExplainer{plan: `[{"Plan":{"Node Type":"Limit"}}]`}
		res := v.Validate(context.Background(),
			"SELECT value FROM lab_results", Options{Mode: ModeData, Explainer: ex})
		require.True(t, res.Valid)
		// The clamped statement, not the raw one, is what gets explained.
		assert.Contains(t, ex.last, "LIMIT 50")
	})

	t.Run("forbidden root", func(t *testing.T) {
		ex := &fakeExplainer{plan: `[{"Plan":{"Node Type":"ModifyTable"}}]`}
		res := v.Validate(context.Background(),
			"SELECT value FROM lab_results LIMIT 5", Options{Mode: ModeData, Explainer: ex})
		assert.False(t, res.Valid)
		assert.Contains(t, codes(res), CodeForbiddenPlanNode)
	})

	t.Run("explain error", func(t *testing.T) {
		ex := &fakeExplainer{err: errors.New("relation does not exist")}
		res := v.Validate(context.Background(),
			"SELECT value FROM nope LIMIT 5", Options{Mode: ModeData, Explainer: ex})
		assert.False(t, res.Valid)
		assert.Contains(t, codes(res), CodeExplainFailed)
	})

	t.Run("static violations skip explain", func(t *testing.T) {
		ex := &fakeExplainer{plan: `[{"Plan":{"Node Type":"Limit"}}]`}
		res := v.Validate(context.Background(),
			"DELETE FROM patients", Options{Mode: ModeData, Explainer: ex})
		assert.False(t, res.Valid)
		assert.Empty(t, ex.last)
	})
}

func TestValidate_Bypass(t *testing.T) {
	t.Setenv("LABDEX_TEST_BYPASS_VALIDATOR", "1")
	v := newTestValidator()
	res := v.Validate(context.Background(), "DROP TABLE patients", Options{Mode: ModeData})
	assert.True(t, res.Valid)
}

func TestStripTrailingLineComments(t *testing.T) {
	in := "SELECT value FROM lab_results LIMIT 5; -- here are your results"
	assert.Equal(t, "SELECT value FROM lab_results LIMIT 5;", StripTrailingLineComments(in))

	// Real SQL after the semicolon is left for the validator to reject.
	multi := "SELECT 1; SELECT 2"
	assert.Equal(t, multi, StripTrailingLineComments(multi))

	plain := "SELECT value FROM lab_results LIMIT 5"
	assert.Equal(t, plain, StripTrailingLineComments(plain))
}

func TestValidate_ResultMetadata(t *testing.T) {
	v := newTestValidator()
	res := v.Validate(context.Background(),
		"SELECT value FROM lab_results LIMIT 5", Options{Mode: ModeData})
	assert.Equal(t, RuleVersion, res.RuleVersion)
	assert.Equal(t, Strategy, res.Strategy)
}
