package sqlval

import "regexp"

// Plot queries feed the chart renderer directly, so their shape is part of
// the contract: a bigint millisecond timestamp column t, a numeric column
// y, ordered by t ascending.
var (
	plotAliasT  = regexp.MustCompile(`(?i)\bas\s+t\b`)
	plotAliasY  = regexp.MustCompile(`(?i)\bas\s+y\b`)
	plotOrderBy = regexp.MustCompile(`(?i)\border\s+by\s+t\s+asc\b`)
	plotEpochT  = regexp.MustCompile(`(?i)extract\s*\(\s*epoch\s+from\s+[^)]+\)\s*::\s*bigint\s*\*\s*1000`)
	plotCastY   = regexp.MustCompile(`(?i)::\s*numeric\s+as\s+y\b`)
)

// plotShapeViolations checks the plot contract.
func plotShapeViolations(sqlText string) []Violation {
	masked := scanMask(StripComments(sqlText))

	var out []Violation
	if !plotAliasT.MatchString(masked) || !plotAliasY.MatchString(masked) {
		out = append(out, Violation{
			Code:    CodePlotShape,
			Message: "plot query must project columns aliased t and y",
		})
	}
	if !plotOrderBy.MatchString(masked) {
		out = append(out, Violation{
			Code:    CodePlotShape,
			Message: "plot query must include ORDER BY t ASC",
		})
	}
	if !plotEpochT.MatchString(masked) {
		out = append(out, Violation{
			Code:    CodePlotShape,
			Message: "t must be computed as EXTRACT(EPOCH FROM ...)::bigint * 1000",
		})
	}
	if !plotCastY.MatchString(masked) {
		out = append(out, Violation{
			Code:    CodePlotShape,
			Message: "y must be cast to numeric (…::numeric AS y)",
		})
	}
	return out
}
