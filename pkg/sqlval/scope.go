package sqlval

import (
	"regexp"
	"strings"
)

// hasPatientScope reports whether the statement filters by the selected
// patient id, either as an equality predicate or inside an IN list. RLS
// remains the hard boundary; this check runs in addition to it.
func hasPatientScope(sqlText, patientID string) bool {
	if patientID == "" {
		return false
	}
	masked := StripComments(sqlText)
	lower := strings.ToLower(masked)
	id := regexp.QuoteMeta(strings.ToLower(patientID))

	eq := regexp.MustCompile(`patient_id\s*=\s*'` + id + `'`)
	if eq.MatchString(lower) {
		return true
	}
	in := regexp.MustCompile(`patient_id\s+in\s*\([^)]*'` + id + `'[^)]*\)`)
	return in.MatchString(lower)
}
