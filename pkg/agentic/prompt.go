package agentic

import (
	"fmt"
	"strings"

	"github.com/labdex/labdex/pkg/sqlval"
)

const systemPreamble = `You translate a user's question about their laboratory
results into one final, read-only PostgreSQL SELECT statement.

Rules:
- Use the tools to explore before committing. Parameter names in lab_results
  are raw lab labels; search for them rather than guessing.
- Only SELECT statements. No writes, no DDL, no locking clauses.
- When you have the answer, call generate_final_query exactly once.
- Plot queries must project the timestamp as t using
  EXTRACT(EPOCH FROM <ts>)::bigint * 1000, the value as y cast ::numeric,
  and ORDER BY t ASC. Supply plot_metadata naming x_axis, y_axis, series_by.`

const nudgeInstruction = `Continue. Either call an exploration tool or emit the
final query with generate_final_query.`

const forcedInstruction = `You are out of exploration budget. Call
generate_final_query now with your best statement.`

// buildSystemPrompt assembles the system message from the rendered schema
// section and the session's patient context.
func buildSystemPrompt(schemaSection, selectedPatientID string, patientCount int) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\nDatabase schema:\n")
	b.WriteString(schemaSection)

	switch {
	case selectedPatientID != "" && patientCount > 1:
		fmt.Fprintf(&b, "\nThe user manages %d patients and has selected one. "+
			"Every data query must filter WHERE patient_id = '%s'.\n",
			patientCount, selectedPatientID)
	case selectedPatientID != "":
		fmt.Fprintf(&b, "\nThe selected patient id is '%s'.\n", selectedPatientID)
	}
	return b.String()
}

// violationFeedback renders validator violations as a tool result the model
// can act on in its single retry.
func violationFeedback(violations []sqlval.Violation) string {
	var b strings.Builder
	b.WriteString("The statement was rejected. Fix every violation and call " +
		"generate_final_query again:\n")
	for _, v := range violations {
		fmt.Fprintf(&b, "- [%s] %s", v.Code, v.Message)
		if v.Detail != "" {
			fmt.Fprintf(&b, " (%s)", v.Detail)
		}
		b.WriteString("\n")
	}
	return b.String()
}
