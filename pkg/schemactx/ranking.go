package schemactx

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	sectionTokenBudget = 6000
	maxTables          = 25
	maxColumnsPerTable = 60
)

// entityAliases maps domain words a user is likely to type to the tables
// that hold them. Ranking starts from these hits.
var entityAliases = map[string][]string{
	"patient":     {"patients"},
	"report":      {"patient_reports"},
	"document":    {"patient_reports"},
	"result":      {"lab_results"},
	"measurement": {"lab_results"},
	"value":       {"lab_results"},
	"test":        {"lab_results", "analytes"},
	"analyte":     {"analytes", "analyte_aliases"},
	"parameter":   {"lab_results", "analytes"},
	"marker":      {"analytes"},
	"unit":        {"unit_aliases"},
	"alias":       {"analyte_aliases", "unit_aliases"},
	"email":       {"gmail_report_provenance"},
	"gmail":       {"gmail_report_provenance"},
	"chat":        {"chat_sessions"},
	"session":     {"sessions", "chat_sessions"},
	"review":      {"match_reviews", "unit_reviews"},
}

// suppressedColumns are too common to signal intent; matching them earns no
// column score.
var suppressedColumns = map[string]bool{
	"id": true, "user_id": true, "created_at": true, "updated_at": true,
	"status": true, "name": true, "type": true,
}

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Section is the rendered schema context plus its truncation report.
type Section struct {
	Text           string
	SnapshotID     string
	TablesIncluded int
	Truncated      bool
	OmittedTables  []string
	OmittedColumns map[string]int
}

type scoredTable struct {
	table *Table
	score float64
}

// BuildSchemaSection renders the ranked, budgeted schema section for the
// given question.
func (c *Cache) BuildSchemaSection(m *Manifest, question string) Section {
	mru := c.mruSnapshot()
	tokens := questionTokens(question)

	scored := make([]scoredTable, 0, len(m.Tables))
	for i := range m.Tables {
		t := &m.Tables[i]
		scored = append(scored, scoredTable{table: t, score: tableScore(t, tokens, mru)})
	}

	// FK proximity: a table referencing or referenced by a high-ranked table
	// gets a fraction of that table's score.
	base := make(map[string]float64, len(scored))
	for _, st := range scored {
		base[st.table.Name] = st.score
	}
	for i := range scored {
		for _, fk := range scored[i].table.ForeignKeys {
			scored[i].score += base[fk.RefTable] * 0.25
			if j := indexOfTable(scored, fk.RefTable); j >= 0 {
				scored[j].score += base[scored[i].table.Name] * 0.25
			}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].table.Name < scored[j].table.Name
	})

	sec := Section{
		SnapshotID:     m.SnapshotID,
		OmittedColumns: map[string]int{},
	}

	var b strings.Builder
	budget := sectionTokenBudget
	for _, st := range scored {
		if sec.TablesIncluded >= maxTables || budget <= 0 {
			sec.Truncated = true
			sec.OmittedTables = append(sec.OmittedTables, st.table.Name)
			continue
		}

		rendered, omitted := renderTable(st.table, tokens)
		cost := estimateTokens(rendered)
		if cost > budget && sec.TablesIncluded > 0 {
			sec.Truncated = true
			sec.OmittedTables = append(sec.OmittedTables, st.table.Name)
			continue
		}

		b.WriteString(rendered)
		budget -= cost
		sec.TablesIncluded++
		if omitted > 0 {
			sec.Truncated = true
			sec.OmittedColumns[st.table.Name] = omitted
		}
	}

	if sec.Truncated {
		fmt.Fprintf(&b, "-- %d tables omitted for brevity\n", len(sec.OmittedTables))
	}
	sec.Text = b.String()
	return sec
}

func tableScore(t *Table, tokens map[string]int, mru map[string]bool) float64 {
	var score float64

	for token, freq := range tokens {
		for _, target := range entityAliases[token] {
			if target == t.Name {
				score += 3.0 * float64(freq)
			}
		}
		if token == t.Name || token+"s" == t.Name || token == strings.TrimSuffix(t.Name, "s") {
			score += 4.0 * float64(freq)
		}
	}

	for _, col := range t.Columns {
		if suppressedColumns[col.Name] {
			continue
		}
		if freq, ok := tokens[col.Name]; ok {
			score += 1.0 * float64(freq)
		}
	}

	if mru[t.Name] {
		score += 2.0
	}
	return score
}

// renderTable emits one table as a CREATE-style listing, keeping columns
// that match the question first and trimming past the per-table cap.
func renderTable(t *Table, tokens map[string]int) (text string, omitted int) {
	cols := make([]Column, len(t.Columns))
	copy(cols, t.Columns)
	sort.SliceStable(cols, func(i, j int) bool {
		_, mi := tokens[cols[i].Name]
		_, mj := tokens[cols[j].Name]
		return mi && !mj
	})

	if len(cols) > maxColumnsPerTable {
		omitted = len(cols) - maxColumnsPerTable
		cols = cols[:maxColumnsPerTable]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TABLE %s (\n", t.Name)
	for _, c := range cols {
		null := ""
		if !c.Nullable {
			null = " NOT NULL"
		}
		fmt.Fprintf(&b, "  %s %s%s,\n", c.Name, c.DataType, null)
	}
	for _, fk := range t.ForeignKeys {
		fmt.Fprintf(&b, "  FOREIGN KEY (%s) REFERENCES %s(%s),\n",
			fk.Column, fk.RefTable, fk.RefColumn)
	}
	b.WriteString(")\n")
	return b.String(), omitted
}

func questionTokens(question string) map[string]int {
	out := map[string]int{}
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(question), -1) {
		if len(tok) < 3 {
			continue
		}
		out[tok]++
	}
	return out
}

func indexOfTable(scored []scoredTable, name string) int {
	for i := range scored {
		if scored[i].table.Name == name {
			return i
		}
	}
	return -1
}

// estimateTokens approximates the model tokenizer at four characters per
// token.
func estimateTokens(s string) int {
	return len(s)/4 + 1
}
