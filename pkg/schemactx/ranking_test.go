package schemactx

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest() *Manifest {
	m := &Manifest{
		FetchedAt: time.Now(),
		Tables: []Table{
			{
				Schema: "public",
				Name:   "patients",
				Columns: []Column{
					{Name: "id", DataType: "uuid"},
					{Name: "display_name", DataType: "text"},
					{Name: "date_of_birth", DataType: "date", Nullable: true},
				},
			},
			{
				Schema: "public",
				Name:   "lab_results",
				Columns: []Column{
					{Name: "id", DataType: "uuid"},
					{Name: "report_id", DataType: "uuid"},
					{Name: "parameter_name", DataType: "text"},
					{Name: "value", DataType: "numeric", Nullable: true},
					{Name: "unit", DataType: "text", Nullable: true},
				},
				ForeignKeys: []ForeignKey{
					{Column: "report_id", RefTable: "patient_reports", RefColumn: "id"},
				},
			},
			{
				Schema: "public",
				Name:   "patient_reports",
				Columns: []Column{
					{Name: "id", DataType: "uuid"},
					{Name: "patient_id", DataType: "uuid"},
					{Name: "report_date", DataType: "date", Nullable: true},
				},
				ForeignKeys: []ForeignKey{
					{Column: "patient_id", RefTable: "patients", RefColumn: "id"},
				},
			},
			{
				Schema: "public",
				Name:   "audit_logs",
				Columns: []Column{
					{Name: "id", DataType: "bigint"},
					{Name: "action", DataType: "text"},
				},
			},
		},
	}
	m.SnapshotID = snapshotID(m)
	return m
}

func sectionOrder(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "TABLE ") {
			out = append(out, strings.TrimSuffix(strings.TrimPrefix(line, "TABLE "), " ("))
		}
	}
	return out
}

func TestBuildSchemaSection_RanksByQuestion(t *testing.T) {
	c := NewCache(nil, nil, time.Minute)
	m := testManifest()

	sec := c.BuildSchemaSection(m, "show my hemoglobin measurement values over time")
	order := sectionOrder(sec.Text)
	require.NotEmpty(t, order)
	// "measurement" and "value" both point at lab_results.
	assert.Equal(t, "lab_results", order[0])
	assert.Contains(t, sec.Text, "parameter_name text")
	assert.Contains(t, sec.Text, "FOREIGN KEY (report_id) REFERENCES patient_reports(id)")
}

func TestBuildSchemaSection_FKProximity(t *testing.T) {
	c := NewCache(nil, nil, time.Minute)
	m := testManifest()

	sec := c.BuildSchemaSection(m, "latest report for each patient")
	order := sectionOrder(sec.Text)
	require.GreaterOrEqual(t, len(order), 3)
	// lab_results references patient_reports, so it outranks the unrelated
	// audit table even though the question never mentions results.
	assert.Less(t, indexOf(order, "lab_results"), indexOf(order, "audit_logs"))
}

func TestBuildSchemaSection_MRUBonus(t *testing.T) {
	c := NewCache(nil, nil, time.Minute)
	m := testManifest()

	neutral := "anything at all"
	before := sectionOrder(c.BuildSchemaSection(m, neutral).Text)

	c.TouchTables("patients")
	after := sectionOrder(c.BuildSchemaSection(m, neutral).Text)

	assert.Less(t, indexOf(after, "patients"), indexOf(before, "patients"))
}

func TestBuildSchemaSection_TruncatesAtTableCap(t *testing.T) {
	c := NewCache(nil, nil, time.Minute)
	m := &Manifest{FetchedAt: time.Now()}
	for i := 0; i < maxTables+5; i++ {
		m.Tables = append(m.Tables, Table{
			Schema:  "public",
			Name:    fmt.Sprintf("t_%02d", i),
			Columns: []Column{{Name: "id", DataType: "bigint"}},
		})
	}

	sec := c.BuildSchemaSection(m, "whatever")
	assert.True(t, sec.Truncated)
	assert.Equal(t, maxTables, sec.TablesIncluded)
	assert.Len(t, sec.OmittedTables, 5)
	assert.Contains(t, sec.Text, "5 tables omitted")
}

func TestBuildSchemaSection_TrimsWideTables(t *testing.T) {
	c := NewCache(nil, nil, time.Minute)
	wide := Table{Schema: "public", Name: "wide"}
	for i := 0; i < maxColumnsPerTable+10; i++ {
		wide.Columns = append(wide.Columns, Column{
			Name:     fmt.Sprintf("c_%03d", i),
			DataType: "text",
		})
	}
	m := &Manifest{FetchedAt: time.Now(), Tables: []Table{wide}}

	sec := c.BuildSchemaSection(m, "c_069 please")
	assert.True(t, sec.Truncated)
	assert.Equal(t, 10, sec.OmittedColumns["wide"])
	// The matching column survives trimming because matches sort first.
	assert.Contains(t, sec.Text, "c_069")
}

func TestSnapshotID_Deterministic(t *testing.T) {
	a := testManifest()
	b := testManifest()
	assert.Equal(t, a.SnapshotID, b.SnapshotID)

	b.Tables[0].Columns = append(b.Tables[0].Columns, Column{Name: "extra", DataType: "text"})
	assert.NotEqual(t, a.SnapshotID, snapshotID(b))
}

func TestAppendMRU(t *testing.T) {
	var ring []string
	for i := 0; i < mruSize+3; i++ {
		ring = appendMRU(ring, fmt.Sprintf("t%d", i))
	}
	assert.Len(t, ring, mruSize)
	assert.Equal(t, fmt.Sprintf("t%d", mruSize+2), ring[0])

	// Re-touching moves to front without growing.
	ring = appendMRU(ring, ring[len(ring)-1])
	assert.Len(t, ring, mruSize)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return len(s)
}
