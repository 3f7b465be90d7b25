// Package schemactx maintains a cached snapshot of the catalog schema and
// renders a ranked, token-budgeted schema section for SQL generation
// prompts.
package schemactx

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/labdex/labdex/pkg/database"
)

// Column describes one column of an introspected table.
type Column struct {
	Name     string
	DataType string
	Nullable bool
}

// ForeignKey links a column to the table it references.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table is one introspected table with its columns and outbound FKs.
type Table struct {
	Schema      string
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// Manifest is a point-in-time view of the whitelisted schemas.
type Manifest struct {
	SnapshotID string
	FetchedAt  time.Time
	Tables     []Table
}

func (m *Manifest) table(name string) *Table {
	for i := range m.Tables {
		if m.Tables[i].Name == name {
			return &m.Tables[i]
		}
	}
	return nil
}

// Introspect reads tables, columns and foreign keys for the given schemas
// and computes the snapshot id over the serialized result.
func Introspect(ctx context.Context, q database.Querier, schemas []string) (*Manifest, error) {
	if len(schemas) == 0 {
		schemas = []string{"public"}
	}

	tables := map[string]*Table{}
	var order []string

	rows, err := q.QueryContext(ctx, `
		SELECT table_schema, table_name, column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = ANY($1)
		ORDER BY table_schema, table_name, ordinal_position`, schemaArray(schemas))
	if err != nil {
		return nil, fmt.Errorf("introspect columns: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schema, table, column, dataType, nullable string
		if err := rows.Scan(&schema, &table, &column, &dataType, &nullable); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		t, ok := tables[table]
		if !ok {
			t = &Table{Schema: schema, Name: table}
			tables[table] = t
			order = append(order, table)
		}
		t.Columns = append(t.Columns, Column{
			Name:     column,
			DataType: dataType,
			Nullable: nullable == "YES",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column rows: %w", err)
	}

	fkRows, err := q.QueryContext(ctx, `
		SELECT tc.table_name, kcu.column_name, ccu.table_name, ccu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON kcu.constraint_name = tc.constraint_name
			AND kcu.table_schema = tc.table_schema
		JOIN information_schema.constraint_column_usage ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = ANY($1)`, schemaArray(schemas))
	if err != nil {
		return nil, fmt.Errorf("introspect foreign keys: %w", err)
	}
	defer fkRows.Close()

	for fkRows.Next() {
		var table, column, refTable, refColumn string
		if err := fkRows.Scan(&table, &column, &refTable, &refColumn); err != nil {
			return nil, fmt.Errorf("scan fk row: %w", err)
		}
		if t, ok := tables[table]; ok {
			t.ForeignKeys = append(t.ForeignKeys, ForeignKey{
				Column:    column,
				RefTable:  refTable,
				RefColumn: refColumn,
			})
		}
	}
	if err := fkRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fk rows: %w", err)
	}

	sort.Strings(order)
	m := &Manifest{FetchedAt: time.Now()}
	for _, name := range order {
		m.Tables = append(m.Tables, *tables[name])
	}
	m.SnapshotID = snapshotID(m)
	return m, nil
}

// snapshotID hashes the manifest's structural content. Fetch time is
// excluded so identical schemas always yield identical ids.
func snapshotID(m *Manifest) string {
	h := sha256.New()
	for _, t := range m.Tables {
		fmt.Fprintf(h, "table %s.%s\n", t.Schema, t.Name)
		for _, c := range t.Columns {
			fmt.Fprintf(h, "col %s %s %v\n", c.Name, c.DataType, c.Nullable)
		}
		for _, fk := range t.ForeignKeys {
			fmt.Fprintf(h, "fk %s -> %s.%s\n", fk.Column, fk.RefTable, fk.RefColumn)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// schemaArray renders a Postgres text[] literal for ANY($1).
func schemaArray(schemas []string) string {
	escaped := make([]string, len(schemas))
	for i, s := range schemas {
		escaped[i] = `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return "{" + strings.Join(escaped, ",") + "}"
}
