package database

import (
	"context"
	"fmt"
)

// AliasMatch is one trigram hit against analyte_aliases, joined to its
// analyte for display.
type AliasMatch struct {
	AnalyteID   string
	Code        string
	Name        string
	Alias       string
	Similarity  float64
	CanonicalUn string
}

// SimilarAnalyteAliases returns the top aliases by trigram similarity to
// label, most similar first. label should already be normalized the way
// aliases are stored. Runs on any Querier: the alias catalog is shared, not
// tenant-scoped.
func SimilarAnalyteAliases(ctx context.Context, q Querier, label string, threshold float64, limit int) ([]AliasMatch, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT a.id, a.code, a.name, a.canonical_unit, aa.alias,
		       similarity(aa.alias, $1) AS sim
		FROM analyte_aliases aa
		JOIN analytes a ON a.id = aa.analyte_id
		WHERE similarity(aa.alias, $1) >= $2
		ORDER BY sim DESC, aa.alias ASC
		LIMIT $3`, label, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("trigram alias search: %w", err)
	}
	defer rows.Close()

	var out []AliasMatch
	for rows.Next() {
		var m AliasMatch
		if err := rows.Scan(&m.AnalyteID, &m.Code, &m.Name, &m.CanonicalUn, &m.Alias, &m.Similarity); err != nil {
			return nil, fmt.Errorf("scan alias match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ParameterNameMatch is one distinct raw parameter name from the user's own
// lab results, with its best similarity to the search term.
type ParameterNameMatch struct {
	ParameterName string
	Similarity    float64
	Occurrences   int
}

// SearchParameterNames fuzzy-searches distinct parameter_name values within
// the caller's RLS scope. q must be a user-scoped Tx or Conn; on the bare
// pool the policies return zero rows.
func SearchParameterNames(ctx context.Context, q Querier, term string, threshold float64, limit int) ([]ParameterNameMatch, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT parameter_name, max(similarity(parameter_name, $1)) AS sim, count(*)
		FROM lab_results
		WHERE similarity(parameter_name, $1) >= $2
		GROUP BY parameter_name
		ORDER BY sim DESC, parameter_name ASC
		LIMIT $3`, term, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("parameter name search: %w", err)
	}
	defer rows.Close()

	var out []ParameterNameMatch
	for rows.Next() {
		var m ParameterNameMatch
		if err := rows.Scan(&m.ParameterName, &m.Similarity, &m.Occurrences); err != nil {
			return nil, fmt.Errorf("scan parameter match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// AnalyteNameMatch is one analyte from the shared catalog matched by name,
// code or alias.
type AnalyteNameMatch struct {
	Code       string
	Name       string
	Unit       string
	Category   string
	Similarity float64
}

// SearchAnalyteNames fuzzy-searches the shared analyte catalog by name and
// alias text.
func SearchAnalyteNames(ctx context.Context, q Querier, term string, threshold float64, limit int) ([]AnalyteNameMatch, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT a.code, a.name, a.canonical_unit, coalesce(a.category, ''),
		       greatest(similarity(a.name, $1), similarity(a.code, $1),
		                coalesce(max(similarity(aa.alias, $1)), 0)) AS sim
		FROM analytes a
		LEFT JOIN analyte_aliases aa ON aa.analyte_id = a.id
		GROUP BY a.id, a.code, a.name, a.canonical_unit, a.category
		HAVING greatest(similarity(a.name, $1), similarity(a.code, $1),
		                coalesce(max(similarity(aa.alias, $1)), 0)) >= $2
		ORDER BY sim DESC, a.code ASC
		LIMIT $3`, term, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("analyte name search: %w", err)
	}
	defer rows.Close()

	var out []AnalyteNameMatch
	for rows.Next() {
		var m AnalyteNameMatch
		if err := rows.Scan(&m.Code, &m.Name, &m.Unit, &m.Category, &m.Similarity); err != nil {
			return nil, fmt.Errorf("scan analyte match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
