package sqlval

import (
	"fmt"
	"regexp"
	"strings"
)

// forbiddenKeywords are rejected as whole words, case-insensitive, anywhere
// outside string literals and comments.
var forbiddenKeywords = []string{
	"INSERT", "UPDATE", "DELETE", "MERGE", "TRUNCATE", "ALTER", "DROP",
	"CREATE", "REPLACE", "GRANT", "REVOKE", "COPY", "CALL", "DO",
	"VACUUM", "ANALYZE", "CLUSTER", "REFRESH", "SET", "RESET", "SHOW",
	"COMMENT", "LISTEN", "UNLISTEN", "NOTIFY",
}

// forbiddenCompound are multi-word or pattern-shaped constructs.
var forbiddenCompound = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bSELECT\s+.*\bINTO\b`),
	regexp.MustCompile(`(?i)\bLOCK\b`),
	regexp.MustCompile(`(?i)\bFOR\s+(UPDATE|SHARE|NO\s+KEY\s+UPDATE|KEY\s+SHARE)\b`),
}

// systemSchemas must not be referenced.
var systemSchemas = regexp.MustCompile(`(?i)\bpg_(temp|toast)\b`)

// forbiddenFunctions are volatile, filesystem or bridge functions.
var forbiddenFunctions = regexp.MustCompile(
	`(?i)\b(pg_sleep|pg_read_\w*|pg_ls_dir|pg_write_\w*|pg_log_\w*|lo_import|lo_export|dblink\w*)\s*\(`)

var (
	keywordPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(forbiddenKeywords, "|") + `)\b`)

	// :name placeholders. A lone colon followed by an identifier. The
	// double colon of a ::typecast is excluded by the leading [^:].
	namedPlaceholder = regexp.MustCompile(`(^|[^:]):[a-zA-Z_][a-zA-Z0-9_]*`)
	// $1-style placeholders.
	dollarPlaceholder = regexp.MustCompile(`\$\d+`)

	startsWithSelect = regexp.MustCompile(`(?i)^\s*(SELECT|WITH)\b`)
	joinPattern      = regexp.MustCompile(`(?i)\bJOIN\b`)
	subqueryOpen     = regexp.MustCompile(`(?i)\(\s*SELECT\b`)
	aggregatePattern = regexp.MustCompile(
		`(?i)\b(count|sum|avg|min|max|stddev|stddev_pop|stddev_samp|variance|var_pop|var_samp|percentile_cont|percentile_disc|string_agg|array_agg|json_agg|jsonb_agg|bool_and|bool_or)\s*\(`)
)

// lexicalViolations runs the lexical checks on the comment-stripped,
// string-masked statement.
func (v *Validator) lexicalViolations(sqlText string) []Violation {
	stripped := StripComments(sqlText)
	masked := maskStringLiterals(stripped)
	trimmed := strings.TrimSpace(masked)

	if trimmed == "" {
		return []Violation{{Code: CodeEmptyStatement, Message: "statement is empty"}}
	}

	var out []Violation

	if !startsWithSelect.MatchString(trimmed) {
		out = append(out, Violation{
			Code:    CodeNotSelect,
			Message: "statement must begin with SELECT or WITH",
		})
	}

	if m := keywordPattern.FindString(masked); m != "" {
		out = append(out, Violation{
			Code:    CodeForbiddenKeyword,
			Message: fmt.Sprintf("forbidden keyword %q", strings.ToUpper(m)),
		})
	}
	for _, re := range forbiddenCompound {
		if m := re.FindString(masked); m != "" {
			out = append(out, Violation{
				Code:    CodeForbiddenKeyword,
				Message: fmt.Sprintf("forbidden construct %q", strings.ToUpper(collapseSpace(m))),
			})
			break
		}
	}

	if m := systemSchemas.FindString(masked); m != "" {
		out = append(out, Violation{
			Code:    CodeSystemSchema,
			Message: fmt.Sprintf("system schema reference %q", m),
		})
	}

	if m := forbiddenFunctions.FindString(masked); m != "" {
		out = append(out, Violation{
			Code:    CodeForbiddenFunction,
			Message: fmt.Sprintf("forbidden function %q", strings.TrimRight(m, "( \t")),
		})
	}

	if m := namedPlaceholder.FindStringSubmatch(masked); m != nil {
		out = append(out, Violation{
			Code:    CodePlaceholderSyntax,
			Message: "named placeholder (:placeholder) is not allowed; inline literal values",
		})
	}
	if dollarPlaceholder.MatchString(masked) {
		out = append(out, Violation{
			Code:    CodePlaceholderSyntax,
			Message: "positional placeholder ($N) is not allowed; inline literal values",
		})
	}
	if strings.Contains(masked, "?") {
		out = append(out, Violation{
			Code:    CodePlaceholderSyntax,
			Message: "bare ? placeholder is not allowed; inline literal values",
		})
	}

	if idx := nonTrailingSemicolon(masked); idx >= 0 {
		out = append(out, Violation{
			Code:    CodeMultipleStatements,
			Message: "multiple statements are not allowed",
		})
	}

	if n := len(joinPattern.FindAllString(masked, -1)); n > v.limits.MaxJoins {
		out = append(out, Violation{
			Code:    CodeTooManyJoins,
			Message: fmt.Sprintf("%d JOINs exceed the maximum of %d", n, v.limits.MaxJoins),
		})
	}
	if depth := subqueryDepth(masked); depth > v.limits.MaxSubqueryDepth {
		out = append(out, Violation{
			Code:    CodeSubqueryNesting,
			Message: fmt.Sprintf("subquery nesting depth %d exceeds the maximum of %d", depth, v.limits.MaxSubqueryDepth),
		})
	}
	if n := len(aggregatePattern.FindAllString(masked, -1)); n > v.limits.MaxAggregates {
		out = append(out, Violation{
			Code:    CodeTooManyAggregates,
			Message: fmt.Sprintf("%d aggregate calls exceed the maximum of %d", n, v.limits.MaxAggregates),
		})
	}

	return out
}

// StripComments removes -- line comments and /* */ block comments (nested
// per the SQL standard) while leaving string literal contents intact.
func StripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	blockDepth := 0
	lineComment := false

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch {
		case lineComment:
			if c == '\n' {
				lineComment = false
				b.WriteRune(c)
			}
		case blockDepth > 0:
			if c == '*' && next == '/' {
				blockDepth--
				i++
			} else if c == '/' && next == '*' {
				blockDepth++
				i++
			}
		case inString:
			b.WriteRune(c)
			if c == '\'' {
				if next == '\'' { // escaped quote
					b.WriteRune(next)
					i++
				} else {
					inString = false
				}
			}
		default:
			switch {
			case c == '\'':
				inString = true
				b.WriteRune(c)
			case c == '-' && next == '-':
				lineComment = true
				i++
			case c == '/' && next == '*':
				blockDepth = 1
				i++
				b.WriteRune(' ')
			default:
				b.WriteRune(c)
			}
		}
	}
	return b.String()
}

// StripTrailingLineComments removes -- comments that follow the final
// semicolon. Models occasionally append commentary there, which breaks
// LIMIT injection.
func StripTrailingLineComments(s string) string {
	idx := strings.LastIndex(s, ";")
	if idx < 0 {
		return s
	}
	tail := s[idx+1:]
	if strings.TrimSpace(StripComments(tail)) != "" {
		return s // real SQL after the semicolon; the lexical check rejects it
	}
	return s[:idx+1]
}

// maskStringLiterals replaces the contents of '...' literals with spaces so
// keyword and placeholder scans cannot fire on literal text.
func maskStringLiterals(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if inString {
			if c == '\'' {
				if i+1 < len(runes) && runes[i+1] == '\'' {
					b.WriteString("  ")
					i++
					continue
				}
				inString = false
				b.WriteRune(c)
				continue
			}
			b.WriteRune(' ')
			continue
		}
		if c == '\'' {
			inString = true
		}
		b.WriteRune(c)
	}
	return b.String()
}

// nonTrailingSemicolon returns the index of a semicolon with SQL after it,
// or -1.
func nonTrailingSemicolon(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ';' {
			continue
		}
		if strings.TrimSpace(s[i+1:]) != "" {
			return i
		}
	}
	return -1
}

// subqueryDepth counts how deeply "( SELECT" constructs nest. Function
// call parens are tracked on the stack but do not contribute to depth.
func subqueryDepth(s string) int {
	lower := strings.ToLower(s)
	var stack []bool
	selDepth, maxDepth := 0, 0
	for i := 0; i < len(lower); i++ {
		switch lower[i] {
		case '(':
			rest := strings.TrimLeft(lower[i+1:], " \t\n\r")
			isSelect := strings.HasPrefix(rest, "select")
			stack = append(stack, isSelect)
			if isSelect {
				selDepth++
				if selDepth > maxDepth {
					maxDepth = selDepth
				}
			}
		case ')':
			if n := len(stack); n > 0 {
				if stack[n-1] {
					selDepth--
				}
				stack = stack[:n-1]
			}
		}
	}
	return maxDepth
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
