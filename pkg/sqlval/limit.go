package sqlval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var limitPattern = regexp.MustCompile(`(?i)\bLIMIT\s+(\d+)\b`)

// clampLimit ensures the statement carries a final LIMIT no greater than
// ceiling. A compliant existing LIMIT survives unchanged; a too-high
// outermost LIMIT is rewritten to the ceiling; a missing LIMIT is appended.
// A trailing semicolon is preserved in all cases.
func clampLimit(sqlText string, ceiling int) string {
	body := sqlText
	semicolon := ""
	trimmed := strings.TrimRight(body, " \t\n\r")
	if strings.HasSuffix(trimmed, ";") {
		semicolon = ";"
		body = strings.TrimRight(strings.TrimSuffix(trimmed, ";"), " \t\n\r")
	} else {
		body = trimmed
	}

	// scanMask blanks literals and comments byte-for-byte, so match offsets
	// in the mask are valid in body.
	masked := scanMask(body)

	if loc := outermostLimit(masked); loc != nil {
		val, err := strconv.Atoi(body[loc[2]:loc[3]])
		if err == nil && val <= ceiling {
			return sqlText // compliant; byte-for-byte unchanged
		}
		return body[:loc[2]] + strconv.Itoa(ceiling) + body[loc[3]:] + semicolon
	}

	return body + fmt.Sprintf(" LIMIT %d", ceiling) + semicolon
}

// scanMask replaces every byte inside string literals, line comments and
// block comments with a space, preserving byte offsets of everything else.
func scanMask(s string) string {
	b := []byte(s)
	out := make([]byte, len(b))
	copy(out, b)

	const (
		code = iota
		inString
		inLine
		inBlock
	)
	state := code
	blockDepth := 0

	for i := 0; i < len(b); i++ {
		c := b[i]
		var next byte
		if i+1 < len(b) {
			next = b[i+1]
		}

		switch state {
		case code:
			switch {
			case c == '\'':
				state = inString
			case c == '-' && next == '-':
				state = inLine
				out[i] = ' '
			case c == '/' && next == '*':
				state = inBlock
				blockDepth = 1
				out[i] = ' '
			}
		case inString:
			if c == '\'' {
				if next == '\'' {
					out[i+1] = ' '
					i++
				} else {
					state = code
				}
			} else {
				out[i] = ' '
			}
		case inLine:
			if c == '\n' {
				state = code
			} else {
				out[i] = ' '
			}
		case inBlock:
			out[i] = ' '
			if c == '*' && next == '/' {
				out[i+1] = ' '
				i++
				blockDepth--
				if blockDepth == 0 {
					state = code
				}
			} else if c == '/' && next == '*' {
				out[i+1] = ' '
				i++
				blockDepth++
			}
		}
	}
	return string(out)
}

// outermostLimit finds the last LIMIT clause at parenthesis depth zero and
// returns its submatch indexes, or nil.
func outermostLimit(masked string) []int {
	depthAt := make([]int, len(masked)+1)
	depth := 0
	for i := 0; i < len(masked); i++ {
		depthAt[i] = depth
		switch masked[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}

	var found []int
	for _, loc := range limitPattern.FindAllStringSubmatchIndex(masked, -1) {
		if depthAt[loc[0]] == 0 {
			found = loc
		}
	}
	return found
}
