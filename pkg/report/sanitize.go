package report

import (
	"strconv"
	"strings"
	"time"
)

// Row is the strict, typed shape persisted into lab_results.
type Row struct {
	Position      int
	ParameterName string
	ResultText    string
	NumericResult *float64
	UnitRaw       string
	RefLower      *float64
	RefLowerOp    string
	RefUpper      *float64
	RefUpperOp    string
	RefText       string
	RefFullText   string
	OutOfRange    bool
	SpecimenType  string
}

// Sanitized is the strict form of one extraction.
type Sanitized struct {
	PatientName   string
	PatientAge    *int
	PatientDOB    *time.Time
	PatientGender string
	TestDate      *time.Time
	Rows          []Row
	MissingData   []string
}

// Sanitize collapses the permissive model output into explicit rows.
// Parameters without a name are dropped; everything else is normalized
// field by field. Position preserves document order.
func Sanitize(raw *RawExtraction) *Sanitized {
	out := &Sanitized{
		PatientName:   strings.TrimSpace(raw.PatientName),
		PatientAge:    raw.PatientAge,
		PatientGender: normalizeGender(raw.PatientGender),
		PatientDOB:    parseDate(raw.PatientDOB),
		TestDate:      parseDate(raw.TestDate),
		MissingData:   raw.MissingData,
	}

	pos := 0
	for _, p := range raw.Parameters {
		name := strings.TrimSpace(p.ParameterName)
		if name == "" {
			continue
		}
		row := Row{
			Position:      pos,
			ParameterName: name,
			ResultText:    strings.TrimSpace(p.Result),
			NumericResult: p.NumericResult,
			UnitRaw:       strings.TrimSpace(p.Unit),
			RefLower:      p.ReferenceInterval.Lower,
			RefLowerOp:    normalizeOperator(p.ReferenceInterval.LowerOperator, ">="),
			RefUpper:      p.ReferenceInterval.Upper,
			RefUpperOp:    normalizeOperator(p.ReferenceInterval.UpperOperator, "<="),
			RefText:       strings.TrimSpace(p.ReferenceInterval.Text),
			RefFullText:   strings.TrimSpace(p.ReferenceInterval.FullText),
			OutOfRange:    p.OutOfRange,
			SpecimenType:  strings.ToLower(strings.TrimSpace(p.SpecimenType)),
		}
		if row.NumericResult == nil {
			row.NumericResult = parseNumeric(row.ResultText)
		}
		out.Rows = append(out.Rows, row)
		pos++
	}
	return out
}

// dateLayouts covers the formats lab reports and models actually emit.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"2006-01-02T15:04:05Z07:00",
	"January 2, 2006",
	"2 January 2006",
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// normalizeOperator folds unicode comparison glyphs to ASCII and falls back
// to the default when a bound exists without an operator.
func normalizeOperator(op, fallback string) string {
	op = strings.TrimSpace(op)
	switch op {
	case "≤":
		return "<="
	case "≥":
		return ">="
	case "<", "<=", ">", ">=":
		return op
	case "":
		return fallback
	default:
		return fallback
	}
}

func normalizeGender(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male", "м", "муж", "мужской":
		return "male"
	case "f", "female", "ж", "жен", "женский":
		return "female"
	default:
		return ""
	}
}

// parseNumeric extracts a number from a result like "5,4" or "< 0.5".
func parseNumeric(s string) *float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "<>=≤≥ ")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
