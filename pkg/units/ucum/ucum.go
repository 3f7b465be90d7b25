// Package ucum validates clinical unit expressions against a curated subset
// of the Unified Code for Units of Measure. No maintained Go UCUM grammar
// exists, so validation is table-driven over the units that actually occur
// in lab reports, with a correction map for the frequent near-misses.
package ucum

import (
	"sort"
	"strings"
)

// Status classifies a validation outcome.
type Status string

const (
	// StatusValid means the expression is a known UCUM form.
	StatusValid Status = "valid"
	// StatusCorrected means a known variant was mapped to its UCUM form.
	StatusCorrected Status = "corrected"
	// StatusInvalid means the expression is unknown; Suggestions may help.
	StatusInvalid Status = "invalid"
)

// Result is the outcome of validating one unit expression.
type Result struct {
	Status      Status
	Corrected   string   // set when Status == StatusCorrected
	Suggestions []string // set when Status == StatusInvalid, may be empty
}

// validUnits is the accepted UCUM vocabulary. Case matters: g/L and G/L are
// different expressions and only the former is valid.
var validUnits = map[string]bool{
	// Mass concentration
	"g/L": true, "g/dL": true, "mg/L": true, "mg/dL": true,
	"ug/L": true, "ug/dL": true, "ng/L": true, "ng/dL": true,
	"ng/mL": true, "pg/mL": true, "ug/mL": true, "mg/mL": true,

	// Substance concentration
	"mol/L": true, "mmol/L": true, "umol/L": true, "nmol/L": true,
	"pmol/L": true, "mmol/mol": true,

	// Enzymatic / arbitrary activity
	"U/L": true, "kU/L": true, "[IU]/L": true, "m[IU]/L": true,
	"u[IU]/mL": true, "[IU]/mL": true, "U/mL": true,

	// Counts
	"10*9/L": true, "10*12/L": true, "10*6/uL": true, "10*3/uL": true,
	"/uL": true, "/mm3": true, "/[HPF]": true, "/[LPF]": true,

	// Fractions and ratios
	"%": true, "g/g": true, "mg/mmol": true, "mg/g": true,

	// Physical
	"mm/h": true, "s": true, "min": true, "h": true,
	"fL": true, "pg": true, "g": true, "mg": true, "kg": true,
	"mm[Hg]": true, "kPa": true, "Cel": true,
	"L/L": true, "mL/min": true, "mL/min/{1.73_m2}": true,

	// Dimensionless
	"1": true, "{ratio}": true, "{titer}": true, "{index}": true,
}

// corrections maps frequent near-miss spellings to their UCUM form. Keys
// are matched case-insensitively after whitespace removal.
var corrections = map[string]string{
	"iu/l":      "[IU]/L",
	"miu/l":     "m[IU]/L",
	"iu/ml":     "[IU]/mL",
	"uiu/ml":    "u[IU]/mL",
	"10^9/l":    "10*9/L",
	"10e9/l":    "10*9/L",
	"x10^9/l":   "10*9/L",
	"10^12/l":   "10*12/L",
	"10e12/l":   "10*12/L",
	"x10^12/l":  "10*12/L",
	"10^6/ul":   "10*6/uL",
	"10^3/ul":   "10*3/uL",
	"mmhg":      "mm[Hg]",
	"mm hg":     "mm[Hg]",
	"/hpf":      "/[HPF]",
	"/lpf":      "/[LPF]",
	"cells/ul":  "/uL",
	"mm/hr":     "mm/h",
	"sec":       "s",
	"°c":        "Cel",
	"celsius":   "Cel",
	"percent":   "%",
	"ratio":     "{ratio}",
	"titer":     "{titer}",
	"ml/min/1.73m2": "mL/min/{1.73_m2}",
}

// Validate checks one expression. A case-insensitive hit on the valid table
// that differs only in letter case comes back as a correction.
func Validate(expr string) Result {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Result{Status: StatusInvalid}
	}

	if validUnits[expr] {
		return Result{Status: StatusValid}
	}

	collapsed := strings.ToLower(strings.Join(strings.Fields(expr), " "))
	if fixed, ok := corrections[collapsed]; ok {
		return Result{Status: StatusCorrected, Corrected: fixed}
	}
	if fixed, ok := corrections[strings.ReplaceAll(collapsed, " ", "")]; ok {
		return Result{Status: StatusCorrected, Corrected: fixed}
	}

	// Case-only mismatch against the valid table.
	lower := strings.ToLower(strings.ReplaceAll(expr, " ", ""))
	for valid := range validUnits {
		if strings.ToLower(valid) == lower {
			return Result{Status: StatusCorrected, Corrected: valid}
		}
	}

	return Result{Status: StatusInvalid, Suggestions: suggest(lower)}
}

// suggest returns valid units sharing the denominator or a long common
// prefix with the input, capped at five.
func suggest(lower string) []string {
	var out []string
	_, denom, hasDenom := strings.Cut(lower, "/")
	for valid := range validUnits {
		vl := strings.ToLower(valid)
		if hasDenom {
			if _, vd, ok := strings.Cut(vl, "/"); ok && vd == denom {
				out = append(out, valid)
				continue
			}
		}
		if len(lower) >= 2 && strings.HasPrefix(vl, lower[:2]) {
			out = append(out, valid)
		}
	}
	sort.Strings(out)
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
