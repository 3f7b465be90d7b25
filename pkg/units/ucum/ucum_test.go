package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		status    Status
		corrected string
	}{
		{"valid g/L", "g/L", StatusValid, ""},
		{"valid count", "10*9/L", StatusValid, ""},
		{"valid percent", "%", StatusValid, ""},
		{"valid iu bracket", "[IU]/L", StatusValid, ""},
		{"case fix", "G/DL", StatusCorrected, "g/dL"},
		{"caret notation", "10^9/L", StatusCorrected, "10*9/L"},
		{"x prefix count", "x10^12/l", StatusCorrected, "10*12/L"},
		{"iu without brackets", "IU/L", StatusCorrected, "[IU]/L"},
		{"mmhg spaced", "mm Hg", StatusCorrected, "mm[Hg]"},
		{"esr hour", "mm/hr", StatusCorrected, "mm/h"},
		{"egfr", "ml/min/1.73m2", StatusCorrected, "mL/min/{1.73_m2}"},
		{"empty", "", StatusInvalid, ""},
		{"nonsense", "zorkmids", StatusInvalid, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(tc.expr)
			assert.Equal(t, tc.status, res.Status)
			if tc.corrected != "" {
				assert.Equal(t, tc.corrected, res.Corrected)
			}
		})
	}
}

func TestValidate_SuggestionsShareDenominator(t *testing.T) {
	res := Validate("smidgen/L")
	assert.Equal(t, StatusInvalid, res.Status)
	assert.NotEmpty(t, res.Suggestions)
	assert.LessOrEqual(t, len(res.Suggestions), 5)
	for _, s := range res.Suggestions {
		assert.Contains(t, s, "/L")
	}
}
