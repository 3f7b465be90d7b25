package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "HDL-C", "hdl c"},
		{"collapse runs", "ALT  (GPT) / serum", "alt gpt serum"},
		{"cyrillic preserved", "ЛПВП (холестерин)", "лпвп холестерин"},
		{"diacritics stripped", "Créatinine", "creatinine"},
		{"micro sign", "μ-globulin", "micro globulin"},
		{"micro letter", "µ-globulin", "micro globulin"},
		{"digits kept", "Vitamin D 25-OH", "vitamin d 25 oh"},
		{"empty", "???", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeLabel(tc.in))
		})
	}
}

func TestNormalizeLabel_MixedScriptKeepsCyrillicIntact(t *testing.T) {
	// Diacritic stripping is skipped when any Cyrillic is present, so й and
	// ё survive untouched.
	assert.Equal(t, "йод ёмкость", NormalizeLabel("Йод, ёмкость"))
}
