package report

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labdex/labdex/pkg/llm"
)

type fakeVision struct {
	response json.RawMessage
	err      error
	lastReq  llm.StructuredRequest
}

func (f *fakeVision) Complete(_ context.Context, _ llm.CompleteRequest) (*llm.Completion, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeVision) GenerateStructured(_ context.Context, req llm.StructuredRequest) (json.RawMessage, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func TestExtract_PassesPayloadAndParses(t *testing.T) {
	vision := &fakeVision{response: json.RawMessage(`{
		"patient_name": "Jane Roe",
		"patient_age": 42,
		"test_date": "2026-03-14",
		"parameters": [
			{"parameter_name": "Glucose", "result": "5.4", "unit": "mmol/L",
			 "numeric_result": 5.4,
			 "reference_interval": {"lower": 3.9, "upper": 6.1, "text": "3.9-6.1"}}
		],
		"missing_data": ["signature"]
	}`)}

	raw, rawJSON, err := Extract(context.Background(), vision, "vision-model", "application/pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", raw.PatientName)
	require.NotNil(t, raw.PatientAge)
	assert.Equal(t, 42, *raw.PatientAge)
	require.Len(t, raw.Parameters, 1)
	assert.Equal(t, "Glucose", raw.Parameters[0].ParameterName)
	assert.Equal(t, []string{"signature"}, raw.MissingData)
	assert.JSONEq(t, string(vision.response), rawJSON)

	require.Len(t, vision.lastReq.Parts, 1)
	assert.Equal(t, "application/pdf", vision.lastReq.Parts[0].MIMEType)
	assert.Equal(t, extractionSchema, vision.lastReq.Schema)
}

func TestExtract_ModelError(t *testing.T) {
	vision := &fakeVision{err: errors.New("quota exceeded")}
	_, _, err := Extract(context.Background(), vision, "vision-model", "image/png", []byte("png"))
	assert.ErrorContains(t, err, "vision extraction")
}

func TestExtract_MalformedJSON(t *testing.T) {
	vision := &fakeVision{response: json.RawMessage(`{"parameters": [`)}
	_, _, err := Extract(context.Background(), vision, "vision-model", "image/png", []byte("png"))
	assert.ErrorContains(t, err, "decode vision output")
}

func TestSanitize_DropsNamelessAndKeepsOrder(t *testing.T) {
	raw := &RawExtraction{
		Parameters: []RawParameter{
			{ParameterName: "Glucose", Result: "5.4", Unit: "mmol/L"},
			{ParameterName: "   ", Result: "ignored"},
			{ParameterName: "HDL", Result: "1.2", Unit: "mmol/L"},
		},
	}

	s := Sanitize(raw)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, 0, s.Rows[0].Position)
	assert.Equal(t, "Glucose", s.Rows[0].ParameterName)
	assert.Equal(t, 1, s.Rows[1].Position)
	assert.Equal(t, "HDL", s.Rows[1].ParameterName)
}

func TestSanitize_NumericFallbackFromText(t *testing.T) {
	raw := &RawExtraction{
		Parameters: []RawParameter{
			{ParameterName: "CRP", Result: "5,4", Unit: "mg/L"},
			{ParameterName: "TSH", Result: "< 0.5", Unit: "mIU/L"},
			{ParameterName: "Comment", Result: "not detected"},
		},
	}

	s := Sanitize(raw)
	require.Len(t, s.Rows, 3)
	require.NotNil(t, s.Rows[0].NumericResult)
	assert.InDelta(t, 5.4, *s.Rows[0].NumericResult, 1e-9)
	require.NotNil(t, s.Rows[1].NumericResult)
	assert.InDelta(t, 0.5, *s.Rows[1].NumericResult, 1e-9)
	assert.Nil(t, s.Rows[2].NumericResult)
}

func TestSanitize_OperatorDefaults(t *testing.T) {
	lower, upper := 3.9, 6.1
	raw := &RawExtraction{
		Parameters: []RawParameter{
			{
				ParameterName: "Glucose", Result: "5.4",
				ReferenceInterval: RawReference{Lower: &lower, Upper: &upper},
			},
			{
				ParameterName: "Ferritin", Result: "80",
				ReferenceInterval: RawReference{
					Lower: &lower, LowerOperator: "≥",
					Upper: &upper, UpperOperator: "≤",
				},
			},
		},
	}

	s := Sanitize(raw)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, ">=", s.Rows[0].RefLowerOp)
	assert.Equal(t, "<=", s.Rows[0].RefUpperOp)
	assert.Equal(t, ">=", s.Rows[1].RefLowerOp)
	assert.Equal(t, "<=", s.Rows[1].RefUpperOp)
}

func TestSanitize_Dates(t *testing.T) {
	tests := []struct {
		input string
		want  string // "" means unparseable
	}{
		{"2026-03-14", "2026-03-14"},
		{"14.03.2026", "2026-03-14"},
		{"14/03/2026", "2026-03-14"},
		{"March 14, 2026", "2026-03-14"},
		{"14 March 2026", "2026-03-14"},
		{"sometime in spring", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseDate(tt.input)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestSanitize_Gender(t *testing.T) {
	assert.Equal(t, "male", normalizeGender("M"))
	assert.Equal(t, "male", normalizeGender("мужской"))
	assert.Equal(t, "female", normalizeGender("Female"))
	assert.Equal(t, "female", normalizeGender("жен"))
	assert.Equal(t, "", normalizeGender("unknown"))
}

func TestSanitize_PatientFields(t *testing.T) {
	age := 42
	raw := &RawExtraction{
		PatientName:   "  Jane Roe ",
		PatientAge:    &age,
		PatientDOB:    "01.02.1984",
		PatientGender: "F",
		TestDate:      "2026-03-14",
	}

	s := Sanitize(raw)
	assert.Equal(t, "Jane Roe", s.PatientName)
	require.NotNil(t, s.PatientAge)
	assert.Equal(t, 42, *s.PatientAge)
	require.NotNil(t, s.PatientDOB)
	assert.Equal(t, time.February, s.PatientDOB.Month())
	assert.Equal(t, "female", s.PatientGender)
	require.NotNil(t, s.TestDate)
}

func TestCountPDFPages(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{
			name:    "spaced markers",
			payload: "<</Type /Pages>> <</Type /Page>> <</Type /Page>> <</Type /Page>>",
			want:    3,
		},
		{
			name:    "compact markers",
			payload: "<</Type/Pages>><</Type/Page>><</Type/Page>>",
			want:    2,
		},
		{
			name:    "no markers",
			payload: "%PDF-1.4 stream endstream",
			want:    0,
		},
		{
			name:    "only pages node",
			payload: "<</Type /Pages>>",
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountPDFPages([]byte(tt.payload)))
		})
	}
}

func TestFileStore_SaveAndRemove(t *testing.T) {
	store := NewFileStore(t.TempDir())

	path, err := store.Save("patient-1", "report-1", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("patient-1", "report-1.pdf"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing again is a no-op, as is an empty path.
	assert.NoError(t, store.Remove(path))
	assert.NoError(t, store.Remove(""))
}

func TestFileStore_ExtensionsByMIME(t *testing.T) {
	store := NewFileStore(t.TempDir())
	for mime, ext := range map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
		"image/webp": ".webp",
		"image/heic": ".heic",
	} {
		path, err := store.Save("p", "r-"+ext[1:], mime, []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, ext, filepath.Ext(path))
	}
}
