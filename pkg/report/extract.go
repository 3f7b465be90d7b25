// Package report turns an uploaded lab-report payload into persisted,
// normalized lab results: vision extraction, sanitization, idempotent
// persistence, then unit normalization and analyte mapping.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/labdex/labdex/pkg/llm"
)

// ParserVersion stamps every report row with the extraction code revision.
const ParserVersion = "v2"

// MaxPDFPages caps how many pages the vision model is asked to read.
const MaxPDFPages = 10

// AllowedMIMEs whitelists payload types for ingestion.
var AllowedMIMEs = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/heic":      true,
}

// RawExtraction is the permissive shape the vision model returns. It is
// stored verbatim in raw_model_output and never piped further; sanitization
// converts it to strict rows first.
type RawExtraction struct {
	PatientName   string         `json:"patient_name"`
	PatientAge    *int           `json:"patient_age"`
	PatientDOB    string         `json:"patient_dob"`
	PatientGender string         `json:"patient_gender"`
	TestDate      string         `json:"test_date"`
	Parameters    []RawParameter `json:"parameters"`
	MissingData   []string       `json:"missing_data"`
}

// RawParameter is one extracted measurement before sanitization.
type RawParameter struct {
	ParameterName     string       `json:"parameter_name"`
	Result            string       `json:"result"`
	Unit              string       `json:"unit"`
	ReferenceInterval RawReference `json:"reference_interval"`
	OutOfRange        bool         `json:"is_value_out_of_range"`
	NumericResult     *float64     `json:"numeric_result"`
	SpecimenType      string       `json:"specimen_type"`
}

// RawReference is the model's view of a reference interval.
type RawReference struct {
	Lower         *float64 `json:"lower"`
	LowerOperator string   `json:"lower_operator"`
	Upper         *float64 `json:"upper"`
	UpperOperator string   `json:"upper_operator"`
	Text          string   `json:"text"`
	FullText      string   `json:"full_text"`
}

var referenceSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"lower":          {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
		"lower_operator": {Type: genai.TypeString},
		"upper":          {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
		"upper_operator": {Type: genai.TypeString},
		"text":           {Type: genai.TypeString},
		"full_text":      {Type: genai.TypeString},
	},
}

var extractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"patient_name":   {Type: genai.TypeString},
		"patient_age":    {Type: genai.TypeInteger, Nullable: genai.Ptr(true)},
		"patient_dob":    {Type: genai.TypeString},
		"patient_gender": {Type: genai.TypeString},
		"test_date":      {Type: genai.TypeString},
		"parameters": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"parameter_name":        {Type: genai.TypeString},
					"result":                {Type: genai.TypeString},
					"unit":                  {Type: genai.TypeString},
					"reference_interval":    referenceSchema,
					"is_value_out_of_range": {Type: genai.TypeBoolean},
					"numeric_result":        {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
					"specimen_type":         {Type: genai.TypeString},
				},
				Required: []string{"parameter_name", "result", "unit"},
			},
		},
		"missing_data": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"parameters"},
}

const extractionPrompt = `Extract every laboratory measurement from this document.
Report patient name, age, date of birth, gender and the test date if present.
For each measurement give the parameter name exactly as printed, the result
text, the unit exactly as printed, the reference interval (numeric bounds
with comparison operators where present, plus the printed text), whether the
value is flagged out of range, the numeric value when the result is a
number, and the specimen type if stated. List anything you could not read
under missing_data.`

// Extract runs the vision model over the payload and returns both the
// parsed extraction and the raw JSON for audit storage.
func Extract(ctx context.Context, client llm.Client, model, mimeType string, payload []byte) (*RawExtraction, string, error) {
	out, err := client.GenerateStructured(ctx, llm.StructuredRequest{
		Model:  model,
		Prompt: extractionPrompt,
		Parts:  []llm.BinaryPart{{MIMEType: mimeType, Data: payload}},
		Schema: extractionSchema,
	})
	if err != nil {
		return nil, "", fmt.Errorf("vision extraction: %w", err)
	}

	var raw RawExtraction
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, "", fmt.Errorf("decode vision output: %w", err)
	}
	return &raw, string(out), nil
}

// CountPDFPages counts page objects in a PDF payload. The heuristic scans
// for "/Type /Page" markers, which is exact for the linearized and
// object-stream-free PDFs labs actually produce and close enough elsewhere:
// the count only gates the page cap.
func CountPDFPages(payload []byte) int {
	count := bytes.Count(payload, []byte("/Type /Page"))
	count -= bytes.Count(payload, []byte("/Type /Pages"))
	if compact := bytes.Count(payload, []byte("/Type/Page")) - bytes.Count(payload, []byte("/Type/Pages")); compact > count {
		count = compact
	}
	if count < 0 {
		return 0
	}
	return count
}
