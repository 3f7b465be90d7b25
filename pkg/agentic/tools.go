package agentic

import (
	"google.golang.org/genai"

	"github.com/labdex/labdex/pkg/llm"
)

// Tool names exposed to the model.
const (
	toolSearchParameters = "fuzzy_search_parameter_names"
	toolSearchAnalytes   = "fuzzy_search_analyte_names"
	toolExecuteSQL       = "execute_sql"
	toolShowPlot         = "show_plot"
	toolShowTable        = "show_table"
	toolFinalQuery       = "generate_final_query"
)

// maxSearchLimit caps the limit argument of the fuzzy search tools.
const maxSearchLimit = 50

// QueryType of the final query.
const (
	QueryTypeData = "data_query"
	QueryTypePlot = "plot_query"
)

// PlotMetadata names the projected columns of a plot query.
type PlotMetadata struct {
	XAxis     string `json:"x_axis"`
	YAxis     string `json:"y_axis"`
	SeriesBy  string `json:"series_by"`
	PlotTitle string `json:"plot_title,omitempty"`
}

// defaultPlotMetadata is applied when the model twice fails to supply
// plot metadata for a plot query.
func defaultPlotMetadata() *PlotMetadata {
	return &PlotMetadata{XAxis: "t", YAxis: "y", SeriesBy: "unit"}
}

// FinalQuery is the payload of the terminal tool.
type FinalQuery struct {
	SQL          string
	Explanation  string
	Confidence   float64
	QueryType    string
	PlotMetadata *PlotMetadata
	PlotTitle    string
}

// Display is a show_plot or show_table artifact emitted during the loop,
// passed through to the caller for rendering.
type Display struct {
	Kind            string `json:"kind"` // "plot" or "table"
	Title           string `json:"title"`
	Data            any    `json:"data"`
	ReplacePrevious bool   `json:"replace_previous"`
	Thumbnail       bool   `json:"thumbnail,omitempty"`
}

func toolDefinitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name: toolSearchParameters,
			Description: "Fuzzy-search the raw parameter names present in this user's lab results. " +
				"Use it to discover how a measurement is actually labeled before writing SQL.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"term":  {Type: genai.TypeString, Description: "search term, e.g. 'hemoglobin'"},
					"limit": {Type: genai.TypeInteger, Description: "max results, up to 50"},
				},
				Required: []string{"term"},
			},
		},
		{
			Name: toolSearchAnalytes,
			Description: "Fuzzy-search the shared analyte catalog by name, code or alias. " +
				"Returns canonical codes and units.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"term":  {Type: genai.TypeString},
					"limit": {Type: genai.TypeInteger, Description: "max results, up to 50"},
				},
				Required: []string{"term"},
			},
		},
		{
			Name: toolExecuteSQL,
			Description: "Run a read-only probe query and see its rows. The statement is " +
				"validated and its LIMIT is clamped per query_type before execution.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"sql":       {Type: genai.TypeString},
					"reasoning": {Type: genai.TypeString, Description: "why this probe is needed"},
					"query_type": {
						Type: genai.TypeString,
						Enum: []string{"explore", "plot", "table"},
					},
				},
				Required: []string{"sql", "reasoning", "query_type"},
			},
		},
		{
			Name:        toolShowPlot,
			Description: "Display already-fetched data as a plot for the user.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"data":             {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeObject}},
					"plot_title":       {Type: genai.TypeString},
					"replace_previous": {Type: genai.TypeBoolean},
					"thumbnail":        {Type: genai.TypeBoolean},
				},
				Required: []string{"data", "plot_title"},
			},
		},
		{
			Name:        toolShowTable,
			Description: "Display already-fetched data as a table for the user.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"data":             {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeObject}},
					"table_title":      {Type: genai.TypeString},
					"replace_previous": {Type: genai.TypeBoolean},
				},
				Required: []string{"data", "table_title"},
			},
		},
		{
			Name: toolFinalQuery,
			Description: "Emit the single final SQL statement that answers the user's question. " +
				"This ends the conversation. Plot queries must include plot_metadata.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"sql":         {Type: genai.TypeString},
					"explanation": {Type: genai.TypeString},
					"confidence":  {Type: genai.TypeNumber, Description: "0..1"},
					"query_type": {
						Type: genai.TypeString,
						Enum: []string{QueryTypeData, QueryTypePlot},
					},
					"plot_metadata": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"x_axis":     {Type: genai.TypeString},
							"y_axis":     {Type: genai.TypeString},
							"series_by":  {Type: genai.TypeString},
							"plot_title": {Type: genai.TypeString},
						},
					},
					"plot_title": {Type: genai.TypeString},
				},
				Required: []string{"sql", "explanation", "confidence", "query_type"},
			},
		},
	}
}

// Typed argument accessors over the model's tool-call JSON.

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argFloat(args map[string]any, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func argInt(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

func argBool(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}

func parseFinalQuery(args map[string]any) FinalQuery {
	fq := FinalQuery{
		SQL:         argString(args, "sql"),
		Explanation: argString(args, "explanation"),
		Confidence:  argFloat(args, "confidence"),
		QueryType:   argString(args, "query_type"),
		PlotTitle:   argString(args, "plot_title"),
	}
	if meta, ok := args["plot_metadata"].(map[string]any); ok {
		pm := &PlotMetadata{
			XAxis:     argString(meta, "x_axis"),
			YAxis:     argString(meta, "y_axis"),
			SeriesBy:  argString(meta, "series_by"),
			PlotTitle: argString(meta, "plot_title"),
		}
		if pm.XAxis != "" || pm.YAxis != "" || pm.SeriesBy != "" {
			fq.PlotMetadata = pm
		}
	}
	return fq
}
