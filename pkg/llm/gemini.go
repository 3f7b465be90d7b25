package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a client for the public Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Complete implements Client.
func (g *GeminiClient) Complete(ctx context.Context, req CompleteRequest) (*Completion, error) {
	contents := buildContents(req.Messages)

	cfg := &genai.GenerateContentConfig{
		Temperature: req.Temperature,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if len(req.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			decls = append(decls, &genai.FunctionDeclaration{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			})
		}
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}

		if req.ToolChoice.Required || len(req.ToolChoice.Only) > 0 {
			fcc := &genai.FunctionCallingConfig{Mode: genai.FunctionCallingConfigModeAny}
			if len(req.ToolChoice.Only) > 0 {
				fcc.AllowedFunctionNames = req.ToolChoice.Only
			}
			cfg.ToolConfig = &genai.ToolConfig{FunctionCallingConfig: fcc}
		}
	}

	var resp *genai.GenerateContentResponse
	err := withRetry(ctx, func() error {
		var callErr error
		resp, callErr = g.client.Models.GenerateContent(ctx, req.Model, contents, cfg)
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("gemini complete: %w", err)
	}

	out := &Completion{Text: resp.Text()}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.FunctionCall == nil {
				continue
			}
			out.ToolCalls = append(out.ToolCalls, ToolCall{
				ID:   fmt.Sprintf("call_%d", len(out.ToolCalls)),
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			})
		}
	}
	return out, nil
}

// GenerateStructured implements Client.
func (g *GeminiClient) GenerateStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	for _, p := range req.Parts {
		parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
	}
	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	cfg := &genai.GenerateContentConfig{
		Temperature:      req.Temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	var resp *genai.GenerateContentResponse
	err := withRetry(ctx, func() error {
		var callErr error
		resp, callErr = g.client.Models.GenerateContent(ctx, req.Model, contents, cfg)
		return callErr
	})
	if err != nil {
		return nil, fmt.Errorf("gemini structured generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini structured generate: empty response")
	}
	if !json.Valid([]byte(text)) {
		slog.Warn("Structured response is not valid JSON", "model", req.Model, "len", len(text))
		return nil, fmt.Errorf("gemini structured generate: malformed JSON output")
	}
	return json.RawMessage(text), nil
}

// buildContents converts conversation messages to genai contents. Tool
// results become functionResponse parts; assistant tool calls are replayed
// as functionCall parts so the model sees its own history.
func buildContents(messages []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleAssistant:
			var parts []*genai.Part
			if m.Content != "" {
				parts = append(parts, genai.NewPartFromText(m.Content))
			}
			for _, tc := range m.ToolCalls {
				parts = append(parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{Name: tc.Name, Args: tc.Args},
				})
			}
			contents = append(contents, &genai.Content{Role: genai.RoleModel, Parts: parts})
		case RoleTool:
			var payload map[string]any
			if err := json.Unmarshal([]byte(m.Content), &payload); err != nil {
				payload = map[string]any{"result": m.Content}
			}
			contents = append(contents, &genai.Content{
				Role: genai.RoleUser,
				Parts: []*genai.Part{
					genai.NewPartFromFunctionResponse(m.ToolName, payload),
				},
			})
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return contents
}
