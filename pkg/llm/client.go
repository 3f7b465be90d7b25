// Package llm wraps the Gemini API behind a small client interface used by
// the vision extractor, the unit/analyte adjudicators and the agentic SQL
// loop. Components depend on the interface so tests can inject fakes.
package llm

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"
)

// Client is the model-facing surface of the system.
type Client interface {
	// Complete sends a conversation, optionally with tools bound, and
	// returns the model's text and any tool calls it emitted.
	Complete(ctx context.Context, req CompleteRequest) (*Completion, error)

	// GenerateStructured constrains the model to a JSON schema and returns
	// the raw JSON for the caller to unmarshal. Parts may carry inline
	// PDF/image bytes for vision extraction.
	GenerateStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error)
}

// Role values for conversation messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one turn of a conversation.
type Message struct {
	Role      string
	Content   string
	ToolCalls []ToolCall // assistant messages only
	// Tool result messages only:
	ToolCallID string
	ToolName   string
}

// ToolDefinition describes a tool available to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  *genai.Schema
}

// ToolCall is the model's request to invoke a tool.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// ToolChoice restricts which tools the model may call.
type ToolChoice struct {
	// Required forces the model to call a tool rather than answer in text.
	Required bool
	// Only restricts calls to the named tools. Empty = all bound tools.
	Only []string
}

// CompleteRequest is the input to Complete.
type CompleteRequest struct {
	Model       string
	System      string
	Messages    []Message
	Tools       []ToolDefinition
	ToolChoice  ToolChoice
	Temperature *float32
}

// Completion is the output of Complete.
type Completion struct {
	Text      string
	ToolCalls []ToolCall
}

// BinaryPart is an inline document or image handed to the vision model.
type BinaryPart struct {
	MIMEType string
	Data     []byte
}

// StructuredRequest is the input to GenerateStructured.
type StructuredRequest struct {
	Model       string
	System      string
	Prompt      string
	Parts       []BinaryPart
	Schema      *genai.Schema
	Temperature *float32
}
