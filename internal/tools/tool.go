package tools

import (
	"context"
	"encoding/json"
)

// ToolResult represents the result of a tool execution
type ToolResult struct {
	Content string `json:"content"`
	IsError bool   `json:"is_error,omitempty"`
}

// Tool defines the interface for tools that can be invoked by name through
// the tool protocol
type Tool interface {
	// Name returns the unique name of the tool
	Name() string

	// Description returns a description of what the tool does
	Description() string

	// Parameters returns the JSON Schema for the tool's parameters
	Parameters() json.RawMessage

	// Execute runs the tool with the given arguments and returns the result.
	// A returned error marks a defect (broken upstream contract) and is
	// surfaced as a protocol-level failure; expected upstream problems are
	// reported inside the ToolResult instead.
	Execute(ctx context.Context, args json.RawMessage) (ToolResult, error)
}
