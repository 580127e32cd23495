package toolbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rd4r3/ai-incident-analyzer/pkg/apiclient"
)

// ToolBox holds the catalogue of tools and dispatches invocations. It is
// populated once at startup and read-only afterwards, so concurrent
// invocations need no locking.
type ToolBox struct {
	names []string
	tools map[string]Tool
}

// New creates an empty ToolBox.
func New() *ToolBox {
	return &ToolBox{
		tools: make(map[string]Tool),
	}
}

// Register adds tools to the ToolBox. A duplicate or empty name is an
// error; callers treat that as fatal at startup.
func (tb *ToolBox) Register(tools ...Tool) error {
	for _, t := range tools {
		if t.Name == "" {
			return errors.New("toolbox: tool name is required")
		}
		if _, dup := tb.tools[t.Name]; dup {
			return fmt.Errorf("toolbox: duplicate tool name %q", t.Name)
		}

		tb.tools[t.Name] = t
		tb.names = append(tb.names, t.Name)
	}

	return nil
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Tools returns all registered tools in registration order.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.names))
	for _, name := range tb.names {
		result = append(result, tb.tools[name])
	}

	return result
}

// ToolResult is the uniform outcome of a dispatch: a single text payload
// and an error flag.
type ToolResult struct {
	Content string
	IsError bool
}

// Call resolves, validates and executes one invocation. Expected failures
// (unknown tool, invalid arguments, remote API or network errors) come back
// as a ToolResult with IsError set. Any other handler error is a server
// fault and is returned as the second value instead of being flattened into
// the result. Exactly one of the two return values is meaningful per call.
func (tb *ToolBox) Call(ctx context.Context, name string, args json.RawMessage) (ToolResult, error) {
	t, ok := tb.tools[name]
	if !ok {
		return ToolResult{Content: "Unknown tool: " + name, IsError: true}, nil
	}

	schema := t.Schema
	if schema == nil {
		schema = NewSchema()
	}

	validated, err := schema.Validate(args)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return ToolResult{Content: "Invalid arguments: " + ve.Error(), IsError: true}, nil
		}
		return ToolResult{}, err
	}

	result, err := t.Handler(ctx, validated)
	if err != nil {
		if msg, ok := normalize(err); ok {
			return ToolResult{Content: msg, IsError: true}, nil
		}
		return ToolResult{}, err
	}

	return ToolResult{Content: result}, nil
}

// normalize maps expected remote failures to their user-facing text. Errors
// it does not recognize are left for the caller to propagate.
func normalize(err error) (string, bool) {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return "API error: " + apiErr.Message, true
	}

	var netErr *apiclient.NetworkError
	if errors.As(err, &netErr) {
		return "API error: " + netErr.Err.Error(), true
	}

	return "", false
}
