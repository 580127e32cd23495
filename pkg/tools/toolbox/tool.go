package toolbox

import (
	"context"
)

// Handler executes a tool with validated, type-coerced arguments and returns
// a text result. Arguments have already passed the tool's Schema: required
// fields are present, types are checked, and defaults are filled in.
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Tool represents a callable tool with a name, human-readable title and
// description, a declarative input schema, and a handler.
type Tool struct {
	Name        string
	Title       string
	Description string
	Schema      *Schema
	Handler     Handler
}
