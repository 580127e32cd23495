package toolbox

import (
	"encoding/json"
	"math"
)

// Property types understood by the schema validator. Arrays always carry
// string elements; that is the only array shape the remote contract uses.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeArray   = "array"
)

// Property describes a single named input field.
type Property struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Default     any
}

// Schema declares a tool's input as an ordered set of properties. It
// validates raw arguments and marshals to a JSON Schema object for the
// tools/list wire contract.
type Schema struct {
	props []Property
}

// NewSchema creates an empty schema. An empty schema accepts any object and
// declares no properties.
func NewSchema() *Schema {
	return &Schema{}
}

// Add appends a property to the schema.
func (s *Schema) Add(name, typ, description string, required bool) *Schema {
	s.props = append(s.props, Property{
		Name:        name,
		Type:        typ,
		Description: description,
		Required:    required,
	})

	return s
}

// AddDefault appends an optional property whose value is filled in when the
// caller omits it.
func (s *Schema) AddDefault(name, typ, description string, def any) *Schema {
	s.props = append(s.props, Property{
		Name:        name,
		Type:        typ,
		Description: description,
		Default:     def,
	})

	return s
}

// AddArray appends an optional array-of-strings property.
func (s *Schema) AddArray(name, description string) *Schema {
	s.props = append(s.props, Property{
		Name:        name,
		Type:        TypeArray,
		Description: description,
	})

	return s
}

// Properties returns the declared properties in declaration order.
func (s *Schema) Properties() []Property {
	return s.props
}

// MarshalJSON renders the schema as a JSON Schema object:
// {"type":"object","properties":{...},"required":[...]}, with defaults
// included. Map keys marshal in sorted order, so the output is stable.
func (s *Schema) MarshalJSON() ([]byte, error) {
	obj := map[string]any{"type": "object"}

	if len(s.props) > 0 {
		properties := make(map[string]any, len(s.props))
		var required []string

		for _, p := range s.props {
			prop := map[string]any{
				"type":        p.Type,
				"description": p.Description,
			}
			if p.Type == TypeArray {
				prop["items"] = map[string]any{"type": TypeString}
			}
			if p.Default != nil {
				prop["default"] = p.Default
			}
			properties[p.Name] = prop

			if p.Required {
				required = append(required, p.Name)
			}
		}

		obj["properties"] = properties
		if len(required) > 0 {
			obj["required"] = required
		}
	}

	return json.Marshal(obj)
}

// ValidationError reports the first argument that failed validation.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Detail
}

// Validate checks raw JSON arguments against the schema and returns the
// validated, type-coerced arguments with defaults applied. Validation is
// pure: it never touches the network and stops at the first failing
// property. An explicit null counts as absent. Properties not declared in
// the schema pass through untouched.
func (s *Schema) Validate(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, &ValidationError{Field: "arguments", Detail: "must be a JSON object"}
		}
	}

	for _, p := range s.props {
		v, ok := args[p.Name]
		if !ok || v == nil {
			if p.Required {
				return nil, &ValidationError{Field: p.Name, Detail: "required field is missing"}
			}

			delete(args, p.Name)
			if p.Default != nil {
				args[p.Name] = p.Default
			}

			continue
		}

		coerced, err := coerce(p, v)
		if err != nil {
			return nil, err
		}
		args[p.Name] = coerced
	}

	return args, nil
}

// coerce checks a single value against its declared type. JSON numbers
// arrive as float64; integers are accepted only when the value is whole and
// come back as int so they re-marshal without a fraction.
func coerce(p Property, v any) (any, error) {
	switch p.Type {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Detail: "must be a string"}
		}
		return s, nil

	case TypeNumber:
		f, ok := v.(float64)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Detail: "must be a number"}
		}
		return f, nil

	case TypeInteger:
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, &ValidationError{Field: p.Name, Detail: "must be an integer"}
		}
		return int(f), nil

	case TypeArray:
		items, ok := v.([]any)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Detail: "must be an array of strings"}
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return nil, &ValidationError{Field: p.Name, Detail: "must be an array of strings"}
			}
		}
		return items, nil
	}

	return v, nil
}
