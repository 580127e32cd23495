package toolbox_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rd4r3/ai-incident-analyzer/pkg/tools/toolbox"
)

func querySchema() *toolbox.Schema {
	return toolbox.NewSchema().
		Add("query", toolbox.TypeString, "Search query", true).
		AddDefault("k", toolbox.TypeInteger, "Result count", 5)
}

func TestValidate_AppliesDefault(t *testing.T) {
	args, err := querySchema().Validate(json.RawMessage(`{"query":"db down"}`))
	require.NoError(t, err)
	assert.Equal(t, "db down", args["query"])
	assert.Equal(t, 5, args["k"])
}

func TestValidate_ExplicitValueBeatsDefault(t *testing.T) {
	args, err := querySchema().Validate(json.RawMessage(`{"query":"db down","k":8}`))
	require.NoError(t, err)
	assert.Equal(t, 8, args["k"])
}

func TestValidate_MissingRequired(t *testing.T) {
	_, err := querySchema().Validate(json.RawMessage(`{"k":3}`))

	var ve *toolbox.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "query", ve.Field)
	assert.Contains(t, ve.Detail, "required")
}

func TestValidate_NullRequiredCountsAsMissing(t *testing.T) {
	_, err := querySchema().Validate(json.RawMessage(`{"query":null}`))

	var ve *toolbox.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "query", ve.Field)
}

func TestValidate_WrongStringType(t *testing.T) {
	_, err := querySchema().Validate(json.RawMessage(`{"query":42}`))

	var ve *toolbox.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "query", ve.Field)
	assert.Equal(t, "must be a string", ve.Detail)
}

func TestValidate_IntegerRejectsFraction(t *testing.T) {
	_, err := querySchema().Validate(json.RawMessage(`{"query":"x","k":2.5}`))

	var ve *toolbox.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "k", ve.Field)
	assert.Equal(t, "must be an integer", ve.Detail)
}

func TestValidate_IntegerAcceptsWholeFloat(t *testing.T) {
	args, err := querySchema().Validate(json.RawMessage(`{"query":"x","k":7.0}`))
	require.NoError(t, err)
	assert.Equal(t, 7, args["k"])
}

func TestValidate_NumberType(t *testing.T) {
	schema := toolbox.NewSchema().
		Add("resolution_time_mins", toolbox.TypeNumber, "Minutes", true)

	args, err := schema.Validate(json.RawMessage(`{"resolution_time_mins":12.5}`))
	require.NoError(t, err)
	assert.Equal(t, 12.5, args["resolution_time_mins"])

	_, err = schema.Validate(json.RawMessage(`{"resolution_time_mins":"12"}`))

	var ve *toolbox.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "resolution_time_mins", ve.Field)
	assert.Equal(t, "must be a number", ve.Detail)
}

func TestValidate_ArrayOfStrings(t *testing.T) {
	schema := toolbox.NewSchema().
		AddArray("affected_components", "Components")

	args, err := schema.Validate(json.RawMessage(`{"affected_components":["api","db"]}`))
	require.NoError(t, err)
	assert.Equal(t, []any{"api", "db"}, args["affected_components"])

	_, err = schema.Validate(json.RawMessage(`{"affected_components":[1,2]}`))

	var ve *toolbox.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "affected_components", ve.Field)
}

func TestValidate_NullOptionalIsDropped(t *testing.T) {
	schema := toolbox.NewSchema().
		Add("root_cause", toolbox.TypeString, "Root cause", false)

	args, err := schema.Validate(json.RawMessage(`{"root_cause":null}`))
	require.NoError(t, err)
	_, present := args["root_cause"]
	assert.False(t, present)
}

func TestValidate_UndeclaredFieldsPassThrough(t *testing.T) {
	args, err := querySchema().Validate(json.RawMessage(`{"query":"x","extra":"kept"}`))
	require.NoError(t, err)
	assert.Equal(t, "kept", args["extra"])
}

func TestValidate_NonObjectArguments(t *testing.T) {
	_, err := querySchema().Validate(json.RawMessage(`[1,2,3]`))

	var ve *toolbox.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "arguments", ve.Field)
}

func TestValidate_EmptyInput(t *testing.T) {
	args, err := toolbox.NewSchema().Validate(nil)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestValidate_FirstFailingFieldWins(t *testing.T) {
	schema := toolbox.NewSchema().
		Add("a", toolbox.TypeString, "first", true).
		Add("b", toolbox.TypeString, "second", true)

	_, err := schema.Validate(json.RawMessage(`{}`))

	var ve *toolbox.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "a", ve.Field)
}

func TestMarshalJSON_FullSchema(t *testing.T) {
	schema := toolbox.NewSchema().
		Add("query", toolbox.TypeString, "Search query", true).
		AddDefault("k", toolbox.TypeInteger, "Result count", 5).
		AddArray("tags", "Tags")

	out, err := json.Marshal(schema)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"query": {"type": "string", "description": "Search query"},
			"k": {"type": "integer", "description": "Result count", "default": 5},
			"tags": {"type": "array", "description": "Tags", "items": {"type": "string"}}
		},
		"required": ["query"]
	}`, string(out))
}

func TestMarshalJSON_EmptySchema(t *testing.T) {
	out, err := json.Marshal(toolbox.NewSchema())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object"}`, string(out))
}
