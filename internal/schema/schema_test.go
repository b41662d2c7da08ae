// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package schema

import (
	"encoding/json"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/failure"
)

func testSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:      "string",
				MinLength: IntPtr(2),
				MaxLength: IntPtr(200),
			},
			"kind": {
				Type: "string",
				Enum: []any{"function", "class"},
			},
			"limit": {
				Type:    "integer",
				Minimum: FloatPtr(1),
				Maximum: FloatPtr(100),
				Default: DefaultValue(20),
			},
			"offset": {
				Type:    "integer",
				Minimum: FloatPtr(0),
				Default: DefaultValue(0),
			},
			"strict": {Type: "boolean"},
		},
		Required:             []string{"query"},
		AdditionalProperties: Closed(),
	}
}

func validate(t *testing.T, raw string) (map[string]any, *failure.Failure) {
	t.Helper()
	return Validate(testSchema(), json.RawMessage(raw))
}

func TestValidate_HappyPathAppliesDefaults(t *testing.T) {
	args, f := validate(t, `{"query":"push"}`)
	require.Nil(t, f)

	assert.Equal(t, "push", Str(args, "query"))
	assert.Equal(t, 20, Int(args, "limit", -1), "default applied for absent limit")
	assert.Equal(t, 0, Int(args, "offset", -1))
	_, hasStrict := args["strict"]
	assert.False(t, hasStrict, "fields without defaults stay absent")
}

func TestValidate_EmptyArgumentsAllowed(t *testing.T) {
	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"limit": {Type: "integer", Default: DefaultValue(50)},
		},
		AdditionalProperties: Closed(),
	}
	args, f := Validate(s, nil)
	require.Nil(t, f)
	assert.Equal(t, 50, Int(args, "limit", -1))
}

func TestValidate_UnknownFieldRejected(t *testing.T) {
	_, f := validate(t, `{"query":"push","filter":"x"}`)
	require.NotNil(t, f)
	assert.Equal(t, failure.Validation, f.Kind)
	assert.Contains(t, f.Message, "filter: unknown field")
	assert.Contains(t, f.Message, "this tool accepts: kind, limit, offset, query, strict")
}

func TestValidate_MissingRequired(t *testing.T) {
	_, f := validate(t, `{"limit":5}`)
	require.NotNil(t, f)
	assert.Contains(t, f.Message, "query: required field is missing")
	assert.Contains(t, f.Message, "string")
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	_, f := validate(t, `{"query":"a","limit":500,"kind":"widget","bogus":1}`)
	require.NotNil(t, f)

	assert.Contains(t, f.Message, "bogus: unknown field")
	assert.Contains(t, f.Message, "query: must be at least 2 characters")
	assert.Contains(t, f.Message, "limit: must be <= 100")
	assert.Contains(t, f.Message, "kind: must be one of function, class")
}

func TestValidate_NumericStringCoercion(t *testing.T) {
	args, f := validate(t, `{"query":"push","limit":"15"}`)
	require.Nil(t, f)
	assert.Equal(t, 15, Int(args, "limit", -1))

	_, f = validate(t, `{"query":"push","limit":"lots"}`)
	require.NotNil(t, f)
	assert.Contains(t, f.Message, "limit: must be a number")
}

func TestValidate_IntegerRejectsFraction(t *testing.T) {
	_, f := validate(t, `{"query":"push","offset":1.5}`)
	require.NotNil(t, f)
	assert.Contains(t, f.Message, "offset: must be an integer")
}

func TestValidate_TypeMismatches(t *testing.T) {
	_, f := validate(t, `{"query":42}`)
	require.NotNil(t, f)
	assert.Contains(t, f.Message, "query: must be a string")

	_, f = validate(t, `{"query":"push","strict":"yes"}`)
	require.NotNil(t, f)
	assert.Contains(t, f.Message, "strict: must be a boolean")

	_, f = validate(t, `{"query":"push","limit":true}`)
	require.NotNil(t, f)
	assert.Contains(t, f.Message, "limit: must be a number")
}

func TestValidate_Pattern(t *testing.T) {
	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"path": {Type: "string", Pattern: `\.(md|mdx)$`},
		},
		Required:             []string{"path"},
		AdditionalProperties: Closed(),
	}

	_, f := Validate(s, json.RawMessage(`{"path":"guide.md"}`))
	assert.Nil(t, f)

	_, f = Validate(s, json.RawMessage(`{"path":"guide.txt"}`))
	require.NotNil(t, f)
	assert.Contains(t, f.Message, "path: must match pattern")
}

func TestValidate_NonObjectArguments(t *testing.T) {
	_, f := validate(t, `[1,2,3]`)
	require.NotNil(t, f)
	assert.Equal(t, failure.Validation, f.Kind)
	assert.Contains(t, f.Message, "must be a JSON object")
}
