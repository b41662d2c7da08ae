// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package schema validates raw tool-call arguments against the declared
// jsonschema shape. The exact schema object registered with the MCP server is
// the one enforced here, so the advertised and enforced shapes can never
// drift. Validation is a pure function: it either produces a normalized
// argument map (defaults applied, numeric strings coerced for numeric
// fields) or a failure naming every violated field.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/failure"
)

// Closed returns the additionalProperties value for a strict object shape:
// the false schema, rejecting every unknown field.
func Closed() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

// IntPtr and FloatPtr build the pointer-valued bounds jsonschema uses.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// DefaultValue marshals v into a schema default.
func DefaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("schema default not marshalable: %v", err))
	}
	return b
}

// Validate checks raw arguments against the declared object shape and
// returns the normalized argument map. All violations are collected into a
// single Validation failure, one message per field.
func Validate(s *jsonschema.Schema, raw json.RawMessage) (map[string]any, *failure.Failure) {
	args := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, failure.Validationf("arguments must be a JSON object: %v", err)
		}
	}

	var violations []string

	// Unknown fields are always rejected: every tool shape is closed.
	var unknown []string
	for key := range args {
		if _, ok := s.Properties[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		violations = append(violations, fmt.Sprintf("%s: unknown field (this tool accepts: %s)", key, strings.Join(propertyNames(s), ", ")))
	}

	for _, req := range s.Required {
		if _, ok := args[req]; !ok {
			violations = append(violations, fmt.Sprintf("%s: required field is missing (%s)", req, constraintText(s.Properties[req])))
		}
	}

	normalized := make(map[string]any, len(args))
	for _, name := range propertyNames(s) {
		prop := s.Properties[name]
		value, present := args[name]
		if !present {
			if len(prop.Default) > 0 {
				var def any
				if err := json.Unmarshal(prop.Default, &def); err == nil {
					normalized[name] = def
				}
			}
			continue
		}
		coerced, fieldViolations := checkField(name, prop, value)
		if len(fieldViolations) > 0 {
			violations = append(violations, fieldViolations...)
			continue
		}
		normalized[name] = coerced
	}

	if len(violations) > 0 {
		return nil, failure.Validationf("invalid arguments: %s", strings.Join(violations, "; "))
	}
	return normalized, nil
}

// checkField validates one property value and applies the explicit
// numeric-string coercion allowed for integer and number fields.
func checkField(name string, prop *jsonschema.Schema, value any) (any, []string) {
	var violations []string

	switch prop.Type {
	case "string":
		str, ok := value.(string)
		if !ok {
			return nil, []string{fmt.Sprintf("%s: must be a string", name)}
		}
		if prop.MinLength != nil && len(str) < *prop.MinLength {
			violations = append(violations, fmt.Sprintf("%s: must be at least %d characters", name, *prop.MinLength))
		}
		if prop.MaxLength != nil && len(str) > *prop.MaxLength {
			violations = append(violations, fmt.Sprintf("%s: must be at most %d characters", name, *prop.MaxLength))
		}
		if prop.Pattern != "" {
			re, err := regexp.Compile(prop.Pattern)
			if err == nil && !re.MatchString(str) {
				violations = append(violations, fmt.Sprintf("%s: must match pattern %s", name, prop.Pattern))
			}
		}
		if len(prop.Enum) > 0 && !enumContains(prop.Enum, str) {
			violations = append(violations, fmt.Sprintf("%s: must be one of %s", name, enumText(prop.Enum)))
		}
		if len(violations) > 0 {
			return nil, violations
		}
		return str, nil

	case "integer", "number":
		num, ok := value.(float64)
		if !ok {
			// Numeric strings are explicitly coerced.
			if str, isStr := value.(string); isStr {
				parsed, err := strconv.ParseFloat(str, 64)
				if err != nil {
					return nil, []string{fmt.Sprintf("%s: must be a number", name)}
				}
				num = parsed
			} else {
				return nil, []string{fmt.Sprintf("%s: must be a number", name)}
			}
		}
		if prop.Type == "integer" && num != math.Trunc(num) {
			return nil, []string{fmt.Sprintf("%s: must be an integer", name)}
		}
		if prop.Minimum != nil && num < *prop.Minimum {
			violations = append(violations, fmt.Sprintf("%s: must be >= %g", name, *prop.Minimum))
		}
		if prop.Maximum != nil && num > *prop.Maximum {
			violations = append(violations, fmt.Sprintf("%s: must be <= %g", name, *prop.Maximum))
		}
		if len(violations) > 0 {
			return nil, violations
		}
		return num, nil

	case "boolean":
		b, ok := value.(bool)
		if !ok {
			return nil, []string{fmt.Sprintf("%s: must be a boolean", name)}
		}
		return b, nil

	default:
		return value, nil
	}
}

// Int returns args[name] as an int, using def when absent. Validate has
// already checked the type.
func Int(args map[string]any, name string, def int) int {
	v, ok := args[name]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return int(f)
}

// Str returns args[name] as a string, or "" when absent.
func Str(args map[string]any, name string) string {
	v, ok := args[name]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func propertyNames(s *jsonschema.Schema) []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func enumContains(enum []any, v string) bool {
	for _, e := range enum {
		if s, ok := e.(string); ok && s == v {
			return true
		}
	}
	return false
}

func enumText(enum []any) string {
	parts := make([]string, 0, len(enum))
	for _, e := range enum {
		parts = append(parts, fmt.Sprintf("%v", e))
	}
	return strings.Join(parts, ", ")
}

func constraintText(prop *jsonschema.Schema) string {
	if prop == nil {
		return "see tool schema"
	}
	var parts []string
	if prop.Type != "" {
		parts = append(parts, prop.Type)
	}
	if prop.MinLength != nil {
		parts = append(parts, fmt.Sprintf("min length %d", *prop.MinLength))
	}
	if prop.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max length %d", *prop.MaxLength))
	}
	if len(prop.Enum) > 0 {
		parts = append(parts, "one of "+enumText(prop.Enum))
	}
	if prop.Description != "" {
		parts = append(parts, prop.Description)
	}
	if len(parts) == 0 {
		return "see tool schema"
	}
	return strings.Join(parts, ", ")
}
