// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/schema"
)

// Tool parameter shapes. Each schema object is registered in the catalog AND
// enforced by the validator, so the advertised and enforced shapes are the
// same value by construction. Every shape is closed: unknown fields are
// rejected.

func kindEnum() []any {
	kinds := model.KindStrings()
	out := make([]any, len(kinds))
	for i, k := range kinds {
		out[i] = k
	}
	return out
}

func limitProp(max, def int) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Minimum:     schema.FloatPtr(1),
		Maximum:     schema.FloatPtr(float64(max)),
		Default:     schema.DefaultValue(def),
		Description: "Maximum number of items to return",
	}
}

func offsetProp() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Minimum:     schema.FloatPtr(0),
		Default:     schema.DefaultValue(0),
		Description: "Number of items to skip before the first returned item",
	}
}

var listDocumentsSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"category": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(100),
			Description: "Only list documents in this category (leading path element)",
		},
		"limit":  limitProp(100, 20),
		"offset": offsetProp(),
	},
	AdditionalProperties: schema.Closed(),
}

var getDocumentSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"path": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(300),
			Pattern:     `^[A-Za-z0-9][A-Za-z0-9._/ -]*\.(md|mdx)$`,
			Description: "Cache-relative document path, e.g. tutorials/quickstart.md",
		},
	},
	Required:             []string{"path"},
	AdditionalProperties: schema.Closed(),
}

var searchDocsSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"query": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(200),
			Description: "Case-insensitive substring to search for",
		},
		"limit": limitProp(50, 10),
	},
	Required:             []string{"query"},
	AdditionalProperties: schema.Closed(),
}

var getExportSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"name": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(200),
			Description: "Exact exported symbol name, e.g. PushClient",
		},
		"kind": {
			Type:        "string",
			Enum:        kindEnum(),
			Description: "Restrict the lookup to one export kind",
		},
		"package": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(100),
			Description: "Restrict the lookup to one package, e.g. @pushchain/core",
		},
	},
	Required:             []string{"name"},
	AdditionalProperties: schema.Closed(),
}

var searchSDKSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"query": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(200),
			Description: "Case-insensitive substring to search for",
		},
		"scope": {
			Type:        "string",
			Enum:        []any{"all", "exports", "paths", "content", "examples"},
			Default:     schema.DefaultValue("all"),
			Description: "Which sub-searches to run",
		},
		"limit":  limitProp(100, 20),
		"offset": offsetProp(),
	},
	Required:             []string{"query"},
	AdditionalProperties: schema.Closed(),
}

var getSourceFileSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"path": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(300),
			Pattern:     `^packages/[A-Za-z0-9._/-]+\.(ts|tsx)$`,
			Description: "Package-root-relative source path, e.g. packages/core/src/client.ts",
		},
	},
	Required:             []string{"path"},
	AdditionalProperties: schema.Closed(),
}

var listAllExportsSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"package": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(100),
			Description: "Only list exports of this package",
		},
		"kind": {
			Type:        "string",
			Enum:        kindEnum(),
			Description: "Only list exports of this kind",
		},
		"limit":  limitProp(200, 50),
		"offset": offsetProp(),
	},
	AdditionalProperties: schema.Closed(),
}

var listClassesSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"package": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(100),
			Description: "Only list classes of this package",
		},
	},
	AdditionalProperties: schema.Closed(),
}

var listComponentsSchema = &jsonschema.Schema{
	Type:                 "object",
	Properties:           map[string]*jsonschema.Schema{},
	AdditionalProperties: schema.Closed(),
}

var getPackageInfoSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"package": {
			Type:        "string",
			MinLength:   schema.IntPtr(1),
			MaxLength:   schema.IntPtr(100),
			Description: "Package name, e.g. @pushchain/core; omit for all packages",
		},
	},
	AdditionalProperties: schema.Closed(),
}
