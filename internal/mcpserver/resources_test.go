// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readReq(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestDocsIndexResource(t *testing.T) {
	s := fixtureServer(Options{})

	res, err := s.handleDocsIndexResource(context.Background(), readReq("pushchain://docs"))
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)

	var infos []struct {
		Path     string `json:"path"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &infos))
	assert.Len(t, infos, 8)
	assert.Equal(t, "tutorials/t0.md", infos[0].Path)
	assert.Equal(t, "tutorials", infos[0].Category)
}

func TestSDKIndexResource(t *testing.T) {
	s := fixtureServer(Options{})

	res, err := s.handleSDKIndexResource(context.Background(), readReq("pushchain://sdk"))
	require.NoError(t, err)

	var paths []string
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &paths))
	assert.Equal(t, []string{"packages/core/src/index.ts"}, paths)
}

func TestDocResource(t *testing.T) {
	s := fixtureServer(Options{})

	res, err := s.handleDocResource(context.Background(), readReq("pushchain://docs/guides/g0.md"))
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "text/markdown", res.Contents[0].MIMEType)
	assert.Equal(t, "# Guide 0\n\nGuidance number 0.\n", res.Contents[0].Text)
}

func TestDocResource_NotFound(t *testing.T) {
	s := fixtureServer(Options{})

	_, err := s.handleDocResource(context.Background(), readReq("pushchain://docs/guides/nope.md"))
	assert.Error(t, err)

	// A bare index URI is not a valid record path either.
	_, err = s.handleDocResource(context.Background(), readReq("pushchain://docs/"))
	assert.Error(t, err)
}

func TestSourceResource(t *testing.T) {
	s := fixtureServer(Options{})

	res, err := s.handleSourceResource(context.Background(), readReq("pushchain://sdk/packages/core/src/index.ts"))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", res.Contents[0].MIMEType)
	assert.Contains(t, res.Contents[0].Text, "export class PushClient {}")

	_, err = s.handleSourceResource(context.Background(), readReq("pushchain://sdk/packages/core/src/nope.ts"))
	assert.Error(t, err)
}
