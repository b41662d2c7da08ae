// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/paginate"
)

// uriScheme is the custom URI scheme for Push Chain resources:
// pushchain://docs/<path> and pushchain://sdk/<path>.
const uriScheme = "pushchain://"

// registerResources registers the resource handlers with the MCP server.
// Whole-record reads are exempt from item-count bounding but remain subject
// to the character ceiling.
func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		URI:         uriScheme + "docs",
		Name:        "docs",
		Description: "All documentation entry paths",
		MIMEType:    "application/json",
	}, s.handleDocsIndexResource)

	s.mcp.AddResource(&mcp.Resource{
		URI:         uriScheme + "sdk",
		Name:        "sdk",
		Description: "All SDK source file paths",
		MIMEType:    "application/json",
	}, s.handleSDKIndexResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "docs/{+path}",
		Name:        "document",
		Description: "Raw markdown of one documentation entry",
		MIMEType:    "text/markdown",
	}, s.handleDocResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sdk/{+path}",
		Name:        "source-file",
		Description: "Raw text of one SDK source file",
		MIMEType:    "text/plain",
	}, s.handleSourceResource)
}

func (s *Server) handleDocsIndexResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	type docInfo struct {
		Path     string `json:"path"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	docs := s.engine.Store().Documents()
	infos := make([]docInfo, len(docs))
	for i, d := range docs {
		infos[i] = docInfo{Path: d.Path, Name: d.Name, Category: d.Category()}
	}
	return s.jsonResource(req.Params.URI, infos)
}

func (s *Server) handleSDKIndexResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	files := s.engine.Store().SourceFiles()
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return s.jsonResource(req.Params.URI, paths)
}

func (s *Server) handleDocResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	path, ok := resourcePath(req.Params.URI, "docs")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	doc := s.engine.Document(path)
	if doc == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return s.textResource(req.Params.URI, "text/markdown", doc.RawContent), nil
}

func (s *Server) handleSourceResource(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	path, ok := resourcePath(req.Params.URI, "sdk")
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	sf := s.engine.SourceFile(path)
	if sf == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return s.textResource(req.Params.URI, "text/plain", sf.Text), nil
}

// resourcePath extracts the record path from pushchain://<category>/<path>.
func resourcePath(uri, category string) (string, bool) {
	rest, ok := strings.CutPrefix(uri, uriScheme+category+"/")
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

func (s *Server) textResource(uri, mime, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mime,
			Text:     paginate.Truncate(text, s.opts.CharacterLimit),
		}},
	}
}

func (s *Server) jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return s.textResource(uri, "application/json", string(data)), nil
}
