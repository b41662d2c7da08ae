// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/failure"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/paginate"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/schema"
)

func (s *Server) handleListDocuments(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(listDocumentsSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("list_documents", f)
	}
	category := schema.Str(args, "category")
	limit := schema.Int(args, "limit", 20)
	offset := schema.Int(args, "offset", 0)

	docs := s.engine.Documents(category)
	if len(docs) == 0 && category != "" {
		hint := "Call list_documents without a category to browse everything."
		if cats := s.engine.Store().Categories(); len(cats) > 0 {
			hint = "Available categories: " + strings.Join(cats, ", ") + "."
		}
		return s.fail("list_documents", failure.NotFoundf(hint, "no documents in category %q", category))
	}

	page, w := paginate.Slice(docs, limit, offset)
	var b strings.Builder
	fmt.Fprintf(&b, "# Documents (%d of %d)\n\n", w.Returned, w.Total)
	for _, doc := range page {
		fmt.Fprintf(&b, "- `%s` — %s (%s)\n", doc.Path, doc.Name, doc.Category())
	}
	writeWindow(&b, w)
	return s.ok(b.String()), nil
}

func (s *Server) handleGetDocument(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(getDocumentSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("get_document", f)
	}
	path := schema.Str(args, "path")

	doc := s.engine.Document(path)
	if doc == nil {
		return s.fail("get_document", failure.NotFoundf(
			"Use list_documents to see available paths, or search_docs to find documents by keyword.",
			"no document at path %q", path))
	}
	return s.ok(doc.RawContent), nil
}

func (s *Server) handleSearchDocs(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(searchDocsSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("search_docs", f)
	}
	query := schema.Str(args, "query")
	limit := schema.Int(args, "limit", 10)

	matches, f := s.engine.SearchDocs(ctx, query)
	if f != nil {
		return s.fail("search_docs", f)
	}
	if len(matches) == 0 {
		return s.fail("search_docs", failure.NotFoundf(
			"Try a broader keyword, search_sdk for SDK symbols, or list_documents to browse by category.",
			"no documents matched %q", query))
	}

	page, w := paginate.Slice(matches, limit, 0)
	var b strings.Builder
	fmt.Fprintf(&b, "# Documentation matches for %q (%d of %d)\n\n", query, w.Returned, w.Total)
	for _, m := range page {
		fmt.Fprintf(&b, "- `%s` — %s (%s", m.Path, m.Name, m.Category)
		if m.Source == "remote" {
			b.WriteString(", remote")
		}
		b.WriteString(")\n")
		if m.Snippet != "" {
			fmt.Fprintf(&b, "  > %s\n", m.Snippet)
		}
	}
	if w.HasMore {
		fmt.Fprintf(&b, "\n%d more matches available; raise limit or narrow the query.\n", w.Total-w.Returned)
	}
	return s.ok(b.String()), nil
}

// writeWindow appends the pagination trailer describing how much was omitted
// and how to retrieve more.
func writeWindow(b *strings.Builder, w paginate.Window) {
	if w.HasMore {
		fmt.Fprintf(b, "\nShowing %d-%d of %d; call again with offset=%d for more.\n",
			w.Offset+1, w.Offset+w.Returned, w.Total, w.NextOffset)
	} else if w.Returned < w.Total {
		fmt.Fprintf(b, "\nShowing %d of %d (offset %d).\n", w.Returned, w.Total, w.Offset)
	}
}
