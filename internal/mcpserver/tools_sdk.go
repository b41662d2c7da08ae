// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/failure"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/lookup"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/paginate"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/schema"
)

func (s *Server) handleGetExport(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(getExportSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("get_export", f)
	}
	name := schema.Str(args, "name")
	kind := schema.Str(args, "kind")
	pkg := schema.Str(args, "package")

	matches := s.engine.ExactName(name, kind, pkg)
	if len(matches) == 0 {
		return s.fail("get_export", failure.NotFoundf(
			"Try search_sdk to find symbols by substring, or list_all_exports to browse everything.",
			"no export named %q found", name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%d declaration(s))\n", name, len(matches))
	for _, m := range matches {
		fmt.Fprintf(&b, "\n## %s — %s\nSource: `%s`\n\n```ts\n%s\n```\n",
			m.Kind, m.Package, m.SourceFile, m.Definition)
	}
	return s.ok(b.String()), nil
}

// searchItem is one entry in the combined, ordered search result list that
// pagination runs over. Filename/path matches are listed ahead of content
// matches.
type searchItem struct {
	section string
	text    string
}

func (s *Server) handleSearchSDK(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(searchSDKSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("search_sdk", f)
	}
	query := schema.Str(args, "query")
	scope := schema.Str(args, "scope")
	limit := schema.Int(args, "limit", 20)
	offset := schema.Int(args, "offset", 0)

	res := s.engine.SearchSDK(query, scope)
	items := flattenSearch(res)
	if len(items) == 0 {
		return s.fail("search_sdk", failure.NotFoundf(
			"Try a shorter substring, a different scope, or search_docs for documentation.",
			"nothing in the SDK matched %q", query))
	}

	page, w := paginate.Slice(items, limit, offset)
	var b strings.Builder
	fmt.Fprintf(&b, "# SDK matches for %q (%d of %d)\n", query, w.Returned, w.Total)
	fmt.Fprintf(&b, "Totals: %d exports, %d paths, %d content, %d examples\n",
		res.TotalExports, res.TotalPaths, res.TotalContent, res.TotalExamples)

	section := ""
	for _, item := range page {
		if item.section != section {
			section = item.section
			fmt.Fprintf(&b, "\n## %s\n", section)
		}
		b.WriteString(item.text)
	}
	writeWindow(&b, w)
	return s.ok(b.String()), nil
}

// flattenSearch orders the parallel result lists for display and pagination:
// exports, then path matches, then content, then usage examples.
func flattenSearch(res *lookup.SDKSearchResult) []searchItem {
	var items []searchItem
	for _, m := range res.Exports {
		items = append(items, searchItem{
			section: "Exports",
			text:    fmt.Sprintf("- %s (%s) — %s, `%s`\n", m.Name, m.Kind, m.Package, m.SourceFile),
		})
	}
	for _, p := range res.Paths {
		items = append(items, searchItem{
			section: "Paths",
			text:    fmt.Sprintf("- `%s`\n", p),
		})
	}
	for _, m := range res.Content {
		items = append(items, searchItem{section: "Content", text: renderContentMatch(m)})
	}
	for _, m := range res.Examples {
		items = append(items, searchItem{section: "Usage examples", text: renderContentMatch(m)})
	}
	return items
}

func renderContentMatch(m lookup.ContentMatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- `%s:%d`\n", m.Path, m.Line)
	if len(m.Context) > 0 {
		b.WriteString("  ```\n")
		for _, line := range m.Context {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("  ```\n")
	}
	return b.String()
}

func (s *Server) handleGetSourceFile(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(getSourceFileSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("get_source_file", f)
	}
	path := schema.Str(args, "path")

	sf := s.engine.SourceFile(path)
	if sf == nil {
		return s.fail("get_source_file", failure.NotFoundf(
			`Use search_sdk with scope "paths" to find source files by substring.`,
			"no source file at path %q", path))
	}
	return s.ok(sf.Text), nil
}

func (s *Server) handleListAllExports(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(listAllExportsSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("list_all_exports", f)
	}
	pkg := schema.Str(args, "package")
	kind := schema.Str(args, "kind")
	limit := schema.Int(args, "limit", 50)
	offset := schema.Int(args, "offset", 0)

	all := s.engine.AllExports(pkg, kind)
	if len(all) == 0 {
		return s.fail("list_all_exports", failure.NotFoundf(
			"Check the package name with get_package_info, or drop the filters to browse everything.",
			"no exports matched the given filters"))
	}

	page, w := paginate.Slice(all, limit, offset)
	var b strings.Builder
	fmt.Fprintf(&b, "# Exports (%d of %d)\n", w.Returned, w.Total)
	for _, k := range model.Kinds() {
		wrote := false
		for _, m := range page {
			if m.Kind != string(k) {
				continue
			}
			if !wrote {
				fmt.Fprintf(&b, "\n## %s\n", k)
				wrote = true
			}
			fmt.Fprintf(&b, "- %s — %s, `%s`\n", m.Name, m.Package, m.SourceFile)
		}
	}
	writeWindow(&b, w)
	return s.ok(b.String()), nil
}

func (s *Server) handleListClasses(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(listClassesSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("list_classes", f)
	}
	pkg := schema.Str(args, "package")

	classes := s.engine.Classes(pkg)
	if len(classes) == 0 {
		return s.fail("list_classes", failure.NotFoundf(
			"Use list_all_exports to browse every export kind.",
			"no classes found"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Classes (%d)\n\n", len(classes))
	for _, m := range classes {
		fmt.Fprintf(&b, "- %s — %s, `%s`\n", m.Name, m.Package, m.SourceFile)
	}
	return s.ok(b.String()), nil
}

func (s *Server) handleListComponents(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, f := schema.Validate(listComponentsSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("list_components", f)
	}
	return s.okJSON(s.engine.Components())
}

func (s *Server) handleGetPackageInfo(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, f := schema.Validate(getPackageInfoSchema, req.Params.Arguments)
	if f != nil {
		return s.fail("get_package_info", f)
	}
	pkg := schema.Str(args, "package")

	descriptors := s.engine.Packages(pkg)
	if len(descriptors) == 0 {
		return s.fail("get_package_info", failure.NotFoundf(
			"Call get_package_info without arguments to list all packages.",
			"no package named %q", pkg))
	}
	return s.okJSON(descriptors)
}
