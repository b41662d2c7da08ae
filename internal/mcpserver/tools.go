package mcpserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// readOnly marks a tool as a pure read with no outside effects.
func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds every documentation and SDK tool to the MCP server. The
// schema passed here is the same object the handler validates against.
func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_documents",
		Description: "List Push Chain documentation entries, optionally filtered by category. Paginated via limit/offset.",
		InputSchema: listDocumentsSchema,
		Annotations: readOnly(),
	}, s.handleListDocuments)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_document",
		Description: "Retrieve one documentation entry by its exact path. Returns the full raw markdown.",
		InputSchema: getDocumentSchema,
		Annotations: readOnly(),
	}, s.handleGetDocument)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "search_docs",
		Description: "Search documentation by keyword. Matches names, paths, and metadata first, widening to document content (and the upstream repository when configured) if few hits are found.",
		InputSchema: searchDocsSchema,
		Annotations: readOnly(),
	}, s.handleSearchDocs)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_export",
		Description: "Look up an exported SDK symbol by exact name. Returns every declaration with its kind, owning package, and a best-effort definition snippet.",
		InputSchema: getExportSchema,
		Annotations: readOnly(),
	}, s.handleGetExport)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "search_sdk",
		Description: "Keyword search across the SDK: export names, file paths, file contents (with surrounding context lines), and usage examples from documentation code blocks.",
		InputSchema: searchSDKSchema,
		Annotations: readOnly(),
	}, s.handleSearchSDK)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_source_file",
		Description: "Retrieve the full text of one SDK source file by its exact packages/... path.",
		InputSchema: getSourceFileSchema,
		Annotations: readOnly(),
	}, s.handleGetSourceFile)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_all_exports",
		Description: "List every exported SDK symbol grouped by kind, optionally filtered by package or kind. Paginated via limit/offset.",
		InputSchema: listAllExportsSchema,
		Annotations: readOnly(),
	}, s.handleListAllExports)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_classes",
		Description: "List exported SDK classes, optionally filtered by package.",
		InputSchema: listClassesSchema,
		Annotations: readOnly(),
	}, s.handleListClasses)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_components",
		Description: "List UI exports classified as components, hooks (use* prefix), and providers (*Provider* names).",
		InputSchema: listComponentsSchema,
		Annotations: readOnly(),
	}, s.handleListComponents)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_package_info",
		Description: "Describe SDK packages: name, version, description, dependencies, and per-kind export counts. Omit the package argument to list all packages.",
		InputSchema: getPackageInfoSchema,
		Annotations: readOnly(),
	}, s.handleGetPackageInfo)
}
