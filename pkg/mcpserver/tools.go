package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// indexFileTool describes index_file: index (or return the cached index
// for) a single file, summarised as definition counts per kind.
func indexFileTool() mcp.Tool {
	return mcp.NewTool("index_file",
		mcp.WithDescription("Index a source file and return a summary of its definitions"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Absolute or workspace-relative path to the source file")),
	)
}

// listDefinitionsTool describes list_definitions: the flattened list of a
// file's top-level definitions, optionally filtered to one symbolid.Kind.
func listDefinitionsTool() mcp.Tool {
	return mcp.NewTool("list_definitions",
		mcp.WithDescription("List top-level definitions extracted from a file, optionally filtered by kind"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Absolute or workspace-relative path to the source file")),
		mcp.WithString("kind", mcp.Description("Restrict results to one kind: class, interface, enum, namespace, function, variable, constant, type_alias, import")),
	)
}

// findSymbolTool describes find_symbol: search every file currently warm in
// the Project Index's LRU for definitions matching a name.
func findSymbolTool() mcp.Tool {
	return mcp.NewTool("find_symbol",
		mcp.WithDescription("Find every SymbolId whose definition name matches, across every file currently cached"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Exact definition name to search for")),
	)
}
