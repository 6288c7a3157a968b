package server

import (
	"github.com/lexandro/codemap-mcp/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	treeHandler *tools.TreeHandler,
	fileHandler *tools.FileHandler,
	filesHandler *tools.FilesHandler,
	searchHandler *tools.SearchHandler,
	statusHandler *tools.StatusHandler,
	reindexHandler *tools.ReindexHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "codemap-mcp",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server maintains a structural index of the project: the file tree, per-file imports/exports/functions/classes, and full-text content search. The index rebuilds automatically when files change, so results are always current without re-scanning the filesystem.

Tool guidance:
- Use codemap_tree to get a project overview before exploring directories manually
- Use codemap_file to see a file's imports, exports, and definitions without reading it
- Use codemap_files instead of find/ls for file lookup by glob
- Use codemap_search instead of grep for content search`,
		},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "codemap_tree",
		Description: `Render the indexed project file tree. Directories sort before files.

Options:
  - path: render only the subtree under a relative directory (e.g. "src/util")
  - maxDepth: limit rendering depth (0 = unlimited)`,
	}, treeHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codemap_file",
		Description: `Show a file's structural metadata from the index: size, line count, imports, exports, functions, classes, interfaces, constants, and type definitions. Much cheaper than reading the file.`,
	}, fileHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "codemap_files",
		Description: `Find indexed files by glob pattern.

Pattern examples:
  - "**/*.go" - all Go files
  - "src/**/*.ts" - TypeScript files under src/
  - "*.json" - JSON files at any depth (bare patterns match by file name)`,
	}, filesHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "codemap_search",
		Description: `Search file contents using full-text indexed search. Much faster than grep for large codebases.

Query formats:
  - Plain text: word-level matching (e.g., "handleRequest")
  - "quoted text": exact phrase matching (e.g., "\"func main\"")
  - /regex/: regular expression matching (e.g., "/func\s+\w+Handler/")

Filtering:
  - filePath: exact relative path to search in a single file. Overrides fileGlob.
  - fileGlob: glob pattern to filter by file type (e.g., "**/*.go").`,
	}, searchHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codemap_status",
		Description: "Show index status: build count, file count, extension breakdown, largest files, memory usage, and uptime.",
	}, statusHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codemap_reindex",
		Description: "Force a full rebuild of the project index and the persisted index document.",
	}, reindexHandler.Handle)

	return mcpServer
}
