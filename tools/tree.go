package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexandro/codemap-mcp/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DocumentSource exposes the most recently built index document.
type DocumentSource interface {
	Current() *index.Document
	Builds() int64
}

// TreeArgs defines the input parameters for the codemap_tree tool.
type TreeArgs struct {
	Path     string `json:"path,omitempty" jsonschema:"Relative directory path to render a subtree of (e.g. src/util). Empty renders the whole tree"`
	MaxDepth int    `json:"maxDepth,omitempty" jsonschema:"Maximum directory depth to render (0 = unlimited)"`
}

// TreeHandler holds the dependencies for the tree tool.
type TreeHandler struct {
	Docs   DocumentSource
	Logger *slog.Logger
}

// Handle processes a codemap_tree request.
func (h *TreeHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args TreeArgs) (*mcp.CallToolResult, any, error) {
	doc := h.Docs.Current()
	if doc == nil {
		return errorResult("Index not built yet."), nil, nil
	}

	node := doc.FileTree
	if args.Path != "" {
		relPath := strings.Trim(strings.ReplaceAll(args.Path, "\\", "/"), "/")
		for _, segment := range strings.Split(relPath, "/") {
			node = childNode(node[segment])
			if node == nil {
				h.Logger.Info("codemap_tree path not found", "path", args.Path)
				return errorResult(fmt.Sprintf("Directory not found in index: %s", args.Path)), nil, nil
			}
		}
	}

	h.Logger.Info("codemap_tree", "path", args.Path, "maxDepth", args.MaxDepth)

	header := doc.ProjectRoot
	if args.Path != "" {
		header = args.Path
	}
	output := fmt.Sprintf("── %s (%d files indexed) ──\n%s",
		header, doc.TotalFiles, RenderTree(node, args.MaxDepth))

	return textResult(output), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
