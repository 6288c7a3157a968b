package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FileArgs defines the input parameters for the codemap_file tool.
type FileArgs struct {
	FilePath string `json:"filePath" jsonschema:"Relative file path to look up (e.g. src/main.go)"`
}

// FileHandler holds the dependencies for the file tool.
type FileHandler struct {
	Docs   DocumentSource
	Logger *slog.Logger
}

// Handle processes a codemap_file request.
func (h *FileHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FileArgs) (*mcp.CallToolResult, any, error) {
	if args.FilePath == "" {
		h.Logger.Warn("codemap_file called with empty filePath")
		return errorResult("Error: filePath parameter is required"), nil, nil
	}

	doc := h.Docs.Current()
	if doc == nil {
		return errorResult("Index not built yet."), nil, nil
	}

	relativePath := strings.ReplaceAll(args.FilePath, "\\", "/")
	record, ok := doc.Files[relativePath]
	if !ok {
		h.Logger.Info("codemap_file not found", "filePath", args.FilePath)
		return errorResult(fmt.Sprintf("File not found in index: %s", args.FilePath)), nil, nil
	}

	h.Logger.Info("codemap_file", "filePath", args.FilePath)
	return textResult(FormatFileRecord(record)), nil, nil
}
