package tools

import (
	"context"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultMaxFileResults = 50

// FilesArgs defines the input parameters for the codemap_files tool.
type FilesArgs struct {
	Pattern    string `json:"pattern" jsonschema:"Glob pattern to match files (e.g. **/*.ts or src/**/*.go)"`
	NameOnly   bool   `json:"nameOnly,omitempty" jsonschema:"If true return only file paths without metadata"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (default 50)"`
}

// FilesHandler holds the dependencies for the files tool.
type FilesHandler struct {
	Docs   DocumentSource
	Logger *slog.Logger
}

// Handle processes a codemap_files request.
func (h *FilesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FilesArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Pattern == "" {
		h.Logger.Warn("codemap_files called with empty pattern")
		return errorResult("Error: pattern parameter is required"), nil, nil
	}

	doc := h.Docs.Current()
	if doc == nil {
		return errorResult("Index not built yet."), nil, nil
	}

	maxResults := args.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxFileResults
	}

	pattern := strings.ReplaceAll(args.Pattern, "\\", "/")
	if !doublestar.ValidatePattern(pattern) {
		h.Logger.Warn("codemap_files invalid pattern", "pattern", args.Pattern)
		return errorResult("Error: invalid glob pattern: " + args.Pattern), nil, nil
	}

	var matched []string
	for relativePath := range doc.Files {
		if matchFilePattern(relativePath, pattern) {
			matched = append(matched, relativePath)
		}
	}
	sort.Strings(matched)
	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}

	h.Logger.Info("codemap_files",
		"pattern", args.Pattern,
		"results", len(matched),
		"elapsed", time.Since(start),
	)

	return textResult(FormatFileList(matched, doc.Files, args.NameOnly)), nil, nil
}

// matchFilePattern matches against the full relative path, and against the
// base name for patterns without a separator so "*.go" works at any depth.
func matchFilePattern(relativePath, pattern string) bool {
	if ok, _ := doublestar.Match(pattern, relativePath); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, _ := doublestar.Match(pattern, path.Base(relativePath))
		return ok
	}
	return false
}
