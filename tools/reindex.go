package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexandro/codemap-mcp/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReindexArgs defines the input parameters for the codemap_reindex tool.
type ReindexArgs struct{}

// ReindexFunc runs a full rebuild and returns the resulting document.
// It is provided by the wiring layer to avoid circular dependencies.
type ReindexFunc func(ctx context.Context) (*index.Document, error)

// ReindexHandler holds the dependencies for the reindex tool.
type ReindexHandler struct {
	DoReindex ReindexFunc
	Logger    *slog.Logger
}

// Handle processes a codemap_reindex request.
func (h *ReindexHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ReindexArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()
	h.Logger.Info("codemap_reindex started")

	doc, err := h.DoReindex(ctx)
	if err != nil {
		h.Logger.Error("codemap_reindex failed", "error", err)
		return errorResult(fmt.Sprintf("Reindex error: %v", err)), nil, nil
	}

	elapsed := time.Since(start)
	h.Logger.Info("codemap_reindex complete", "files", doc.TotalFiles, "elapsed", elapsed)

	output := fmt.Sprintf("Reindex complete: %d files in %s", doc.TotalFiles, elapsed.Round(time.Millisecond))
	return textResult(output), nil, nil
}
