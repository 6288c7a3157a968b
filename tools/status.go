package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/lexandro/codemap-mcp/search"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StatusArgs defines the input parameters for the codemap_status tool (none required).
type StatusArgs struct{}

// StatusHandler holds the dependencies for the status tool.
type StatusHandler struct {
	Docs      DocumentSource
	Content   *search.Index
	StartTime time.Time
	RootDir   string
	Logger    *slog.Logger
}

// Handle processes a codemap_status request.
func (h *StatusHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, any, error) {
	doc := h.Docs.Current()
	uptime := time.Since(h.StartTime)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	var builder strings.Builder
	builder.WriteString("=== codemap-mcp Status ===\n\n")
	builder.WriteString(fmt.Sprintf("Root directory: %s\n", h.RootDir))
	builder.WriteString(fmt.Sprintf("Uptime: %s\n", formatDuration(uptime)))
	builder.WriteString(fmt.Sprintf("Completed builds: %d\n", h.Docs.Builds()))

	if doc == nil {
		builder.WriteString("Index: not built yet\n")
		h.Logger.Info("codemap_status", "builds", h.Docs.Builds(), "indexed", false)
		return textResult(builder.String()), nil, nil
	}

	builder.WriteString(fmt.Sprintf("Last build: %s\n", doc.GeneratedAt.Format(time.RFC3339)))
	builder.WriteString(fmt.Sprintf("Indexed files: %d\n", doc.TotalFiles))
	if h.Content != nil {
		builder.WriteString(fmt.Sprintf("Content-indexed documents: %d\n", h.Content.DocCount()))
	}
	builder.WriteString(fmt.Sprintf("Functions: %d, classes: %d, interfaces: %d, constants: %d\n",
		doc.Summary.TotalFunctions,
		doc.Summary.TotalClasses,
		doc.Summary.TotalInterfaces,
		doc.Summary.TotalConstants,
	))
	builder.WriteString(fmt.Sprintf("Memory usage: %s (heap: %s)\n",
		formatFileSize(int64(memStats.Alloc)),
		formatFileSize(int64(memStats.HeapAlloc)),
	))

	if len(doc.Summary.FilesByExtension) > 0 {
		builder.WriteString("\nFiles by extension:\n")

		type extEntry struct {
			ext   string
			count int
		}
		entries := make([]extEntry, 0, len(doc.Summary.FilesByExtension))
		for ext, count := range doc.Summary.FilesByExtension {
			entries = append(entries, extEntry{ext, count})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].count != entries[j].count {
				return entries[i].count > entries[j].count
			}
			return entries[i].ext < entries[j].ext
		})

		for _, entry := range entries {
			builder.WriteString(fmt.Sprintf("  %-12s %d files\n", entry.ext, entry.count))
		}
	}

	if len(doc.Summary.LargestFiles) > 0 {
		builder.WriteString("\nLargest files:\n")
		for _, file := range doc.Summary.LargestFiles {
			builder.WriteString(fmt.Sprintf("  %-40s %s\n", file.Path, formatFileSize(file.Size)))
		}
	}

	h.Logger.Info("codemap_status",
		"builds", h.Docs.Builds(),
		"files", doc.TotalFiles,
		"memory", memStats.Alloc,
		"uptime", uptime,
	)

	return textResult(builder.String()), nil, nil
}
