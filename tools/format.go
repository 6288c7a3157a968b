package tools

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lexandro/codemap-mcp/index"
	"github.com/lexandro/codemap-mcp/search"
)

// FormatSearchResults formats content search results as human-readable text,
// grouped by file with line numbers and optional context.
func FormatSearchResults(results []search.Result, totalMatches int) string {
	if len(results) == 0 {
		return "No matches found."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d matches in %d files:\n\n", totalMatches, len(results)))

	for i, result := range results {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("── %s ──\n", result.RelativePath))

		for _, match := range result.Matches {
			for _, ctxLine := range match.ContextBefore {
				builder.WriteString(fmt.Sprintf("  %s\n", ctxLine))
			}
			builder.WriteString(fmt.Sprintf("  %d: %s\n", match.LineNumber, match.LineText))
			for _, ctxLine := range match.ContextAfter {
				builder.WriteString(fmt.Sprintf("  %s\n", ctxLine))
			}
		}
	}

	return builder.String()
}

// FormatFileRecord formats one file's extracted metadata.
func FormatFileRecord(record *index.FileRecord) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("── %s ──\n", record.RelativePath))
	builder.WriteString(fmt.Sprintf("Extension: %s\n", record.Extension))
	builder.WriteString(fmt.Sprintf("Size: %s\n", formatFileSize(record.SizeBytes)))
	builder.WriteString(fmt.Sprintf("Lines: %d\n", record.Lines))
	if record.ExtractionError != "" {
		builder.WriteString(fmt.Sprintf("Extraction error: %s\n", record.ExtractionError))
		return builder.String()
	}

	writeNameList(&builder, "Imports", record.Imports)
	writeNameList(&builder, "Exports", record.Exports)
	writeNameList(&builder, "Functions", record.Functions)
	writeNameList(&builder, "Classes", record.Classes)
	writeNameList(&builder, "Interfaces", record.Interfaces)
	writeNameList(&builder, "Constants", record.Constants)
	writeNameList(&builder, "Types", record.Types)
	return builder.String()
}

func writeNameList(builder *strings.Builder, label string, names []string) {
	if len(names) == 0 {
		return
	}
	builder.WriteString(fmt.Sprintf("%s (%d):\n", label, len(names)))
	for _, name := range names {
		builder.WriteString(fmt.Sprintf("  %s\n", name))
	}
}

// FormatFileList formats matched file paths, one per line, with optional
// per-file metadata pulled from the index document.
func FormatFileList(paths []string, files map[string]*index.FileRecord, nameOnly bool) string {
	if len(paths) == 0 {
		return "No files matched."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d files:\n\n", len(paths)))
	for _, path := range paths {
		if nameOnly {
			builder.WriteString(path)
			builder.WriteString("\n")
			continue
		}
		record := files[path]
		if record == nil {
			builder.WriteString(fmt.Sprintf("  %s\n", path))
			continue
		}
		builder.WriteString(fmt.Sprintf("  %s  (%s, %d lines)\n",
			path, formatFileSize(record.SizeBytes), record.Lines))
	}
	return builder.String()
}

// RenderTree renders a nested directory tree as indented text. Directories
// come before files, both alphabetically, and carry a trailing slash.
// maxDepth <= 0 means unlimited.
func RenderTree(tree index.DirectoryNode, maxDepth int) string {
	var builder strings.Builder
	renderTreeLevel(&builder, tree, 0, maxDepth)
	if builder.Len() == 0 {
		return "(empty)\n"
	}
	return builder.String()
}

func renderTreeLevel(builder *strings.Builder, node index.DirectoryNode, depth, maxDepth int) {
	if maxDepth > 0 && depth >= maxDepth {
		return
	}

	var dirs, fileNames []string
	for name, child := range node {
		if _, ok := child.(index.DirectoryNode); ok {
			dirs = append(dirs, name)
		} else if childMap, ok := child.(map[string]any); ok && childMap != nil {
			dirs = append(dirs, name)
		} else {
			fileNames = append(fileNames, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(fileNames)

	indent := strings.Repeat("  ", depth)
	for _, name := range dirs {
		builder.WriteString(fmt.Sprintf("%s%s/\n", indent, name))
		renderTreeLevel(builder, childNode(node[name]), depth+1, maxDepth)
	}
	for _, name := range fileNames {
		builder.WriteString(fmt.Sprintf("%s%s\n", indent, name))
	}
}

func childNode(v any) index.DirectoryNode {
	switch n := v.(type) {
	case index.DirectoryNode:
		return n
	case map[string]any:
		return index.DirectoryNode(n)
	default:
		return nil
	}
}

// formatFileSize converts bytes to a human-readable string.
func formatFileSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	totalMinutes := totalSeconds / 60
	remainderSeconds := totalSeconds % 60
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm%ds", totalMinutes, remainderSeconds)
	}
	hours := totalMinutes / 60
	remainderMinutes := totalMinutes % 60
	return fmt.Sprintf("%dh%dm", hours, remainderMinutes)
}
