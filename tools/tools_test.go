package tools

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lexandro/codemap-mcp/index"
)

// fakeDocs serves a fixed document as the current index state.
type fakeDocs struct {
	doc    *index.Document
	builds int64
}

func (f *fakeDocs) Current() *index.Document { return f.doc }
func (f *fakeDocs) Builds() int64            { return f.builds }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDocument(t *testing.T) *index.Document {
	t.Helper()
	files := map[string]*index.FileRecord{
		"src/util.ts": {
			RelativePath: "src/util.ts",
			Extension:    "ts",
			SizeBytes:    2048,
			Imports:      []string{},
			Exports:      []string{"add"},
			Functions:    []string{"add"},
			Classes:      []string{},
			Interfaces:   []string{},
			Constants:    []string{},
			Types:        []string{},
			Lines:        12,
		},
		"src/index.ts": {
			RelativePath: "src/index.ts",
			Extension:    "ts",
			SizeBytes:    512,
			Imports:      []string{"./util"},
			Exports:      []string{},
			Functions:    []string{},
			Classes:      []string{},
			Interfaces:   []string{},
			Constants:    []string{},
			Types:        []string{},
			Lines:        4,
		},
		"README.md": {
			RelativePath: "README.md",
			Extension:    "md",
			SizeBytes:    128,
			Imports:      []string{},
			Exports:      []string{},
			Functions:    []string{},
			Classes:      []string{},
			Interfaces:   []string{},
			Constants:    []string{},
			Types:        []string{},
			Lines:        3,
		},
	}
	order := []string{"README.md", "src/index.ts", "src/util.ts"}
	return &index.Document{
		GeneratedAt: time.Now().UTC(),
		ProjectRoot: "/tmp/project",
		TotalFiles:  len(files),
		FileTree:    index.BuildTree(order),
		Files:       files,
		Summary:     index.Summarize(files, order),
	}
}
