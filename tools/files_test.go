package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_FilesHandler_GlobMatch(t *testing.T) {
	h := &FilesHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, FilesArgs{Pattern: "src/**/*.ts"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "src/index.ts") || !strings.Contains(text, "src/util.ts") {
		t.Errorf("expected both ts files:\n%s", text)
	}
	if strings.Contains(text, "README.md") {
		t.Errorf("README.md must not match:\n%s", text)
	}
}

func Test_FilesHandler_BarePatternMatchesAnyDepth(t *testing.T) {
	h := &FilesHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, FilesArgs{Pattern: "*.ts", NameOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "src/util.ts") {
		t.Errorf("expected bare *.ts to match nested files:\n%s", text)
	}
}

func Test_FilesHandler_NameOnlyOmitsMetadata(t *testing.T) {
	h := &FilesHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, FilesArgs{Pattern: "**/*.ts", NameOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if strings.Contains(text, "lines") {
		t.Errorf("nameOnly output must not carry metadata:\n%s", text)
	}
}

func Test_FilesHandler_MaxResults(t *testing.T) {
	h := &FilesHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, FilesArgs{Pattern: "**/*", MaxResults: 1, NameOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "Found 1 files") {
		t.Errorf("expected a single result:\n%s", text)
	}
}

func Test_FilesHandler_EmptyPattern(t *testing.T) {
	h := &FilesHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, FilesArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty pattern")
	}
}

func Test_FilesHandler_NoMatches(t *testing.T) {
	h := &FilesHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, FilesArgs{Pattern: "**/*.py"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "No files matched") {
		t.Errorf("expected no-match message:\n%s", text)
	}
}
