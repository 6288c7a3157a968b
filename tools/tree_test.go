package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_TreeHandler_RendersFullTree(t *testing.T) {
	h := &TreeHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, TreeArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	for _, want := range []string{"src/", "util.ts", "index.ts", "README.md", "3 files indexed"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output:\n%s", want, text)
		}
	}
	// Directories before files at the same level
	if strings.Index(text, "src/") > strings.Index(text, "README.md") {
		t.Errorf("expected directories before files:\n%s", text)
	}
}

func Test_TreeHandler_RendersSubtree(t *testing.T) {
	h := &TreeHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, TreeArgs{Path: "src"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "util.ts") {
		t.Errorf("expected util.ts in subtree:\n%s", text)
	}
	if strings.Contains(text, "README.md") {
		t.Errorf("README.md must not appear in the src subtree:\n%s", text)
	}
}

func Test_TreeHandler_UnknownPath(t *testing.T) {
	h := &TreeHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, TreeArgs{Path: "no/such/dir"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for unknown path")
	}
}

func Test_TreeHandler_NoDocumentYet(t *testing.T) {
	h := &TreeHandler{Docs: &fakeDocs{}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, TreeArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true before the first build")
	}
}

func Test_TreeHandler_MaxDepthLimitsRendering(t *testing.T) {
	h := &TreeHandler{Docs: &fakeDocs{doc: testDocument(t)}, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, TreeArgs{MaxDepth: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "src/") {
		t.Errorf("expected top-level src/ at depth 1:\n%s", text)
	}
	if strings.Contains(text, "util.ts") {
		t.Errorf("depth 1 must not descend into src/:\n%s", text)
	}
}
