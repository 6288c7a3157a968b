package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lexandro/codemap-mcp/config"
)

func Test_Watch_OwnPersistenceDoesNotRetriggerRebuilds(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{RootDir: root, Debounce: 100 * time.Millisecond}
	sched, fileWatcher, err := NewFromConfig(cfg, testLogger(), nil)
	if err != nil {
		t.Fatalf("wiring failed: %v", err)
	}
	defer fileWatcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go fileWatcher.Start()
	go func() { done <- sched.Run(ctx) }()

	waitForBuilds(t, sched, 1, 2*time.Second)

	// One external change
	if err := os.WriteFile(filepath.Join(root, "extra.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitForBuilds(t, sched, 2, 2*time.Second)

	// Several debounce windows of quiet: the temp-and-rename events from
	// writing the index document must not schedule further rebuilds
	time.Sleep(600 * time.Millisecond)
	if got := sched.Builds(); got != 2 {
		t.Fatalf("expected 2 builds for one external change, got %d", got)
	}
	if doc := sched.Current(); doc == nil || doc.TotalFiles != 2 {
		t.Fatalf("expected a document with 2 files, got %+v", doc)
	}

	cancel()
	<-done
}
