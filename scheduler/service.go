package scheduler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lexandro/codemap-mcp/config"
	"github.com/lexandro/codemap-mcp/extract"
	"github.com/lexandro/codemap-mcp/ignore"
	"github.com/lexandro/codemap-mcp/index"
	"github.com/lexandro/codemap-mcp/watcher"
)

// NewFromConfig wires the matcher, extractor registry, builder, filesystem
// watcher, and scheduler for a watch session. The optional sink receives
// every readable file's content on each build (used by the MCP search tool).
// The caller owns the returned watcher: start it in a goroutine and close it
// when done.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, sink index.ContentSink) (*Scheduler, *watcher.Watcher, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, nil, err
	}

	matcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:          cfg.RootDir,
		Patterns:         cfg.IgnorePatterns,
		OutputPath:       cfg.OutputPath,
		MaxFileSizeBytes: cfg.MaxFileSizeBytes,
	})

	builder := index.NewBuilder(cfg, matcher, extract.NewRegistry(), logger)
	if sink != nil {
		builder.SetContentSink(sink)
	}

	fileWatcher, err := watcher.NewWatcher(cfg.RootDir, matcher, logger)
	if err != nil {
		return nil, nil, err
	}

	sched := New(builder, matcher, fileWatcher.Events(), cfg.Debounce, logger)
	return sched, fileWatcher, nil
}

// Watch runs the full rebuild loop until ctx is cancelled: one synchronous
// build up front, then debounced rebuilds on filesystem changes.
func Watch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	sched, fileWatcher, err := NewFromConfig(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer fileWatcher.Close()

	go fileWatcher.Start()

	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
