// Package scheduler converts a noisy stream of filesystem change events into
// a bounded rate of full index rebuilds, and carries the programmatic entry
// points the CLI layer calls.
package scheduler

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lexandro/codemap-mcp/config"
	"github.com/lexandro/codemap-mcp/extract"
	"github.com/lexandro/codemap-mcp/ignore"
	"github.com/lexandro/codemap-mcp/index"
	"github.com/lexandro/codemap-mcp/watcher"
)

// State is the scheduler's position in its rebuild lifecycle.
type State int

const (
	// StateIdle: no pending work; any event arms the debounce timer.
	StateIdle State = iota
	// StatePendingTimer: the debounce timer is armed; every further event
	// re-arms it, so it only fires after a full quiet window.
	StatePendingTimer
	// StateBuilding: a rebuild is in flight. Events arriving now are dropped,
	// not deferred: the index stays stale until the next event after the
	// build finishes.
	StateBuilding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingTimer:
		return "pendingTimer"
	case StateBuilding:
		return "building"
	}
	return "unknown"
}

// Builder runs one full index build. *index.Builder satisfies this.
type Builder interface {
	Build(ctx context.Context) (*index.Document, error)
}

// Reloader re-reads ignore rules from disk. *ignore.Matcher satisfies this.
type Reloader interface {
	Reload()
}

// Scheduler owns the rebuild state machine. All state lives in the Run
// goroutine and is communicated with exclusively through channels, so the
// three states and their transitions hold without relying on single-threaded
// execution.
type Scheduler struct {
	builder  Builder
	reloader Reloader
	events   <-chan watcher.Event
	debounce time.Duration
	logger   *slog.Logger

	// buildMu keeps manual rebuilds from overlapping scheduled ones
	buildMu sync.Mutex

	current atomic.Pointer[index.Document]
	builds  atomic.Int64
}

// New creates a scheduler over an event stream. The reloader may be nil when
// ignore-file reloading is not wanted.
func New(builder Builder, reloader Reloader, events <-chan watcher.Event, debounce time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		builder:  builder,
		reloader: reloader,
		events:   events,
		debounce: debounce,
		logger:   logger,
	}
}

// Current returns the most recently completed document, or nil before the
// first successful build. Partial builds are never visible here.
func (s *Scheduler) Current() *index.Document {
	return s.current.Load()
}

// Builds returns how many builds have completed, success or failure.
func (s *Scheduler) Builds() int64 {
	return s.builds.Load()
}

type buildOutcome struct {
	doc *index.Document
	err error
}

// Run executes an unconditional first build synchronously, then watches the
// event stream until ctx is cancelled or the stream closes. An in-flight
// build is never cancelled; shutdown waits for it to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.runBuildSync()

	state := StateIdle
	var timer *time.Timer
	var timerC <-chan time.Time
	buildDone := make(chan buildOutcome, 1)

	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			if state == StateBuilding {
				outcome := <-buildDone
				s.finishBuild(outcome)
			}
			return ctx.Err()

		case event, ok := <-s.events:
			if !ok {
				stopTimer()
				if state == StateBuilding {
					outcome := <-buildDone
					s.finishBuild(outcome)
				}
				return nil
			}

			s.maybeReloadIgnoreRules(event)

			if state == StateBuilding {
				// Dropped, not queued: no rebuild covers this change
				s.logger.Debug("change dropped during build", "path", event.Path, "op", event.Op)
				continue
			}

			state = StatePendingTimer
			stopTimer()
			timer = time.NewTimer(s.debounce)
			timerC = timer.C

		case <-timerC:
			timer = nil
			timerC = nil
			state = StateBuilding
			go func() {
				// Builds run to completion; there is no cancellation path
				doc, err := s.runBuild(context.Background())
				buildDone <- buildOutcome{doc: doc, err: err}
			}()

		case outcome := <-buildDone:
			s.finishBuild(outcome)
			state = StateIdle
		}
	}
}

// runBuildSync performs the startup build so the index exists before watching
// begins. A failure is logged, not fatal: the watch loop still starts and the
// next change will retry.
func (s *Scheduler) runBuildSync() {
	doc, err := s.runBuild(context.Background())
	s.finishBuild(buildOutcome{doc: doc, err: err})
}

func (s *Scheduler) runBuild(ctx context.Context) (*index.Document, error) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	return s.builder.Build(ctx)
}

// Rebuild runs one build immediately, outside the debounce cycle, after
// reloading ignore rules. On success the result becomes the current document.
// It serializes with scheduled builds but does not touch the timer state, so
// a pending debounced rebuild still fires afterwards.
func (s *Scheduler) Rebuild(ctx context.Context) (*index.Document, error) {
	if s.reloader != nil {
		s.reloader.Reload()
	}
	doc, err := s.runBuild(ctx)
	s.finishBuild(buildOutcome{doc: doc, err: err})
	return doc, err
}

func (s *Scheduler) finishBuild(outcome buildOutcome) {
	s.builds.Add(1)
	if outcome.err != nil {
		// The stale prior document remains current and on disk
		s.logger.Error("index build failed", "error", outcome.err)
		return
	}
	s.current.Store(outcome.doc)
}

// maybeReloadIgnoreRules reloads the matcher when an ignore file changed, so
// the rebuild triggered by this event sees the new rules.
func (s *Scheduler) maybeReloadIgnoreRules(event watcher.Event) {
	if s.reloader == nil {
		return
	}
	switch filepath.Base(event.Path) {
	case ".gitignore", ignore.IgnoreFileName:
		s.reloader.Reload()
		s.logger.Info("reloaded ignore rules", "trigger", filepath.Base(event.Path))
	}
}

// RunOnce builds the index a single time and returns the document. This is
// the one-shot entry point for the CLI layer.
func RunOnce(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*index.Document, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	matcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:          cfg.RootDir,
		Patterns:         cfg.IgnorePatterns,
		OutputPath:       cfg.OutputPath,
		MaxFileSizeBytes: cfg.MaxFileSizeBytes,
	})
	builder := index.NewBuilder(cfg, matcher, extract.NewRegistry(), logger)
	return builder.Build(ctx)
}
