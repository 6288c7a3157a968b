package index

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lexandro/codemap-mcp/config"
	"github.com/lexandro/codemap-mcp/extract"
	"github.com/lexandro/codemap-mcp/ignore"
	"github.com/lexandro/codemap-mcp/language"
)

// extractWorkers bounds how many files are read and scanned concurrently.
const extractWorkers = 8

// ContentSink receives raw file contents discovered during a build, e.g. a
// full-text search index. Implementations must be safe for concurrent Add
// calls; extraction runs files in parallel.
type ContentSink interface {
	Reset() error
	Add(relativePath string, content string, languageName string) error
}

// Builder assembles one immutable index document per Build call: walk the
// root (pruned by the ignore matcher), filter by extension whitelist, extract
// per-file metadata, fold the tree, aggregate the summary, and persist the
// result.
type Builder struct {
	cfg      *config.Config
	matcher  *ignore.Matcher
	registry *extract.Registry
	logger   *slog.Logger
	sink     ContentSink
}

// NewBuilder creates a builder over a normalized configuration.
func NewBuilder(cfg *config.Config, matcher *ignore.Matcher, registry *extract.Registry, logger *slog.Logger) *Builder {
	return &Builder{
		cfg:      cfg,
		matcher:  matcher,
		registry: registry,
		logger:   logger,
	}
}

// SetContentSink wires an optional sink that gets every readable file's
// content during builds.
func (b *Builder) SetContentSink(sink ContentSink) {
	b.sink = sink
}

// discoveredFile is one walk survivor, in discovery order.
type discoveredFile struct {
	absolutePath string
	relativePath string
	sizeBytes    int64
}

// Build runs one full pass and returns the new document. The document is
// persisted to the configured output path before returning; a persistence
// failure fails the build. An empty or fully ignored tree is not an error.
func (b *Builder) Build(ctx context.Context) (*Document, error) {
	start := time.Now()

	discovered := b.discover()

	if b.sink != nil {
		if err := b.sink.Reset(); err != nil {
			b.logger.Warn("resetting content sink", "error", err)
		}
	}

	// Extraction is order-independent and side-effect-free per file, so files
	// run in parallel; results land in their discovery slot.
	records := make([]*FileRecord, len(discovered))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(extractWorkers)
	for i, file := range discovered {
		group.Go(func() error {
			records[i] = b.extractFile(file)
			return groupCtx.Err()
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("extraction aborted: %w", err)
	}

	files := make(map[string]*FileRecord, len(records))
	order := make([]string, 0, len(records))
	for _, record := range records {
		files[record.RelativePath] = record
		order = append(order, record.RelativePath)
	}

	doc := &Document{
		GeneratedAt: time.Now().UTC(),
		ProjectRoot: b.cfg.RootDir,
		TotalFiles:  len(files),
		FileTree:    BuildTree(order),
		Files:       files,
		Summary:     Summarize(files, order),
	}

	if err := writeDocument(b.cfg.OutputPath, doc); err != nil {
		return nil, fmt.Errorf("persisting index document: %w", err)
	}

	b.logger.Info("index build complete",
		"files", doc.TotalFiles,
		"output", b.cfg.OutputPath,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return doc, nil
}

// discover walks the root and returns whitelisted, non-ignored files in
// discovery order. Ignored directories are pruned, not descended into;
// unreadable subtrees are skipped rather than failing the walk.
func (b *Builder) discover() []discoveredFile {
	whitelist := b.cfg.ExtensionSet()
	var discovered []discoveredFile

	filepath.WalkDir(b.cfg.RootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != b.cfg.RootDir && b.matcher.ShouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if b.matcher.ShouldIgnore(path) {
			return nil
		}
		if !whitelist[language.Extension(path)] {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if b.matcher.IsFileTooLarge(info.Size()) {
			return nil
		}

		relativePath, relErr := filepath.Rel(b.cfg.RootDir, path)
		if relErr != nil {
			return nil
		}
		discovered = append(discovered, discoveredFile{
			absolutePath: path,
			relativePath: filepath.ToSlash(relativePath),
			sizeBytes:    info.Size(),
		})
		return nil
	})

	return discovered
}

// extractFile turns one discovered file into a record. No failure here is
// allowed to escape: unreadable or binary files yield a record carrying only
// path, extension, size, and the error.
func (b *Builder) extractFile(file discoveredFile) *FileRecord {
	record := &FileRecord{
		RelativePath: file.relativePath,
		Extension:    language.Extension(file.absolutePath),
		SizeBytes:    file.sizeBytes,
	}

	content, err := readFileWithRetry(file.absolutePath)
	if err != nil {
		record.ExtractionError = fmt.Sprintf("reading file: %v", err)
		normalizeRecord(record)
		return record
	}
	if language.IsBinaryContent(content) {
		record.ExtractionError = "binary file"
		normalizeRecord(record)
		return record
	}

	text := string(content)
	fragment := b.registry.Extract(record.Extension, text)

	record.Imports = fragment.Imports
	record.Exports = fragment.Exports
	record.Functions = fragment.Functions
	record.Classes = fragment.Classes
	record.Interfaces = fragment.Interfaces
	record.Constants = fragment.Constants
	record.Types = fragment.Types
	record.Lines = fragment.Lines
	record.HasComments = fragment.HasComments
	normalizeRecord(record)

	if b.sink != nil {
		if err := b.sink.Add(record.RelativePath, text, language.Detect(file.absolutePath)); err != nil {
			b.logger.Debug("content sink rejected file", "path", record.RelativePath, "error", err)
		}
	}

	return record
}

// normalizeRecord replaces nil slices so every record serializes with [] for
// empty categories instead of null.
func normalizeRecord(record *FileRecord) {
	if record.Imports == nil {
		record.Imports = []string{}
	}
	if record.Exports == nil {
		record.Exports = []string{}
	}
	if record.Functions == nil {
		record.Functions = []string{}
	}
	if record.Classes == nil {
		record.Classes = []string{}
	}
	if record.Interfaces == nil {
		record.Interfaces = []string{}
	}
	if record.Constants == nil {
		record.Constants = []string{}
	}
	if record.Types == nil {
		record.Types = []string{}
	}
}

// readFileWithRetry attempts to read a file, retrying once after a short delay
// if the file is locked (common on Windows when editors are saving).
func readFileWithRetry(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		time.Sleep(50 * time.Millisecond)
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// writeDocument persists the document with a full overwrite: marshal, write to
// a temp file in the destination directory, then rename into place.
func writeDocument(outputPath string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	data = append(data, '\n')

	outputDir := filepath.Dir(outputPath)
	tmpFile, err := os.CreateTemp(outputDir, ignore.TempFilePattern)
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", outputDir, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, outputPath, err)
	}

	return nil
}
