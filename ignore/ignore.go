package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// IgnoreFileName is the project-local ignore file read from the root directory.
// One pattern per line, lines starting with # are comments.
const IgnoreFileName = ".codemapignore"

// TempFilePattern is the os.CreateTemp pattern used when persisting the index
// document. Paths with a matching basename are always excluded, so a build's
// own temp-and-rename write never feeds change events back into the watcher.
const TempFilePattern = ".codemap-*.tmp"

// Matcher decides whether a path is excluded from indexing. It combines
// built-in defaults, .gitignore rules, .codemapignore patterns, and patterns
// supplied through the configuration.
// Thread-safe: Reload() acquires a write lock, ShouldIgnore()/ShouldIgnoreDir() acquire a read lock.
type Matcher struct {
	mu               sync.RWMutex
	rootDir          string
	outputPath       string
	gitIgnore        gitignore.GitIgnore
	configPatterns   []pattern
	filePatterns     []pattern
	maxFileSizeBytes int64
}

// pattern is a compiled ignore pattern. A pattern containing "**" is matched
// as a doublestar glob against the root-relative path; anything else falls
// back to a plain substring match with "*" characters stripped. The substring
// path is deliberately approximate, not glob semantics.
type pattern struct {
	glob   string // set when the raw pattern contains "**"
	substr string // set otherwise
}

// MatcherOptions configures the ignore matcher.
type MatcherOptions struct {
	RootDir          string
	Patterns         []string // extra patterns from the configuration
	OutputPath       string   // the index document itself, always excluded
	MaxFileSizeBytes int64
}

// NewMatcher creates a matcher over defaults, .gitignore, .codemapignore, and
// the configured patterns.
func NewMatcher(options MatcherOptions) *Matcher {
	m := &Matcher{
		rootDir:          options.RootDir,
		outputPath:       options.OutputPath,
		configPatterns:   compilePatterns(options.Patterns),
		maxFileSizeBytes: options.MaxFileSizeBytes,
	}
	if m.maxFileSizeBytes <= 0 {
		m.maxFileSizeBytes = 1024 * 1024 // 1MB default
	}

	m.gitIgnore = loadGitIgnore(filepath.Join(options.RootDir, ".gitignore"), options.RootDir)
	m.filePatterns = compilePatterns(loadPatternFile(filepath.Join(options.RootDir, IgnoreFileName)))

	return m
}

// compilePatterns converts raw pattern strings into matchable form.
func compilePatterns(raw []string) []pattern {
	patterns := make([]pattern, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(strings.ReplaceAll(r, "\\", "/"))
		if r == "" {
			continue
		}
		if strings.Contains(r, "**") {
			patterns = append(patterns, pattern{glob: r})
			continue
		}
		stripped := strings.ReplaceAll(r, "*", "")
		if stripped == "" {
			continue
		}
		patterns = append(patterns, pattern{substr: stripped})
	}
	return patterns
}

// matches applies one compiled pattern to a root-relative path.
func (p pattern) matches(relativePath string) bool {
	if p.glob != "" {
		matched, err := doublestar.Match(p.glob, relativePath)
		return err == nil && matched
	}
	return strings.Contains(relativePath, p.substr)
}

// ShouldIgnore returns true if the given path should be excluded from indexing.
// The path should be absolute; it is matched relative to the root directory.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.outputPath != "" && absolutePath == m.outputPath {
		return true
	}
	if matched, _ := filepath.Match(TempFilePattern, filepath.Base(absolutePath)); matched {
		return true
	}

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	if matchesDefaultPatterns(relativePath, absolutePath) {
		return true
	}

	// Determine if path is a directory (for gitignore matching)
	isDir := false
	if info, err := os.Stat(absolutePath); err == nil {
		isDir = info.IsDir()
	}

	// Relative() doesn't require the file to exist on disk
	if m.gitIgnore != nil {
		match := m.gitIgnore.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	for _, p := range m.filePatterns {
		if p.matches(relativePath) {
			return true
		}
	}
	for _, p := range m.configPatterns {
		if p.matches(relativePath) {
			return true
		}
	}

	return false
}

// ShouldIgnoreDir returns true if a directory should be skipped entirely
// during traversal, so the walk never descends into it.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	// Fast check against the glob-free defaults (no lock needed)
	if defaultNames[strings.ToLower(filepath.Base(absolutePath))] {
		return true
	}

	return m.ShouldIgnore(absolutePath)
}

// IsFileTooLarge returns true if the file exceeds the max file size limit.
func (m *Matcher) IsFileTooLarge(fileSize int64) bool {
	return fileSize > m.maxFileSizeBytes
}

// Reload re-reads .gitignore and .codemapignore from disk. Used when the
// watcher detects changes to either file.
func (m *Matcher) Reload() {
	newGitIgnore := loadGitIgnore(filepath.Join(m.rootDir, ".gitignore"), m.rootDir)
	newFilePatterns := compilePatterns(loadPatternFile(filepath.Join(m.rootDir, IgnoreFileName)))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gitIgnore = newGitIgnore
	m.filePatterns = newFilePatterns
}

// matchesDefaultPatterns checks the path against the built-in defaults.
// Bare names match any path component; glob-ish defaults match the basename.
func matchesDefaultPatterns(relativePath string, absolutePath string) bool {
	baseName := filepath.Base(absolutePath)
	baseNameLower := strings.ToLower(baseName)

	for _, defaultPattern := range DefaultIgnorePatterns {
		if !strings.ContainsAny(defaultPattern, "*?[") {
			if baseNameLower == strings.ToLower(defaultPattern) {
				return true
			}
			for _, part := range strings.Split(relativePath, "/") {
				if strings.EqualFold(part, defaultPattern) {
					return true
				}
			}
			continue
		}

		matched, err := filepath.Match(strings.ToLower(defaultPattern), baseNameLower)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// loadPatternFile reads a newline-separated ignore file, skipping blank lines
// and #-prefixed comments. A missing file yields no patterns.
func loadPatternFile(filePath string) []string {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// loadGitIgnore reads a .gitignore and creates a GitIgnore matcher from it.
// Uses io.Reader approach to ensure the file handle is properly closed on Windows.
func loadGitIgnore(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
