package search

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/bmatcuk/doublestar/v4"
)

// Index provides full-text search over indexed file contents using an
// in-memory Bleve index. It doubles as the content sink fed by index builds:
// Reset is called at the start of a build and Add once per extracted file.
type Index struct {
	mu    sync.RWMutex
	bleve bleve.Index
	// contents keeps raw file text for line-level match extraction,
	// keyed by slash-separated relative path.
	contents map[string]string
}

// NewIndex creates an empty in-memory content index.
func NewIndex() (*Index, error) {
	b, err := bleve.NewMemOnly(newIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating bleve index: %w", err)
	}
	return &Index{
		bleve:    b,
		contents: make(map[string]string),
	}, nil
}

// contentDocument is the shape stored in Bleve per file.
type contentDocument struct {
	Content  string `json:"content"`
	Path     string `json:"path"`
	Language string `json:"language"`
}

func newIndexMapping() *mapping.IndexMappingImpl {
	m := bleve.NewIndexMapping()
	doc := bleve.NewDocumentMapping()

	content := bleve.NewTextFieldMapping()
	content.Store = false // raw text lives in contents, not in Bleve
	content.IncludeInAll = true
	doc.AddFieldMappingsAt("content", content)

	filePath := bleve.NewTextFieldMapping()
	filePath.Store = true
	filePath.IncludeInAll = false
	doc.AddFieldMappingsAt("path", filePath)

	lang := bleve.NewKeywordFieldMapping()
	lang.Store = true
	lang.IncludeInAll = false
	doc.AddFieldMappingsAt("language", lang)

	m.DefaultMapping = doc
	return m
}

// Reset drops all indexed documents. Builds call it before re-adding the
// current file set so removed files do not linger in search results.
func (ix *Index) Reset() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if err := ix.bleve.Close(); err != nil {
		return fmt.Errorf("closing content index: %w", err)
	}
	fresh, err := bleve.NewMemOnly(newIndexMapping())
	if err != nil {
		return fmt.Errorf("recreating content index: %w", err)
	}
	ix.bleve = fresh
	ix.contents = make(map[string]string)
	return nil
}

// Add indexes one file's content. Safe for concurrent use.
func (ix *Index) Add(relativePath string, content string, languageName string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.contents[relativePath] = content
	doc := contentDocument{
		Content:  content,
		Path:     relativePath,
		Language: languageName,
	}
	if err := ix.bleve.Index(relativePath, doc); err != nil {
		return fmt.Errorf("indexing %s: %w", relativePath, err)
	}
	return nil
}

// Match is a single matching line with optional surrounding context.
type Match struct {
	LineNumber    int
	LineText      string
	ContextBefore []string
	ContextAfter  []string
}

// Result groups the matches found in one file.
type Result struct {
	RelativePath string
	Matches      []Match
}

// Options configures a content search.
type Options struct {
	Query        string
	Path         string // exact relative path, overrides Glob
	Glob         string // doublestar pattern over relative paths
	MaxResults   int    // cap on matched files, default 50
	ContextLines int
}

// Search runs a full-text query over the indexed contents.
// Query syntax:
//   - plain text: word-level match query
//   - "quoted text": exact phrase query
//   - /pattern/: regexp query
func (ix *Index) Search(opts Options) ([]Result, int, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if opts.MaxResults <= 0 {
		opts.MaxResults = 50
	}
	if opts.ContextLines < 0 {
		opts.ContextLines = 0
	}

	req := bleve.NewSearchRequest(parseQuery(opts.Query))
	// Over-fetch so path filtering still fills MaxResults files
	req.Size = opts.MaxResults * 5
	req.Fields = []string{"path", "language"}

	hits, err := ix.bleve.Search(req)
	if err != nil {
		return nil, 0, fmt.Errorf("searching content index: %w", err)
	}

	lineMatcher, err := newLineMatcher(opts.Query)
	if err != nil {
		return nil, 0, err
	}

	exactPath := strings.ReplaceAll(opts.Path, "\\", "/")

	var results []Result
	totalMatches := 0
	for _, hit := range hits.Hits {
		relativePath := hit.ID
		content, ok := ix.contents[relativePath]
		if !ok {
			continue
		}
		if exactPath != "" {
			if relativePath != exactPath {
				continue
			}
		} else if opts.Glob != "" && !matchGlob(relativePath, opts.Glob) {
			continue
		}

		matches := lineMatcher.find(content, opts.ContextLines)
		if len(matches) == 0 {
			continue
		}
		totalMatches += len(matches)
		results = append(results, Result{RelativePath: relativePath, Matches: matches})
		if len(results) >= opts.MaxResults {
			break
		}
	}
	return results, totalMatches, nil
}

func parseQuery(q string) query.Query {
	q = strings.TrimSpace(q)
	if strings.HasPrefix(q, "/") && strings.HasSuffix(q, "/") && len(q) > 2 {
		return bleve.NewRegexpQuery(q[1 : len(q)-1])
	}
	if strings.HasPrefix(q, "\"") && strings.HasSuffix(q, "\"") && len(q) > 2 {
		return bleve.NewMatchPhraseQuery(q[1 : len(q)-1])
	}
	return bleve.NewMatchQuery(q)
}

// lineMatcher locates the concrete lines behind a Bleve hit: case-insensitive
// substring for plain and phrase queries, compiled regexp for /pattern/.
type lineMatcher struct {
	term string
	re   *regexp.Regexp
}

func newLineMatcher(q string) (*lineMatcher, error) {
	q = strings.TrimSpace(q)
	if strings.HasPrefix(q, "/") && strings.HasSuffix(q, "/") && len(q) > 2 {
		re, err := regexp.Compile("(?i)" + q[1:len(q)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid regex query: %w", err)
		}
		return &lineMatcher{re: re}, nil
	}
	if strings.HasPrefix(q, "\"") && strings.HasSuffix(q, "\"") && len(q) > 2 {
		q = q[1 : len(q)-1]
	}
	return &lineMatcher{term: strings.ToLower(q)}, nil
}

func (m *lineMatcher) matchesLine(line string) bool {
	if m.re != nil {
		return m.re.MatchString(line)
	}
	return strings.Contains(strings.ToLower(line), m.term)
}

func (m *lineMatcher) find(content string, contextLines int) []Match {
	lines := strings.Split(content, "\n")
	var matches []Match
	for i, line := range lines {
		if !m.matchesLine(line) {
			continue
		}
		match := Match{LineNumber: i + 1, LineText: line}
		for j := max(0, i-contextLines); j < i; j++ {
			match.ContextBefore = append(match.ContextBefore, lines[j])
		}
		for j := i + 1; j < min(len(lines), i+contextLines+1); j++ {
			match.ContextAfter = append(match.ContextAfter, lines[j])
		}
		matches = append(matches, match)
	}
	return matches
}

// matchGlob matches a relative path against a doublestar pattern. A pattern
// without a separator also matches against the base name, so "*.go" finds
// files at any depth.
func matchGlob(relativePath string, pattern string) bool {
	pattern = strings.ReplaceAll(pattern, "\\", "/")
	if ok, err := doublestar.Match(pattern, relativePath); err == nil && ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if ok, err := doublestar.Match(pattern, path.Base(relativePath)); err == nil && ok {
			return true
		}
	}
	return false
}

// Content returns the raw text of an indexed file.
func (ix *Index) Content(relativePath string) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	content, ok := ix.contents[strings.ReplaceAll(relativePath, "\\", "/")]
	return content, ok
}

// DocCount returns the number of indexed files.
func (ix *Index) DocCount() uint64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	count, _ := ix.bleve.DocCount()
	return count
}

// Close releases the underlying Bleve index.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.bleve.Close()
}
