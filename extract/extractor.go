// Package extract turns raw source text into lightweight structural metadata
// using per-language pattern scans. It is deliberately not a parser: each
// strategy is a sequence of regex passes over surface syntax, and correctness
// under unusual formatting is not guaranteed.
package extract

import "strings"

// Fragment is the structural metadata one extractor produces for one file.
// Import order and repetition are preserved; every other category is
// deduplicated within the file.
type Fragment struct {
	Imports    []string
	Exports    []string
	Functions  []string
	Classes    []string
	Interfaces []string
	Constants  []string
	Types      []string

	Lines       int
	HasComments bool // only reported by the generic fallback
}

// Extractor is a pure function from source text to a structural fragment.
// Implementations must be deterministic and free of side effects so files can
// be extracted in parallel.
type Extractor interface {
	Extract(content string) Fragment
}

// Registry dispatches extraction strategies by file extension. Extensions the
// registry does not know fall back to the generic extractor rather than
// failing.
type Registry struct {
	byExtension map[string]Extractor
	fallback    Extractor
}

// NewRegistry creates a registry with all built-in language strategies wired.
func NewRegistry() *Registry {
	r := &Registry{
		byExtension: make(map[string]Extractor),
		fallback:    genericExtractor{},
	}

	r.Register(scriptExtractor{typescript: false}, "js", "jsx", "mjs", "cjs")
	r.Register(scriptExtractor{typescript: true}, "ts", "tsx")
	r.Register(goExtractor{}, "go")
	r.Register(pythonExtractor{}, "py", "pyi")
	r.Register(rustExtractor{}, "rs")
	r.Register(cFamilyExtractor{}, "c", "h", "cpp", "cc", "cxx", "hpp", "hxx")
	r.Register(javaExtractor{}, "java", "kt")
	r.Register(rubyExtractor{}, "rb")
	r.Register(shellExtractor{}, "sh", "bash", "zsh")

	return r
}

// Register binds an extractor to one or more extensions (without dots),
// replacing any prior binding. This keeps each language strategy pluggable so
// a higher-fidelity implementation can swap in without touching the pipeline.
func (r *Registry) Register(e Extractor, extensions ...string) {
	for _, ext := range extensions {
		r.byExtension[strings.ToLower(ext)] = e
	}
}

// ForExtension returns the extractor bound to the extension, or the generic
// fallback when none is registered.
func (r *Registry) ForExtension(ext string) Extractor {
	if e, ok := r.byExtension[strings.ToLower(ext)]; ok {
		return e
	}
	return r.fallback
}

// Extract runs the strategy for the given extension over the content and
// fills in the line count.
func (r *Registry) Extract(ext string, content string) Fragment {
	frag := r.ForExtension(ext).Extract(content)
	frag.Lines = countLines(content)
	return frag
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
