package ignore

import "strings"

// DefaultIgnorePatterns are always excluded from indexing. These cover
// directories and artifacts that never carry useful structure, regardless of
// the configured extension whitelist.
var DefaultIgnorePatterns = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// Dependencies
	"node_modules",
	"vendor",
	"bower_components",
	".npm",
	".yarn",

	// Build output
	"dist",
	"build",
	"out",
	"target",
	".next",
	".nuxt",

	// IDE / Editor
	".idea",
	".vscode",
	".vs",
	"*.swp",
	"*.swo",
	"*~",

	// OS files
	".DS_Store",
	"Thumbs.db",

	// Python
	"__pycache__",
	"*.pyc",
	".venv",
	"venv",

	// Caches and coverage
	".cache",
	".parcel-cache",
	"coverage",
	".nyc_output",
	"htmlcov",
	".pytest_cache",

	// Minified / generated
	"*.min.js",
	"*.min.css",
	"*.map",

	// Lock files
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Gemfile.lock",
	"poetry.lock",
	"Cargo.lock",
	"go.sum",
	"composer.lock",

	// Logs
	"*.log",
}

// defaultNames indexes the glob-free defaults by lowercased name, giving
// ShouldIgnoreDir a lock-free fast path that cannot drift from the list.
var defaultNames = func() map[string]bool {
	names := make(map[string]bool, len(DefaultIgnorePatterns))
	for _, p := range DefaultIgnorePatterns {
		if !strings.ContainsAny(p, "*?[") {
			names[strings.ToLower(p)] = true
		}
	}
	return names
}()
