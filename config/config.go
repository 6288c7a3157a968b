package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultOutputFile is the index document written into the project root.
const DefaultOutputFile = "PROJECT_INDEX.json"

// DefaultDebounce is the quiet period before a rebuild in watch mode.
const DefaultDebounce = 1000 * time.Millisecond

// DefaultMaxFileSizeBytes caps how large a file may be and still be indexed.
const DefaultMaxFileSizeBytes = 1024 * 1024

// DefaultExtensions is the extension whitelist applied when the caller does
// not supply one. Extensions are stored without the leading dot.
var DefaultExtensions = []string{
	"go",
	"js", "jsx", "mjs", "cjs",
	"ts", "tsx",
	"py",
	"rs",
	"java", "kt",
	"c", "h", "cpp", "cc", "hpp",
	"cs",
	"rb",
	"php",
	"swift",
	"sh", "bash",
	"lua",
	"scala",
	"ex", "exs",
}

// Config is the input to a build or a watch session. The CLI layer fills in
// whatever the user asked for; Normalize supplies defaults for the rest.
type Config struct {
	RootDir          string        // project root (default: current working directory)
	OutputPath       string        // where the index document is written (default: <root>/PROJECT_INDEX.json)
	Extensions       []string      // extension whitelist, without dots (default: DefaultExtensions)
	IgnorePatterns   []string      // extra ignore patterns on top of defaults and ignore files
	Debounce         time.Duration // quiet period before a rebuild in watch mode
	MaxFileSizeBytes int64         // files larger than this are skipped during the walk
}

// Normalize fills zero-valued fields with defaults and resolves RootDir to an
// absolute path. It returns an error only if the working directory cannot be
// determined when RootDir is empty.
func (c *Config) Normalize() error {
	if c.RootDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		c.RootDir = cwd
	}
	abs, err := filepath.Abs(c.RootDir)
	if err != nil {
		return err
	}
	c.RootDir = abs

	if c.OutputPath == "" {
		c.OutputPath = filepath.Join(c.RootDir, DefaultOutputFile)
	}
	if len(c.Extensions) == 0 {
		c.Extensions = DefaultExtensions
	}
	if c.Debounce <= 0 {
		c.Debounce = DefaultDebounce
	}
	if c.MaxFileSizeBytes <= 0 {
		c.MaxFileSizeBytes = DefaultMaxFileSizeBytes
	}
	return nil
}

// ExtensionSet returns the whitelist as a lookup set with lowercased keys.
func (c *Config) ExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.Extensions))
	for _, ext := range c.Extensions {
		set[normalizeExt(ext)] = true
	}
	return set
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
