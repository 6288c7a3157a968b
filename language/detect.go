package language

import (
	"path/filepath"
	"strings"
)

// ExtensionToLanguage maps file extensions (without dot) to language names.
var ExtensionToLanguage = map[string]string{
	// Go
	"go": "Go",
	// JavaScript / TypeScript
	"js": "JavaScript", "jsx": "JavaScript", "mjs": "JavaScript", "cjs": "JavaScript",
	"ts": "TypeScript", "tsx": "TypeScript",
	// Python
	"py": "Python", "pyi": "Python",
	// Rust
	"rs": "Rust",
	// Java / Kotlin
	"java": "Java", "kt": "Kotlin", "kts": "Kotlin",
	// C / C++
	"c": "C", "h": "C",
	"cpp": "C++", "cc": "C++", "cxx": "C++", "hpp": "C++", "hxx": "C++",
	// C#
	"cs": "C#",
	// Swift
	"swift": "Swift",
	// Ruby
	"rb": "Ruby",
	// PHP
	"php": "PHP",
	// Shell
	"sh": "Shell", "bash": "Shell", "zsh": "Shell",
	// Lua
	"lua": "Lua",
	// Scala
	"scala": "Scala",
	// Elixir
	"ex": "Elixir", "exs": "Elixir",
	// Web
	"html": "HTML", "css": "CSS", "scss": "SCSS",
	// Data / Config
	"json": "JSON", "yaml": "YAML", "yml": "YAML", "toml": "TOML",
	// Markup
	"md": "Markdown",
	// SQL
	"sql": "SQL",
}

// Extension returns the lowercased file extension without the leading dot,
// or the empty string when the file has none.
func Extension(filePath string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
}

// Detect returns the language name for a file path based on its extension.
// Returns "Unknown" if the extension is not recognized.
func Detect(filePath string) string {
	ext := Extension(filePath)
	if ext == "" {
		switch strings.ToLower(filepath.Base(filePath)) {
		case "makefile", "gnumakefile":
			return "Makefile"
		case "dockerfile":
			return "Dockerfile"
		case "gemfile", "rakefile":
			return "Ruby"
		}
		return "Unknown"
	}

	if lang, ok := ExtensionToLanguage[ext]; ok {
		return lang
	}
	return "Unknown"
}
