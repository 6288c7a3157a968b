// Package index builds the project index document: a hierarchical file tree
// plus per-file structural metadata, assembled in one pass and persisted as a
// single JSON artifact.
package index

import "time"

// FileRecord is the structural metadata for one indexed file. Records are
// created once during a build and never mutated afterwards. When extraction
// fails the structural fields stay empty and ExtractionError says why.
type FileRecord struct {
	RelativePath string   `json:"relativePath"`
	Extension    string   `json:"extension"`
	SizeBytes    int64    `json:"sizeBytes"`
	Imports      []string `json:"imports"`
	Exports      []string `json:"exports"`
	Functions    []string `json:"functions"`
	Classes      []string `json:"classes"`
	Interfaces   []string `json:"interfaces"`
	Constants    []string `json:"constants"`
	Types        []string `json:"types"`

	Lines           int    `json:"lines"`
	HasComments     bool   `json:"hasComments,omitempty"`
	ExtractionError string `json:"extractionError,omitempty"`
}

// FileMarker is the terminal value stored in a DirectoryNode for a file.
const FileMarker = "file"

// DirectoryNode maps a path segment to either a child DirectoryNode or the
// FileMarker string. The tree is rebuilt from scratch on every build.
type DirectoryNode map[string]any

// Summary holds whole-project aggregates computed from the files mapping.
type Summary struct {
	TotalFunctions   int            `json:"totalFunctions"`
	TotalClasses     int            `json:"totalClasses"`
	TotalInterfaces  int            `json:"totalInterfaces"`
	TotalConstants   int            `json:"totalConstants"`
	FilesByExtension map[string]int `json:"filesByExtension"`
	LargestFiles     []FileSize     `json:"largestFiles"`
}

// FileSize is one entry in the largest-files ranking.
type FileSize struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Document is the complete index for one project at one point in time. Each
// build produces a brand-new document that fully replaces the prior one.
type Document struct {
	GeneratedAt time.Time              `json:"generatedAt"`
	ProjectRoot string                 `json:"projectRoot"`
	TotalFiles  int                    `json:"totalFiles"`
	FileTree    DirectoryNode          `json:"fileTree"`
	Files       map[string]*FileRecord `json:"files"`
	Summary     Summary                `json:"summary"`
}
