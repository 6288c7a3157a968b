package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_ShouldIgnore_DefaultDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	cases := []string{
		filepath.Join(tmpDir, "node_modules", "lodash", "index.js"),
		filepath.Join(tmpDir, ".git", "HEAD"),
		filepath.Join(tmpDir, "src", "__pycache__", "mod.pyc"),
		filepath.Join(tmpDir, "app.min.js"),
	}
	for _, path := range cases {
		if !matcher.ShouldIgnore(path) {
			t.Errorf("expected %s to be ignored", path)
		}
	}

	if matcher.ShouldIgnore(filepath.Join(tmpDir, "src", "main.go")) {
		t.Error("expected src/main.go to be indexed")
	}
}

func Test_ShouldIgnore_DoublestarPattern(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{
		RootDir:  tmpDir,
		Patterns: []string{"generated/**/*.ts"},
	})

	if !matcher.ShouldIgnore(filepath.Join(tmpDir, "generated", "api", "client.ts")) {
		t.Error("expected generated/api/client.ts to match generated/**/*.ts")
	}
	if matcher.ShouldIgnore(filepath.Join(tmpDir, "src", "client.ts")) {
		t.Error("expected src/client.ts not to match generated/**/*.ts")
	}
}

func Test_ShouldIgnore_SubstringPattern(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{
		RootDir:  tmpDir,
		Patterns: []string{"*.generated.*"},
	})

	// Non-** patterns degrade to a substring match with * stripped:
	// "*.generated.*" becomes ".generated." which matches anywhere in the path.
	if !matcher.ShouldIgnore(filepath.Join(tmpDir, "src", "api.generated.ts")) {
		t.Error("expected api.generated.ts to match substring pattern")
	}
	if matcher.ShouldIgnore(filepath.Join(tmpDir, "src", "api.ts")) {
		t.Error("expected api.ts not to match substring pattern")
	}
}

func Test_ShouldIgnore_IgnoreFilePatterns(t *testing.T) {
	tmpDir := t.TempDir()
	content := "# comment line\n\nsecret\ntmp/**\n"
	if err := os.WriteFile(filepath.Join(tmpDir, IgnoreFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	if !matcher.ShouldIgnore(filepath.Join(tmpDir, "config", "secrets.yaml")) {
		t.Error("expected path containing 'secret' to be ignored")
	}
	if !matcher.ShouldIgnore(filepath.Join(tmpDir, "tmp", "scratch.go")) {
		t.Error("expected tmp/** to be ignored")
	}
	if matcher.ShouldIgnore(filepath.Join(tmpDir, "src", "main.go")) {
		t.Error("expected src/main.go to be indexed")
	}
}

func Test_ShouldIgnore_GitignoreRules(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".gitignore"), []byte("*.tmp\nlogs/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	if !matcher.ShouldIgnore(filepath.Join(tmpDir, "scratch.tmp")) {
		t.Error("expected *.tmp to be ignored via .gitignore")
	}
	if matcher.ShouldIgnore(filepath.Join(tmpDir, "main.go")) {
		t.Error("expected main.go to be indexed")
	}
}

func Test_ShouldIgnore_OutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "PROJECT_INDEX.json")
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir, OutputPath: outputPath})

	if !matcher.ShouldIgnore(outputPath) {
		t.Error("expected the output document to be ignored")
	}
}

func Test_ShouldIgnore_PersistenceTempFiles(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{
		RootDir:    tmpDir,
		OutputPath: filepath.Join(tmpDir, "PROJECT_INDEX.json"),
	})

	// The temp-and-rename write must never look like a project change
	if !matcher.ShouldIgnore(filepath.Join(tmpDir, ".codemap-1834027380.tmp")) {
		t.Error("expected the persistence temp file to be ignored")
	}
	if matcher.ShouldIgnore(filepath.Join(tmpDir, "codemap.go")) {
		t.Error("expected codemap.go to be indexed")
	}
}

func Test_Reload_PicksUpIgnoreFileChanges(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	target := filepath.Join(tmpDir, "legacy", "old.go")
	if matcher.ShouldIgnore(target) {
		t.Fatal("expected legacy/old.go to be indexed before reload")
	}

	if err := os.WriteFile(filepath.Join(tmpDir, IgnoreFileName), []byte("legacy\n"), 0644); err != nil {
		t.Fatal(err)
	}
	matcher.Reload()

	if !matcher.ShouldIgnore(target) {
		t.Error("expected legacy/old.go to be ignored after reload")
	}
}

func Test_ShouldIgnoreDir_PrunesWellKnownDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	if !matcher.ShouldIgnoreDir(filepath.Join(tmpDir, "node_modules")) {
		t.Error("expected node_modules to be pruned")
	}
	if !matcher.ShouldIgnoreDir(filepath.Join(tmpDir, ".git")) {
		t.Error("expected .git to be pruned")
	}
	if matcher.ShouldIgnoreDir(filepath.Join(tmpDir, "src")) {
		t.Error("expected src to be walked")
	}
}

func Test_ShouldIgnoreDir_CoversEveryBareDefault(t *testing.T) {
	tmpDir := t.TempDir()
	matcher := NewMatcher(MatcherOptions{RootDir: tmpDir})

	for _, name := range []string{"dist", "build", "target", "vendor", ".pytest_cache"} {
		if !matcher.ShouldIgnoreDir(filepath.Join(tmpDir, name)) {
			t.Errorf("expected %s to be pruned", name)
		}
	}
	// The fast path is derived from the defaults list, so every glob-free
	// entry prunes without consulting the slower matchers
	for _, name := range DefaultIgnorePatterns {
		if strings.ContainsAny(name, "*?[") {
			continue
		}
		if !defaultNames[strings.ToLower(name)] {
			t.Errorf("expected default %q in the directory fast path", name)
		}
	}
}

func Test_IsFileTooLarge(t *testing.T) {
	matcher := NewMatcher(MatcherOptions{RootDir: t.TempDir(), MaxFileSizeBytes: 100})

	if matcher.IsFileTooLarge(50) {
		t.Error("expected 50 bytes to be allowed")
	}
	if !matcher.IsFileTooLarge(101) {
		t.Error("expected 101 bytes to be rejected")
	}
}
