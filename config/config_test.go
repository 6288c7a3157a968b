package config

import (
	"path/filepath"
	"testing"
	"time"
)

func Test_Normalize_AppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{RootDir: tmpDir}

	if err := cfg.Normalize(); err != nil {
		t.Fatal(err)
	}

	if cfg.OutputPath != filepath.Join(tmpDir, DefaultOutputFile) {
		t.Errorf("unexpected output path: %s", cfg.OutputPath)
	}
	if len(cfg.Extensions) == 0 {
		t.Error("expected default extensions")
	}
	if cfg.Debounce != DefaultDebounce {
		t.Errorf("expected default debounce, got %v", cfg.Debounce)
	}
	if cfg.MaxFileSizeBytes != DefaultMaxFileSizeBytes {
		t.Errorf("expected default max file size, got %d", cfg.MaxFileSizeBytes)
	}
}

func Test_Normalize_DefaultsRootToWorkingDirectory(t *testing.T) {
	cfg := Config{}
	if err := cfg.Normalize(); err != nil {
		t.Fatal(err)
	}
	if cfg.RootDir == "" || !filepath.IsAbs(cfg.RootDir) {
		t.Errorf("expected absolute root, got %q", cfg.RootDir)
	}
}

func Test_Normalize_KeepsExplicitValues(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{
		RootDir:          tmpDir,
		OutputPath:       filepath.Join(tmpDir, "custom.json"),
		Extensions:       []string{"go"},
		Debounce:         250 * time.Millisecond,
		MaxFileSizeBytes: 4096,
	}

	if err := cfg.Normalize(); err != nil {
		t.Fatal(err)
	}

	if cfg.OutputPath != filepath.Join(tmpDir, "custom.json") {
		t.Errorf("output path was overridden: %s", cfg.OutputPath)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != "go" {
		t.Errorf("extensions were overridden: %v", cfg.Extensions)
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Errorf("debounce was overridden: %v", cfg.Debounce)
	}
	if cfg.MaxFileSizeBytes != 4096 {
		t.Errorf("max file size was overridden: %d", cfg.MaxFileSizeBytes)
	}
}

func Test_ExtensionSet_NormalizesDotsAndCase(t *testing.T) {
	cfg := Config{Extensions: []string{".Go", "TS", "py"}}
	set := cfg.ExtensionSet()

	for _, want := range []string{"go", "ts", "py"} {
		if !set[want] {
			t.Errorf("expected %q in extension set", want)
		}
	}
	if set[".go"] || set["Go"] {
		t.Error("expected keys to be normalized")
	}
}
