package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DumpFormat != FormatText || cfg.BooleanContextPolicy != PolicyError {
		t.Errorf("Load() = %+v, want Default()", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kompilator.yaml")
	content := "verbose: true\ndump_format: yaml\nboolean_context_policy: warning\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.DumpFormat != FormatYAML {
		t.Errorf("DumpFormat = %q, want yaml", cfg.DumpFormat)
	}
	if cfg.BooleanContextPolicy != PolicyWarning {
		t.Errorf("BooleanContextPolicy = %q, want warning", cfg.BooleanContextPolicy)
	}
}
