package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "depdot.toml")

	content := `
database = "snapshot.db"
file = "out.dot"
max_nodes = 500
remove_disconnected = true
remove_selfimport_only = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Database != "snapshot.db" {
		t.Errorf("Database = %q, want %q", cfg.Database, "snapshot.db")
	}
	if cfg.File != "out.dot" {
		t.Errorf("File = %q, want %q", cfg.File, "out.dot")
	}
	if cfg.MaxNodes != 500 {
		t.Errorf("MaxNodes = %d, want 500", cfg.MaxNodes)
	}
	if !cfg.RemoveDisconnected || !cfg.RemoveSelfImportOnly {
		t.Errorf("pruning flags = %v/%v, want true/true", cfg.RemoveDisconnected, cfg.RemoveSelfImportOnly)
	}
}

func TestLoadConfigMissingImplicit(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "none.toml"), false)
	if err != nil {
		t.Fatalf("implicit missing config should not error, got %v", err)
	}
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil", cfg)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "none.toml"), true); err == nil {
		t.Fatal("explicit missing config should error")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("max_nodes = [not an int"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadConfig(path, true); err == nil {
		t.Fatal("malformed config should error")
	}
}
