package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TDO_HOME", home)
	for _, key := range []string{"TDO_DB_PATH", "TDO_BACKUP_DIR", "TDO_BACKUPS", "TDO_EDITOR", "VISUAL", "EDITOR", "TDO_WIDTH", "TDO_LOG_LEVEL", "TDO_LOG_ENCODING"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != filepath.Join(home, "tdo.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.BackupDir != filepath.Join(home, "backups") || cfg.Backups != 5 {
		t.Fatalf("unexpected backup settings %q %d", cfg.BackupDir, cfg.Backups)
	}
	if cfg.Editor != "vi" || cfg.Width != 0 {
		t.Fatalf("unexpected editor/width %q %d", cfg.Editor, cfg.Width)
	}
	if cfg.Logger.Level != "warn" || cfg.Logger.Encoding != "console" {
		t.Fatalf("unexpected logger config %+v", cfg.Logger)
	}
}

func TestLoadOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TDO_HOME", home)
	t.Setenv("TDO_DB_PATH", "/tmp/other.db")
	t.Setenv("TDO_EDITOR", "")
	t.Setenv("VISUAL", "code -w")
	t.Setenv("EDITOR", "nano")
	t.Setenv("TDO_WIDTH", "120")
	t.Setenv("TDO_BACKUPS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.Editor != "code -w" {
		t.Fatalf("VISUAL should win over EDITOR, got %q", cfg.Editor)
	}
	if cfg.Width != 120 {
		t.Fatalf("unexpected width %d", cfg.Width)
	}
	if cfg.Backups != 0 {
		t.Fatalf("TDO_BACKUPS=0 should disable backups, got %d", cfg.Backups)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TDO_HOME", home)
	t.Setenv("TDO_LOG_LEVEL", "")
	os.Unsetenv("TDO_LOG_LEVEL")

	if err := os.WriteFile(filepath.Join(home, ".env"), []byte("TDO_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("TDO_LOG_LEVEL") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logger.Level != "debug" {
		t.Fatalf("expected level from .env, got %q", cfg.Logger.Level)
	}
}
