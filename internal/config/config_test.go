package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	os.Unsetenv("JOT_VAULT")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TmpFolder != DefaultTmpFolder {
		t.Errorf("expected default folder %q, got %q", DefaultTmpFolder, cfg.TmpFolder)
	}
	if cfg.RetentionDays != DefaultRetentionDays {
		t.Errorf("expected default retention %d, got %d", DefaultRetentionDays, cfg.RetentionDays)
	}
	if !cfg.AutoCleanup {
		t.Error("expected auto cleanup enabled by default")
	}
	if cfg.VaultDir == "" {
		t.Error("expected a default vault dir")
	}
}

func TestLoad_EnvVar(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOT_VAULT", "/tmp/env-vault")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.VaultDir != "/tmp/env-vault" {
		t.Errorf("expected /tmp/env-vault, got %q", cfg.VaultDir)
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JOT_VAULT", "/tmp/env-vault")

	cfg, err := Load(CLIFlags{Vault: "/tmp/cli-vault"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.VaultDir != "/tmp/cli-vault" {
		t.Errorf("expected /tmp/cli-vault, got %q", cfg.VaultDir)
	}
}

func TestLoad_PathExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(CLIFlags{Vault: "~/notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := filepath.Join(home, "notes")
	if cfg.VaultDir != expected {
		t.Errorf("expected %q, got %q", expected, cfg.VaultDir)
	}
}

func TestLoad_FileRetentionZero(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	os.Unsetenv("JOT_VAULT")

	configDir := filepath.Join(home, ".config", "jot")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	body := `{"vault_dir":"/tmp/vault","tmp_folder":"scratch","retention_days":0,"auto_cleanup":false}`
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A stored zero disables cleanup and must not be replaced by the default
	if cfg.RetentionDays != 0 {
		t.Errorf("expected retention 0, got %d", cfg.RetentionDays)
	}
	if cfg.AutoCleanup {
		t.Error("expected auto cleanup disabled")
	}
	if cfg.TmpFolder != "scratch" {
		t.Errorf("expected folder scratch, got %q", cfg.TmpFolder)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	os.Unsetenv("JOT_VAULT")

	saved := &Settings{
		VaultDir:      "/tmp/vault",
		TmpFolder:     "scratch",
		RetentionDays: 7,
		AutoCleanup:   false,
	}
	if err := Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.TmpFolder != "scratch" || cfg.RetentionDays != 7 || cfg.AutoCleanup {
		t.Errorf("round-trip mismatch: %+v", cfg)
	}
	if cfg.VaultDir != "/tmp/vault" {
		t.Errorf("expected /tmp/vault, got %q", cfg.VaultDir)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		in            Settings
		wantFolder    string
		wantRetention int
	}{
		{"empty folder falls back", Settings{TmpFolder: "", RetentionDays: 7}, DefaultTmpFolder, 7},
		{"blank folder falls back", Settings{TmpFolder: "   ", RetentionDays: 7}, DefaultTmpFolder, 7},
		{"negative retention falls back", Settings{TmpFolder: "tmp", RetentionDays: -3}, "tmp", DefaultRetentionDays},
		{"zero retention kept", Settings{TmpFolder: "tmp", RetentionDays: 0}, "tmp", 0},
		{"valid settings untouched", Settings{TmpFolder: "scratch", RetentionDays: 30}, "scratch", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			s.Normalize()
			if s.TmpFolder != tt.wantFolder {
				t.Errorf("folder: expected %q, got %q", tt.wantFolder, s.TmpFolder)
			}
			if s.RetentionDays != tt.wantRetention {
				t.Errorf("retention: expected %d, got %d", tt.wantRetention, s.RetentionDays)
			}
		})
	}
}
