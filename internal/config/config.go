package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Defaults applied when a setting is missing or invalid.
const (
	DefaultTmpFolder     = "tmp"
	DefaultRetentionDays = 14
	DefaultAutoCleanup   = true
)

// Settings holds the unified application configuration
type Settings struct {
	VaultDir      string `json:"vault_dir"`
	TmpFolder     string `json:"tmp_folder"`
	RetentionDays int    `json:"retention_days"`
	AutoCleanup   bool   `json:"auto_cleanup"`
	Editor        string `json:"editor,omitempty"`
}

// fileSettings mirrors Settings with optional fields so that a stored
// zero/false can be told apart from a missing key when merging over defaults.
type fileSettings struct {
	VaultDir      string `json:"vault_dir,omitempty"`
	TmpFolder     string `json:"tmp_folder,omitempty"`
	RetentionDays *int   `json:"retention_days,omitempty"`
	AutoCleanup   *bool  `json:"auto_cleanup,omitempty"`
	Editor        string `json:"editor,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Vault string
}

// Load loads configuration with priority: CLI flags > env vars > config file > defaults
func Load(flags CLIFlags) (*Settings, error) {
	cfg := &Settings{
		TmpFolder:     DefaultTmpFolder,
		RetentionDays: DefaultRetentionDays,
		AutoCleanup:   DefaultAutoCleanup,
	}

	// Config file provides base values
	configPath, err := getConfigPath()
	if err == nil {
		if file, err := loadConfigFile(configPath); err == nil {
			if file.VaultDir != "" {
				cfg.VaultDir = expandPath(file.VaultDir)
			}
			if file.TmpFolder != "" {
				cfg.TmpFolder = file.TmpFolder
			}
			if file.RetentionDays != nil {
				cfg.RetentionDays = *file.RetentionDays
			}
			if file.AutoCleanup != nil {
				cfg.AutoCleanup = *file.AutoCleanup
			}
			if file.Editor != "" {
				cfg.Editor = file.Editor
			}
		}
	}

	// Priority 2: Environment variables override config file
	if envVault := os.Getenv("JOT_VAULT"); envVault != "" {
		cfg.VaultDir = expandPath(envVault)
	}
	if envEditor := os.Getenv("JOT_EDITOR"); envEditor != "" {
		cfg.Editor = envEditor
	}

	// Priority 1: CLI flags override everything
	if flags.Vault != "" {
		cfg.VaultDir = expandPath(flags.Vault)
	}

	// Default vault if nothing configured
	if cfg.VaultDir == "" {
		defaultDir, err := GetDefaultVaultDir()
		if err != nil {
			return nil, err
		}
		cfg.VaultDir = defaultDir
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize applies the fallback validation rules: an empty scratch folder
// falls back to the default folder, a negative retention falls back to the
// default retention. Retention 0 is valid and means cleanup is disabled.
func (s *Settings) Normalize() {
	if strings.TrimSpace(s.TmpFolder) == "" {
		s.TmpFolder = DefaultTmpFolder
	}
	if s.RetentionDays < 0 {
		s.RetentionDays = DefaultRetentionDays
	}
}

// Save persists the full settings record to the config file, creating the
// config directory if needed.
func Save(s *Settings) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// GetDefaultVaultDir returns the default vault directory path
func GetDefaultVaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "jot"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "jot", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*fileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file fileSettings
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return &file, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	defaultDir, err := GetDefaultVaultDir()
	if err != nil {
		return err
	}

	return Save(&Settings{
		VaultDir:      defaultDir,
		TmpFolder:     DefaultTmpFolder,
		RetentionDays: DefaultRetentionDays,
		AutoCleanup:   DefaultAutoCleanup,
	})
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
