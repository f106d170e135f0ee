package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"jot/internal/config"
	"jot/internal/editor"
	"jot/internal/logs"
	"jot/internal/notes"
	"jot/internal/scratch"
	"jot/internal/vault"
)

func runNew(v vault.Vault, cfg *config.Settings) int {
	res, err := scratch.CreateOrOpen(v, cfg, time.Now())
	if err != nil {
		logs.Logger.Printf("create scratch note: %v", err)
		fmt.Fprintf(os.Stderr, "Error creating scratch note: %v\n", err)
		return 1
	}

	if res.Created {
		fmt.Printf("Created new scratch note: %s\n", res.Path)
	} else {
		fmt.Printf("Opened existing scratch note: %s\n", res.Path)
	}

	cmd, err := editor.EditCmd(cfg.Editor, v.Abs(res.Path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving editor: %v\n", err)
		return 1
	}
	if err := cmd.Run(); err != nil {
		logs.Logger.Printf("editor exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Editor error: %v\n", err)
		return 1
	}
	return 0
}

func runCleanup(v vault.Vault, cfg *config.Settings) int {
	deleted, err := scratch.Cleanup(v, cfg, time.Now())
	if err != nil {
		logs.Logger.Printf("cleanup: %v", err)
		fmt.Fprintf(os.Stderr, "Error during cleanup: %v\n", err)
		return 1
	}

	fmt.Println(scratch.Summary(deleted))
	return 0
}

func runList(v vault.Vault, cfg *config.Settings) int {
	found := notes.ScanFolder(v, cfg.TmpFolder)
	if len(found) == 0 {
		fmt.Println("No scratch notes.")
		return 0
	}

	for _, n := range found {
		fmt.Printf("%s  %s\n", n.Date.Format("2006-01-02"), n.Title)
	}
	fmt.Printf("\n%d note(s)\n", len(found))
	return 0
}

func runConfig(args []string, cfg *config.Settings) int {
	if len(args) == 0 {
		fmt.Printf("vault_dir:      %s\n", cfg.VaultDir)
		fmt.Printf("tmp_folder:     %s\n", cfg.TmpFolder)
		fmt.Printf("retention_days: %d\n", cfg.RetentionDays)
		fmt.Printf("auto_cleanup:   %t\n", cfg.AutoCleanup)
		fmt.Printf("editor:         %s\n", editor.Command(cfg.Editor))
		return 0
	}

	if args[0] != "set" || len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: jot config set <key> <value>")
		return 1
	}

	key, value := args[1], args[2]
	if err := applySetting(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := config.Save(cfg); err != nil {
		logs.Logger.Printf("save config: %v", err)
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		return 1
	}

	fmt.Printf("Set %s\n", key)
	return 0
}

// applySetting mutates one settings field from its string form, using the
// same fallback rules as the settings form: blank folders and bad retention
// values fall back to the defaults.
func applySetting(cfg *config.Settings, key, value string) error {
	switch key {
	case "vault_dir":
		cfg.VaultDir = value
	case "tmp_folder":
		cfg.TmpFolder = value
	case "retention_days":
		n, err := strconv.Atoi(value)
		if err != nil {
			n = config.DefaultRetentionDays
		}
		cfg.RetentionDays = n
	case "auto_cleanup":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("auto_cleanup must be true or false, got %q", value)
		}
		cfg.AutoCleanup = b
	case "editor":
		cfg.Editor = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	cfg.Normalize()
	return nil
}
