package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jot/internal/cli"
	"jot/internal/config"
	"jot/internal/logs"
	"jot/internal/scratch"
	"jot/internal/tui"
	"jot/internal/vault"
)

func main() {
	// Parse CLI flags
	vaultFlag := flag.String("vault", "", "Vault directory")
	flag.StringVar(vaultFlag, "v", "", "Vault directory (shorthand)")
	noCleanup := flag.Bool("no-cleanup", false, "Skip the automatic startup cleanup")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{Vault: *vaultFlag})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Open the vault, creating the directory if missing
	vlt, err := vault.NewDirVault(cfg.VaultDir)
	if err != nil {
		log.Fatalf("Failed to open vault: %v", err)
	}

	// Reinitialize logger into the vault
	if err := logs.Initialize(vlt.Root()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}

	args := flag.Args()

	// Startup cleanup hook. Skipped when the user asked for it, or when the
	// command is cleanup itself and would run twice.
	cleanupCommand := len(args) > 0 && (args[0] == "cleanup" || args[0] == "gc")
	var startupSummary string
	if cfg.AutoCleanup && !*noCleanup && !cleanupCommand {
		deleted, err := scratch.Cleanup(vlt, cfg, time.Now())
		if err != nil {
			logs.Logger.Printf("startup cleanup: %v", err)
		} else if len(deleted) > 0 {
			startupSummary = scratch.Summary(deleted)
		}
	}

	// CLI mode
	if len(args) > 0 {
		if startupSummary != "" {
			fmt.Println(startupSummary)
		}
		os.Exit(cli.Run(args, vlt, cfg))
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(cfg, vlt)
	if startupSummary != "" {
		appModel.SetStatus(startupSummary)
	}
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
