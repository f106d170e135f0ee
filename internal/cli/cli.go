package cli

import (
	"fmt"
	"os"

	"jot/internal/config"
	"jot/internal/vault"
)

// Run executes the CLI with the given arguments and returns the process exit
// code.
func Run(args []string, v vault.Vault, cfg *config.Settings) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "new", "today", "n":
		return runNew(v, cfg)
	case "cleanup", "gc":
		return runCleanup(v, cfg)
	case "list", "ls":
		return runList(v, cfg)
	case "config":
		return runConfig(cmdArgs, cfg)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println(`jot - dated scratch notes with retention cleanup

Usage: jot [flags] [command] [arguments]

Commands:
  new, today    Create or open today's scratch note in your editor
  cleanup, gc   Delete scratch notes older than the retention window
  list, ls      List scratch notes, newest first
  config        Show settings
  config set <key> <value>
                Change a setting (vault_dir, tmp_folder, retention_days,
                auto_cleanup, editor)

Flags:
  --vault <dir>   Vault directory (overrides config and JOT_VAULT)
  --no-cleanup    Skip the automatic startup cleanup

Running jot without arguments launches the interactive TUI.`)
}
