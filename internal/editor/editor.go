package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Command resolves the editor command line: the configured editor wins, then
// $EDITOR, then vi.
func Command(preferred string) string {
	if preferred != "" {
		return preferred
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return "vi"
}

// EditCmd builds an exec.Cmd that opens path in the resolved editor, attached
// to the current terminal. The editor string may carry arguments.
func EditCmd(preferred, path string) (*exec.Cmd, error) {
	parts := strings.Fields(Command(preferred))
	if len(parts) == 0 {
		return nil, errors.New("editor command is empty")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}
