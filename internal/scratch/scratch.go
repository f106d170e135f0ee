package scratch

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"jot/internal/config"
	"jot/internal/logs"
	"jot/internal/vault"
)

const (
	dateLayout = "2006-01-02"
	noteExt    = ".md"
)

// Scratch notes are named exactly YYYY-MM-DD.md; anything else in the folder
// is left alone.
var notePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.md$`)

// Result describes the outcome of CreateOrOpen.
type Result struct {
	Path    string // vault-relative path to the note
	Name    string // bare filename, e.g. "2024-06-15.md"
	Created bool   // false when the note already existed
}

// NoteName returns the scratch note filename for a given day.
func NoteName(day time.Time) string {
	return day.Format(dateLayout) + noteExt
}

// ParseNoteDate parses a scratch note filename into its calendar date. It
// requires an exact YYYY-MM-DD.md match and a valid calendar date, so names
// like "2024-13-40.md" or "2024-06-01-extra.md" are rejected.
func ParseNoteDate(filename string) (time.Time, bool) {
	if !notePattern.MatchString(filename) {
		return time.Time{}, false
	}
	day, err := time.Parse(dateLayout, strings.TrimSuffix(filename, noteExt))
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// CreateOrOpen ensures the scratch folder exists, then creates today's note
// if it is missing. An existing note is never touched; Result.Created tells
// the caller which case it was.
func CreateOrOpen(v vault.Vault, cfg *config.Settings, now time.Time) (Result, error) {
	if err := v.CreateFolder(cfg.TmpFolder); err != nil {
		return Result{}, err
	}

	name := NoteName(now)
	rel := path.Join(cfg.TmpFolder, name)

	if v.Exists(rel) {
		return Result{Path: rel, Name: name}, nil
	}

	body := fmt.Sprintf("# %s\n\n", now.Format(dateLayout))
	if err := v.CreateFile(rel, []byte(body)); err != nil {
		return Result{}, err
	}

	return Result{Path: rel, Name: name, Created: true}, nil
}

// Cleanup deletes scratch notes whose filename date is strictly before
// now - RetentionDays. Retention 0 disables cleanup, and a missing folder is
// a no-op. A failed delete is logged and skipped so the rest of the folder is
// still scanned. Returns the deleted filenames in the order encountered.
func Cleanup(v vault.Vault, cfg *config.Settings, now time.Time) ([]string, error) {
	if cfg.RetentionDays == 0 {
		return nil, nil
	}
	if !v.Exists(cfg.TmpFolder) {
		return nil, nil
	}

	// Compare at day granularity: a note dated exactly on the cutoff stays.
	year, month, day := now.Date()
	cutoff := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -cfg.RetentionDays)

	entries, err := v.ReadDir(cfg.TmpFolder)
	if err != nil {
		return nil, err
	}

	var deleted []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		noteDay, ok := ParseNoteDate(entry.Name())
		if !ok {
			continue
		}
		if !noteDay.Before(cutoff) {
			continue
		}

		rel := path.Join(cfg.TmpFolder, entry.Name())
		if err := v.DeleteFile(rel); err != nil {
			logs.Logger.Printf("cleanup: could not delete %s: %v", rel, err)
			continue
		}
		deleted = append(deleted, entry.Name())
	}

	return deleted, nil
}

// Summary renders the single user-facing message for a cleanup run.
func Summary(deleted []string) string {
	if len(deleted) == 0 {
		return "Nothing to clean up."
	}
	return fmt.Sprintf("Deleted %d old scratch note(s): %s", len(deleted), strings.Join(deleted, ", "))
}
