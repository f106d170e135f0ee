package notes

import "time"

// Note is a scratch note's display metadata
type Note struct {
	Name  string    // filename, e.g. "2024-06-15.md"
	Path  string    // vault-relative path
	Title string    // from frontmatter, first heading, or filename
	Date  time.Time // parsed from the filename
}
