package notes

import (
	"bytes"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"jot/internal/scratch"
	"jot/internal/vault"
)

// ScanFolder lists the scratch notes in a folder's direct children, newest
// first. Files whose names don't parse as dates are ignored, as are notes
// that can't be read.
func ScanFolder(v vault.Vault, folder string) []Note {
	entries, err := v.ReadDir(folder)
	if err != nil {
		return nil
	}

	var result []Note
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		date, ok := scratch.ParseNoteDate(entry.Name())
		if !ok {
			continue
		}

		rel := path.Join(folder, entry.Name())
		content, err := v.ReadFile(rel)
		if err != nil {
			continue
		}

		result = append(result, Note{
			Name:  entry.Name(),
			Path:  rel,
			Title: extractTitle(content, entry.Name()),
			Date:  date,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	return result
}

type noteFrontmatter struct {
	Title string `yaml:"title"`
}

// extractTitle resolves a note's display title: frontmatter `title` wins,
// then the first markdown heading, then the filename without extension.
func extractTitle(content []byte, filename string) string {
	body, fm := splitFrontmatter(content)
	if fm.Title != "" {
		return fm.Title
	}

	if heading := firstHeading(body); heading != "" {
		return heading
	}

	return strings.TrimSuffix(filename, ".md")
}

// splitFrontmatter extracts optional YAML frontmatter from note content.
// Returns the body (without frontmatter) and the parsed fields.
func splitFrontmatter(content []byte) ([]byte, noteFrontmatter) {
	var fm noteFrontmatter

	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return content, fm
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return content, fm
	}

	// The block is stripped even when it doesn't parse, so a broken
	// frontmatter never ends up rendered as heading text.
	fmBytes := bytes.Join(lines[1:fmEnd], []byte("\n"))
	if err := yaml.Unmarshal(fmBytes, &fm); err != nil {
		fm = noteFrontmatter{}
	}

	body := bytes.TrimLeft(bytes.Join(lines[fmEnd+1:], []byte("\n")), "\n")
	return body, fm
}

// firstHeading returns the text of the first markdown heading in the body.
func firstHeading(body []byte) string {
	reader := text.NewReader(body)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var heading string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node, ok := n.(*ast.Heading); ok {
			heading = strings.TrimSpace(string(node.Text(body)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return heading
}
