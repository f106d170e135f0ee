package notes

import (
	"testing"

	"jot/internal/vault"
)

func testVault(t *testing.T) *vault.DirVault {
	t.Helper()
	v, err := vault.NewDirVault(t.TempDir())
	if err != nil {
		t.Fatalf("create vault: %v", err)
	}
	if err := v.CreateFolder("tmp"); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestScanFolder_SortsNewestFirst(t *testing.T) {
	v := testVault(t)

	files := map[string]string{
		"2024-06-01.md": "# 2024-06-01\n",
		"2024-06-15.md": "# 2024-06-15\n",
		"2024-01-01.md": "# 2024-01-01\n",
		"notes.md":      "# not a scratch note\n",
	}
	for name, body := range files {
		if err := v.CreateFile("tmp/"+name, []byte(body)); err != nil {
			t.Fatal(err)
		}
	}

	result := ScanFolder(v, "tmp")
	if len(result) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(result))
	}

	want := []string{"2024-06-15.md", "2024-06-01.md", "2024-01-01.md"}
	for i, name := range want {
		if result[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, result[i].Name)
		}
	}
}

func TestScanFolder_MissingFolder(t *testing.T) {
	v, err := vault.NewDirVault(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if result := ScanFolder(v, "tmp"); result != nil {
		t.Errorf("expected nil for missing folder, got %v", result)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			"frontmatter title wins",
			"---\ntitle: Standup notes\n---\n\n# 2024-06-15\n",
			"Standup notes",
		},
		{
			"first heading",
			"# Meeting scribbles\n\nsome text\n",
			"Meeting scribbles",
		},
		{
			"heading below text",
			"intro paragraph\n\n## Ideas\n",
			"Ideas",
		},
		{
			"filename fallback",
			"no headings here\n",
			"2024-06-15",
		},
		{
			"empty file",
			"",
			"2024-06-15",
		},
		{
			"malformed frontmatter falls through to heading",
			"---\ntitle: [unclosed\n---\n# Plan\n",
			"Plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTitle([]byte(tt.content), "2024-06-15.md")
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
