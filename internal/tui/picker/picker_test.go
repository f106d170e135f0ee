package picker

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jot/internal/notes"
	"jot/internal/tui/messages"
)

func sampleNotes() []notes.Note {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}
	return []notes.Note{
		{Name: "2024-06-15.md", Path: "tmp/2024-06-15.md", Title: "Standup notes", Date: day("2024-06-15")},
		{Name: "2024-06-01.md", Path: "tmp/2024-06-01.md", Title: "Release plan", Date: day("2024-06-01")},
		{Name: "2024-01-01.md", Path: "tmp/2024-01-01.md", Title: "Resolutions", Date: day("2024-01-01")},
	}
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_ShowsAllNotes(t *testing.T) {
	m := New(sampleNotes(), "/vault")
	if len(m.filtered) != 3 {
		t.Fatalf("expected 3 filtered notes, got %d", len(m.filtered))
	}
}

func TestApplyFilter_Fuzzy(t *testing.T) {
	m := New(sampleNotes(), "/vault")
	m.searchQuery = "standup"
	m.applyFilter()

	if len(m.filtered) != 1 {
		t.Fatalf("expected 1 match, got %d", len(m.filtered))
	}
	if m.notes[m.filtered[0]].Title != "Standup notes" {
		t.Errorf("wrong match: %s", m.notes[m.filtered[0]].Title)
	}
}

func TestApplyFilter_ClampsSelection(t *testing.T) {
	m := New(sampleNotes(), "/vault")
	m.selected = 2
	m.searchQuery = "release"
	m.applyFilter()

	if m.selected != 0 {
		t.Errorf("expected selection clamped to 0, got %d", m.selected)
	}
}

func TestEnter_EmitsOpenNote(t *testing.T) {
	m := New(sampleNotes(), "/vault")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(messages.OpenNoteMsg)
	if !ok {
		t.Fatalf("expected OpenNoteMsg, got %T", cmd())
	}
	if msg.Path != "tmp/2024-06-15.md" {
		t.Errorf("unexpected path: %s", msg.Path)
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	m := New(sampleNotes(), "/vault")

	m, _ = m.Update(key('d'))
	if m.mode != modeConfirmDelete {
		t.Fatal("expected confirm mode after 'd'")
	}

	// Confirm with 'y': modal emits a result, which the picker turns into a
	// DeleteNoteMsg
	m, cmd := m.Update(key('y'))
	if cmd == nil {
		t.Fatal("expected confirmation command")
	}
	m, cmd = m.Update(cmd())
	if cmd == nil {
		t.Fatal("expected delete command after confirmation")
	}
	msg, ok := cmd().(messages.DeleteNoteMsg)
	if !ok {
		t.Fatalf("expected DeleteNoteMsg, got %T", cmd())
	}
	if msg.Name != "2024-06-15.md" {
		t.Errorf("unexpected note: %s", msg.Name)
	}
	if m.mode != modeList {
		t.Error("expected picker back in list mode")
	}
}

func TestDelete_Cancelled(t *testing.T) {
	m := New(sampleNotes(), "/vault")

	m, _ = m.Update(key('d'))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected cancellation command")
	}
	m, cmd = m.Update(cmd())
	if cmd != nil {
		t.Fatalf("expected no command after cancel, got %v", cmd())
	}
	if m.mode != modeList {
		t.Error("expected picker back in list mode")
	}
}

func TestKeys_EmitActionMessages(t *testing.T) {
	tests := []struct {
		key  rune
		want any
	}{
		{'n', messages.CreateTodayMsg{}},
		{'c', messages.RunCleanupMsg{}},
		{'s', messages.SwitchViewMsg{View: messages.ViewSettings}},
	}

	for _, tt := range tests {
		m := New(sampleNotes(), "/vault")
		_, cmd := m.Update(key(tt.key))
		if cmd == nil {
			t.Fatalf("key %q: expected a command", tt.key)
		}
		if got := cmd(); got != tt.want {
			t.Errorf("key %q: expected %T, got %T", tt.key, tt.want, got)
		}
	}
}
