package picker

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"jot/internal/notes"
	"jot/internal/tui/messages"
	"jot/internal/tui/shared"
	"jot/internal/tui/theme"
)

var (
	titleStyle    = theme.Title.Padding(0, 1)
	listItemStyle = lipgloss.NewStyle()
	selectedStyle = theme.SelectedBg
	dateStyle     = theme.Date
	mutedStyle    = theme.Muted
)

type pickerMode int

const (
	modeList pickerMode = iota
	modeSearch
	modeConfirmDelete
)

// Model is the scratch note picker view
type Model struct {
	notes       []notes.Note
	filtered    []int // indices into notes
	selected    int
	mode        pickerMode
	textInput   textinput.Model
	searchQuery string
	confirm     *shared.ConfirmationModal
	vaultDir    string
	width       int
	height      int
}

// New creates a picker over the given notes
func New(allNotes []notes.Note, vaultDir string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search notes..."
	ti.CharLimit = 50
	ti.Width = 40

	m := Model{
		notes:     allNotes,
		textInput: ti,
		vaultDir:  vaultDir,
	}
	m.applyFilter()
	return m
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetNotes replaces the notes list, keeping the current filter
func (m *Model) SetNotes(allNotes []notes.Note) {
	m.notes = allNotes
	m.applyFilter()
}

// IsTyping returns true when the search input is capturing keys
func (m Model) IsTyping() bool {
	return m.mode == modeSearch
}

// HintText returns the raw hint string for the current picker mode.
func (m Model) HintText() string {
	switch m.mode {
	case modeSearch:
		return "type to filter  enter:confirm  esc:cancel"
	case modeConfirmDelete:
		return "y:delete  n/esc:keep"
	default:
		return "j/k:navigate  /:search  enter:open  n:today  d:delete  c:cleanup  s:settings  q:quit"
	}
}

func (m *Model) applyFilter() {
	if m.searchQuery == "" {
		m.filtered = make([]int, len(m.notes))
		for i := range m.notes {
			m.filtered[i] = i
		}
	} else {
		haystack := make([]string, len(m.notes))
		for i, n := range m.notes {
			haystack[i] = n.Name + " " + n.Title
		}
		matches := fuzzy.Find(m.searchQuery, haystack)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles picker events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch m.mode {
		case modeList:
			return m.updateList(keyMsg)
		case modeSearch:
			return m.updateSearch(keyMsg)
		case modeConfirmDelete:
			return m, m.confirm.Update(keyMsg)
		}
	}

	if result, ok := msg.(shared.ConfirmationResultMsg); ok && m.mode == modeConfirmDelete {
		m.mode = modeList
		m.confirm = nil
		if result.Confirmed && m.selected < len(m.filtered) {
			note := m.notes[m.filtered[m.selected]]
			return m, func() tea.Msg {
				return messages.DeleteNoteMsg{Path: note.Path, Name: note.Name}
			}
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.applyFilter()
		}
		return m, nil

	case "/":
		m.mode = modeSearch
		m.textInput.SetValue(m.searchQuery)
		m.textInput.Focus()
		return m, textinput.Blink

	case "j", "down":
		if len(m.filtered) > 0 && m.selected < len(m.filtered)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "n":
		return m, func() tea.Msg {
			return messages.CreateTodayMsg{}
		}

	case "c":
		return m, func() tea.Msg {
			return messages.RunCleanupMsg{}
		}

	case "s":
		return m, messages.SwitchView(messages.ViewSettings)

	case "d":
		if m.selected < len(m.filtered) {
			note := m.notes[m.filtered[m.selected]]
			m.confirm = shared.NewConfirmationModal(
				"Delete scratch note?",
				note.Name+"  "+note.Title,
				50,
			)
			m.mode = modeConfirmDelete
		}

	case "enter":
		if m.selected < len(m.filtered) {
			note := m.notes[m.filtered[m.selected]]
			return m, func() tea.Msg {
				return messages.OpenNoteMsg{Path: note.Path}
			}
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.searchQuery = ""
		m.textInput.SetValue("")
		m.applyFilter()
		return m, nil

	case "enter":
		m.searchQuery = m.textInput.Value()
		m.mode = modeList
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.searchQuery = m.textInput.Value()
	m.applyFilter()
	return m, cmd
}

func (m Model) View() string {
	if m.mode == modeConfirmDelete && m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	var lines []string
	lines = append(lines, titleStyle.Render("Scratch Notes"))
	lines = append(lines, mutedStyle.Render("  "+abbreviatePath(m.vaultDir)))
	lines = append(lines, "")

	if m.mode == modeSearch {
		lines = append(lines, "  "+m.textInput.View())
		lines = append(lines, "")
	} else if m.searchQuery != "" {
		lines = append(lines, mutedStyle.Render("  Filter: "+m.searchQuery))
		lines = append(lines, "")
	}

	if len(m.filtered) == 0 {
		if len(m.notes) == 0 {
			lines = append(lines, listItemStyle.Render("  No scratch notes. Press 'n' to start today's."))
		} else {
			lines = append(lines, listItemStyle.Render("  No matching notes."))
		}
	} else {
		for i, idx := range m.filtered {
			note := m.notes[idx]
			prefix := "  "
			style := listItemStyle
			if i == m.selected {
				prefix = "► "
				style = selectedStyle
			}
			line := prefix + dateStyle.Render(note.Date.Format("2006-01-02")) + "  " + style.Render(note.Title)
			lines = append(lines, line)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// abbreviatePath replaces home directory with ~
func abbreviatePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
