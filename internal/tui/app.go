package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jot/internal/config"
	"jot/internal/editor"
	"jot/internal/logs"
	"jot/internal/notes"
	"jot/internal/scratch"
	"jot/internal/tui/picker"
	settingsview "jot/internal/tui/settings"
	"jot/internal/tui/theme"
	"jot/internal/vault"
)

// editorFinishedMsg is sent when the external editor process exits
type editorFinishedMsg struct {
	err error
}

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg          *config.Settings
	vlt          vault.Vault
	allNotes     []notes.Note
	currentView  ViewType
	pickerView   picker.Model
	settingsView settingsview.Model
	status       string
	width        int
	height       int
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Settings, vlt vault.Vault) AppModel {
	allNotes := notes.ScanFolder(vlt, cfg.TmpFolder)

	return AppModel{
		cfg:          cfg,
		vlt:          vlt,
		allNotes:     allNotes,
		currentView:  ViewPicker,
		pickerView:   picker.New(allNotes, vlt.Abs("")),
		settingsView: settingsview.New(cfg),
	}
}

// SetStatus seeds the status bar, used for the startup cleanup summary.
func (m *AppModel) SetStatus(text string) {
	m.status = text
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 2 // Reserve space for status bar
		m.pickerView.SetSize(msg.Width, contentHeight)
		m.settingsView.SetSize(msg.Width, contentHeight)
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		m.status = ""
		if msg.View == ViewPicker {
			m.refreshNotes()
		}
		return m, nil

	case OpenNoteMsg:
		return m.openInEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			logs.Logger.Printf("editor exited with error: %v", msg.err)
			m.status = fmt.Sprintf("Editor error: %v", msg.err)
		}
		m.refreshNotes()
		return m, nil

	case CreateTodayMsg:
		res, err := scratch.CreateOrOpen(m.vlt, m.cfg, time.Now())
		if err != nil {
			logs.Logger.Printf("create scratch note: %v", err)
			m.status = fmt.Sprintf("Error creating note: %v", err)
			return m, nil
		}
		if res.Created {
			m.status = "Created " + res.Name
		} else {
			m.status = "Opened " + res.Name
		}
		return m.openInEditor(res.Path)

	case RunCleanupMsg:
		deleted, err := scratch.Cleanup(m.vlt, m.cfg, time.Now())
		if err != nil {
			logs.Logger.Printf("cleanup: %v", err)
			m.status = fmt.Sprintf("Cleanup error: %v", err)
			return m, nil
		}
		m.status = scratch.Summary(deleted)
		m.refreshNotes()
		return m, nil

	case DeleteNoteMsg:
		if err := m.vlt.DeleteFile(msg.Path); err != nil {
			logs.Logger.Printf("delete note: %v", err)
			m.status = fmt.Sprintf("Error deleting %s: %v", msg.Name, err)
		} else {
			m.status = "Deleted " + msg.Name
		}
		m.refreshNotes()
		return m, nil

	case SettingsChangedMsg:
		if err := config.Save(m.cfg); err != nil {
			logs.Logger.Printf("save settings: %v", err)
			m.status = fmt.Sprintf("Error saving settings: %v", err)
		} else {
			m.status = "Settings saved"
		}
		return m, nil

	case StatusMsg:
		m.status = msg.Text
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentView(msg)
}

func (m AppModel) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	default:
		m.pickerView, cmd = m.pickerView.Update(msg)
	}
	return m, cmd
}

// openInEditor suspends the TUI and runs the external editor on a note.
func (m AppModel) openInEditor(relPath string) (tea.Model, tea.Cmd) {
	cmd, err := editor.EditCmd(m.cfg.Editor, m.vlt.Abs(relPath))
	if err != nil {
		m.status = fmt.Sprintf("Editor error: %v", err)
		return m, nil
	}
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m *AppModel) refreshNotes() {
	m.allNotes = notes.ScanFolder(m.vlt, m.cfg.TmpFolder)
	m.pickerView.SetNotes(m.allNotes)
}

func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content, hint string
	switch m.currentView {
	case ViewSettings:
		content = m.settingsView.View()
		hint = m.settingsView.HintText()
	default:
		content = m.pickerView.View()
		hint = m.pickerView.HintText()
	}

	statusLine := hint
	if m.status != "" {
		statusLine = m.status + "  ·  " + hint
	}
	bar := theme.StatusBar.Width(m.width).Render(theme.HelpHint.Render(statusLine))

	return lipgloss.JoinVertical(lipgloss.Left, content, bar)
}
