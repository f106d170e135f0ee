package settings

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jot/internal/config"
	"jot/internal/tui/messages"
	"jot/internal/tui/theme"
)

var (
	titleStyle = theme.Title.Padding(0, 1)
	hintStyle  = theme.Muted
	valueStyle = lipgloss.NewStyle()
	onStyle    = theme.Ok
	offStyle   = theme.Error
)

type field int

const (
	fieldFolder field = iota
	fieldRetention
	fieldAutoCleanup
)

const fieldCount = 3

// Model is the settings form view. Every committed field change is sent to
// the app for persistence right away.
type Model struct {
	cfg            *config.Settings
	focus          field
	editing        bool
	folderInput    textinput.Model
	retentionInput textinput.Model
	width          int
	height         int
}

// New creates a settings form bound to the given settings record
func New(cfg *config.Settings) Model {
	folder := textinput.New()
	folder.CharLimit = 128
	folder.Width = 30
	folder.SetValue(cfg.TmpFolder)

	retention := textinput.New()
	retention.CharLimit = 5
	retention.Width = 8
	retention.SetValue(strconv.Itoa(cfg.RetentionDays))

	return Model{
		cfg:            cfg,
		folderInput:    folder,
		retentionInput: retention,
	}
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsTyping returns true when a text input is capturing keys
func (m Model) IsTyping() bool {
	return m.editing
}

// HintText returns the hint string for the status bar
func (m Model) HintText() string {
	if m.editing {
		return "enter:save  esc:discard"
	}
	return "j/k:navigate  enter:edit/toggle  esc:back"
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles form events, returns (Model, tea.Cmd) as a child view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, messages.SwitchView(messages.ViewPicker)

	case "j", "down", "tab":
		m.focus = (m.focus + 1) % fieldCount

	case "k", "up", "shift+tab":
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case "enter", " ":
		switch m.focus {
		case fieldFolder:
			m.editing = true
			m.folderInput.SetValue(m.cfg.TmpFolder)
			return m, m.folderInput.Focus()
		case fieldRetention:
			m.editing = true
			m.retentionInput.SetValue(strconv.Itoa(m.cfg.RetentionDays))
			return m, m.retentionInput.Focus()
		case fieldAutoCleanup:
			// Toggle commits immediately
			m.cfg.AutoCleanup = !m.cfg.AutoCleanup
			return m, persist()
		}

	case "q", "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.folderInput.Blur()
		m.retentionInput.Blur()
		return m, nil

	case "enter":
		m.editing = false
		switch m.focus {
		case fieldFolder:
			m.folderInput.Blur()
			m.cfg.TmpFolder = m.folderInput.Value()
		case fieldRetention:
			m.retentionInput.Blur()
			days, err := strconv.Atoi(m.retentionInput.Value())
			if err != nil {
				days = config.DefaultRetentionDays
			}
			m.cfg.RetentionDays = days
		}
		// Invalid values fall back to defaults before persisting
		m.cfg.Normalize()
		m.folderInput.SetValue(m.cfg.TmpFolder)
		m.retentionInput.SetValue(strconv.Itoa(m.cfg.RetentionDays))
		return m, persist()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldFolder:
		m.folderInput, cmd = m.folderInput.Update(msg)
	case fieldRetention:
		m.retentionInput, cmd = m.retentionInput.Update(msg)
	}
	return m, cmd
}

func persist() tea.Cmd {
	return func() tea.Msg {
		return messages.SettingsChangedMsg{}
	}
}

func (m Model) View() string {
	var lines []string
	lines = append(lines, titleStyle.Render("Settings"))
	lines = append(lines, "")

	lines = append(lines, m.renderField(fieldFolder, "Scratch folder", m.folderValue()))
	lines = append(lines, m.renderField(fieldRetention, "Retention days", m.retentionValue()))
	lines = append(lines, m.renderField(fieldAutoCleanup, "Auto cleanup", m.autoCleanupValue()))

	lines = append(lines, "")
	lines = append(lines, hintStyle.Render("Retention 0 keeps notes forever."))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderField(f field, label, value string) string {
	labelStyle := theme.FieldLabel
	prefix := "  "
	if m.focus == f {
		labelStyle = theme.FieldLabelFocused
		prefix = "► "
	}
	return prefix + labelStyle.Width(16).Render(label) + " " + value
}

func (m Model) folderValue() string {
	if m.editing && m.focus == fieldFolder {
		return m.folderInput.View()
	}
	return valueStyle.Render(m.cfg.TmpFolder)
}

func (m Model) retentionValue() string {
	if m.editing && m.focus == fieldRetention {
		return m.retentionInput.View()
	}
	return valueStyle.Render(strconv.Itoa(m.cfg.RetentionDays))
}

func (m Model) autoCleanupValue() string {
	if m.cfg.AutoCleanup {
		return onStyle.Render("on")
	}
	return offStyle.Render("off")
}
