package messages

import tea "github.com/charmbracelet/bubbletea"

// ViewType represents the different views in the application
type ViewType int

const (
	ViewPicker ViewType = iota
	ViewSettings
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// OpenNoteMsg requests opening a note in the external editor
type OpenNoteMsg struct {
	Path string // vault-relative
}

// CreateTodayMsg requests create-or-open of today's scratch note
type CreateTodayMsg struct{}

// RunCleanupMsg requests a retention cleanup pass
type RunCleanupMsg struct{}

// DeleteNoteMsg requests deletion of a single note
type DeleteNoteMsg struct {
	Path string
	Name string
}

// SettingsChangedMsg signals that a settings field was committed and should
// be persisted
type SettingsChangedMsg struct{}

// StatusMsg sets the status bar text
type StatusMsg struct {
	Text string
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

func Status(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}
