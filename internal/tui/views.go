package tui

import "jot/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewPicker   = messages.ViewPicker
	ViewSettings = messages.ViewSettings
)

type SwitchViewMsg = messages.SwitchViewMsg
type OpenNoteMsg = messages.OpenNoteMsg
type CreateTodayMsg = messages.CreateTodayMsg
type RunCleanupMsg = messages.RunCleanupMsg
type DeleteNoteMsg = messages.DeleteNoteMsg
type SettingsChangedMsg = messages.SettingsChangedMsg
type StatusMsg = messages.StatusMsg
