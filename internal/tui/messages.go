package tui

import "ccv/config/models"

// ProfilesLoadedMsg is sent when the store has been read
type ProfilesLoadedMsg struct {
	Names    []string
	Profiles map[string]models.Profile
	Global   string
}

// GlobalSetMsg is sent when the global environment has been changed
type GlobalSetMsg struct {
	Name string
	Err  error
}

// ProfileCreatedMsg is sent when the new-environment form has been submitted
type ProfileCreatedMsg struct {
	Name string
	Err  error
}

// ProfileDeletedMsg is sent when an environment has been removed
type ProfileDeletedMsg struct {
	Name          string
	ClearedGlobal bool
	Err           error
}

// ProfileSyncedMsg is sent when an environment has been written to Claude settings
type ProfileSyncedMsg struct {
	Name string
	Path string
	Err  error
}

// errMsg is an error message type
type errMsg string
