// Package tui provides the interactive environment picker
package tui

import (
	"ccv/config"
	"ccv/config/models"
	claudesync "ccv/config/sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view state
type ViewState int

const (
	ViewMain   ViewState = iota // Environment list
	ViewDelete                  // Delete confirmation dialog
	ViewHelp                    // Help panel
	ViewCreate                  // New environment form
)

// Model is the core state model for TUI
type Model struct {
	names         []string
	profiles      map[string]models.Profile
	globalName    string
	cursor        int
	viewState     ViewState
	configManager *config.Manager
	settingsPath  string
	keys          KeyMap

	message  string
	errorMsg string

	formInputs []textinput.Model
	formFocus  int
	// selected after the next load, e.g. a newly created environment
	selectName string

	width  int
	height int

	scrollOffset int
}

// NewModel creates a new TUI model
func NewModel(cm *config.Manager, settingsPath string) Model {
	return Model{
		profiles:      map[string]models.Profile{},
		viewState:     ViewMain,
		configManager: cm,
		settingsPath:  settingsPath,
		keys:          DefaultKeyMap(),
		width:         80,
		height:        24,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return loadProfiles(m.configManager)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustScrollOffset()
		return m, nil

	case ProfilesLoadedMsg:
		m.names = msg.Names
		m.profiles = msg.Profiles
		m.globalName = msg.Global
		if m.selectName != "" {
			for i, name := range m.names {
				if name == m.selectName {
					m.cursor = i
				}
			}
			m.selectName = ""
		}
		// the list shrinks after a deletion
		if len(m.names) > 0 && m.cursor >= len(m.names) {
			m.cursor = len(m.names) - 1
		}
		m.adjustScrollOffset()
		return m, nil

	case GlobalSetMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.globalName = msg.Name
		m.message = "Global environment set to " + msg.Name
		return m, nil

	case ProfileDeletedMsg:
		m.viewState = ViewMain
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.message = "Environment '" + msg.Name + "' removed"
		if msg.ClearedGlobal {
			m.globalName = ""
			m.message += " (global environment cleared)"
		}
		return m, loadProfiles(m.configManager)

	case ProfileCreatedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.viewState = ViewMain
		m.formInputs = nil
		m.formFocus = 0
		m.errorMsg = ""
		m.message = "Environment '" + msg.Name + "' created"
		m.selectName = msg.Name
		return m, loadProfiles(m.configManager)

	case ProfileSyncedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.message = "Synced " + msg.Name + " to " + msg.Path
		return m, nil

	case errMsg:
		m.errorMsg = string(msg)
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewState {
	case ViewDelete:
		return m.handleDeleteViewKeys(msg)
	case ViewHelp:
		return m.handleHelpViewKeys(msg)
	case ViewCreate:
		return m.handleFormViewKeys(msg)
	default:
		return m.handleMainViewKeys(msg)
	}
}

// handleMainViewKeys handles keyboard input in main view
func (m Model) handleMainViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveUp()
	case key.Matches(msg, m.keys.Down):
		m.moveDown()
	case key.Matches(msg, m.keys.Top):
		m.moveToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.moveToBottom()

	case key.Matches(msg, m.keys.SetGlobal):
		if name, ok := m.current(); ok {
			m.clearStatus()
			return m, setGlobal(m.configManager, name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Sync):
		if name, ok := m.current(); ok {
			m.clearStatus()
			return m, syncProfile(m.settingsPath, name, m.profiles[name])
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.current(); ok {
			m.clearStatus()
			m.viewState = ViewDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.Create):
		m.initCreateForm()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.viewState = ViewHelp
		return m, nil

	default:
		return m, nil
	}

	// navigation clears stale status lines
	m.clearStatus()
	return m, nil
}

// handleDeleteViewKeys handles keyboard input in delete confirmation view
func (m Model) handleDeleteViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		if name, ok := m.current(); ok {
			return m, deleteProfile(m.configManager, name)
		}
		m.viewState = ViewMain
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.viewState = ViewMain
		m.message = "Cancelled"
		return m, nil
	}

	return m, nil
}

// handleHelpViewKeys handles keyboard input in help view
func (m Model) handleHelpViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel), msg.String() == "q":
		m.viewState = ViewMain
	}
	return m, nil
}

// handleFormViewKeys handles keyboard input in the new-environment form
func (m Model) handleFormViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.viewState = ViewMain
		m.errorMsg = ""
		m.formInputs = nil
		m.formFocus = 0
		m.message = "Cancelled"
		return m, nil

	case "tab", "down":
		m.formFocus = NextFormField(m.formInputs, m.formFocus)
		return m, nil

	case "shift+tab", "up":
		m.formFocus = PrevFormField(m.formInputs, m.formFocus)
		return m, nil

	case "enter":
		data := GetFormData(m.formInputs)
		if err := data.Validate(); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.errorMsg = ""
		return m, createProfile(m.configManager, data)

	default:
		if m.formFocus >= 0 && m.formFocus < len(m.formInputs) {
			var cmd tea.Cmd
			m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// initCreateForm opens an empty new-environment form
func (m *Model) initCreateForm() {
	m.formInputs = FormInputs()
	m.formFocus = 0
	m.viewState = ViewCreate
	m.clearStatus()
}

// current returns the highlighted environment name
func (m Model) current() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.names) {
		return "", false
	}
	return m.names[m.cursor], true
}

func (m *Model) clearStatus() {
	m.message = ""
	m.errorMsg = ""
}

func (m *Model) moveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.adjustScrollOffset()
	}
}

func (m *Model) moveDown() {
	if len(m.names) > 0 && m.cursor < len(m.names)-1 {
		m.cursor++
		m.adjustScrollOffset()
	}
}

func (m *Model) moveToTop() {
	m.cursor = 0
	m.scrollOffset = 0
}

func (m *Model) moveToBottom() {
	if len(m.names) > 0 {
		m.cursor = len(m.names) - 1
		m.adjustScrollOffset()
	}
}

// getVisibleListHeight returns the number of lines available for the list.
// Title and separator take three lines, the status bar four.
func (m *Model) getVisibleListHeight() int {
	headerLines := 3
	footerLines := 4

	available := m.height - headerLines - footerLines
	if available < 1 {
		available = 1
	}
	return available
}

// adjustScrollOffset adjusts the scroll offset to keep cursor visible
func (m *Model) adjustScrollOffset() {
	visibleHeight := m.getVisibleListHeight()

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visibleHeight {
		m.scrollOffset = m.cursor - visibleHeight + 1
	}

	maxOffset := max(len(m.names)-visibleHeight, 0)
	m.scrollOffset = min(max(m.scrollOffset, 0), maxOffset)
}

// View renders the UI
func (m Model) View() string {
	switch m.viewState {
	case ViewHelp:
		return m.RenderHelpView()
	case ViewDelete:
		return m.RenderDeleteConfirm()
	case ViewCreate:
		return RenderForm(m.formInputs, m.formFocus, "New environment", m.errorMsg)
	default:
		return m.RenderMainView()
	}
}

// loadProfiles creates a command to read the store
func loadProfiles(cm *config.Manager) tea.Cmd {
	return func() tea.Msg {
		store, err := cm.Load()
		if err != nil {
			return errMsg(err.Error())
		}
		names, _ := config.List(store)
		return ProfilesLoadedMsg{
			Names:    names,
			Profiles: store.Environments,
			Global:   store.GlobalEnv,
		}
	}
}

// setGlobal creates a command to make name the global environment
func setGlobal(cm *config.Manager, name string) tea.Cmd {
	return func() tea.Msg {
		err := cm.Update(func(store *models.Store) (bool, error) {
			if store.GlobalEnv == name {
				return false, nil
			}
			return true, config.Activate(store, name)
		})
		return GlobalSetMsg{Name: name, Err: err}
	}
}

// deleteProfile creates a command to remove a confirmed environment
func deleteProfile(cm *config.Manager, name string) tea.Cmd {
	return func() tea.Msg {
		var result config.RemoveResult
		err := cm.Update(func(store *models.Store) (bool, error) {
			var err error
			result, err = config.Remove(store, name, true)
			return err == nil, err
		})
		return ProfileDeletedMsg{Name: name, ClearedGlobal: result.ClearedGlobal, Err: err}
	}
}

// createProfile creates a command to add the environment described by data
func createProfile(cm *config.Manager, data FormData) tea.Cmd {
	return func() tea.Msg {
		err := cm.Update(func(store *models.Store) (bool, error) {
			return true, config.Create(store, data.Name, data.Variables(), false)
		})
		return ProfileCreatedMsg{Name: data.Name, Err: err}
	}
}

// syncProfile creates a command to write an environment into Claude settings
func syncProfile(settingsPath, name string, profile models.Profile) tea.Cmd {
	return func() tea.Msg {
		_, err := claudesync.Apply(settingsPath, profile.Variables, claudesync.SyncOptions{CreateBackup: true})
		return ProfileSyncedMsg{Name: name, Path: settingsPath, Err: err}
	}
}
