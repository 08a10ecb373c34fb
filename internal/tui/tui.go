package tui

import (
	"fmt"
	"os"

	"ccv/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Run starts the picker on the current terminal
func Run(cm *config.Manager, settingsPath string) error {
	if !isTerminal() {
		return fmt.Errorf("ccv pick requires a terminal. Use the other subcommands for non-interactive use")
	}

	p := tea.NewProgram(NewModel(cm, settingsPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
