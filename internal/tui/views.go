package tui

import (
	"fmt"
	"strings"

	"ccv/config/models"
	"ccv/internal/utils"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	activeSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Background(lipgloss.Color("57")).
				Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// RenderMainView renders the environment list
func (m Model) RenderMainView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Claude Code environments"))
	b.WriteString("\n")
	b.WriteString(m.separator(40))
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString(dimStyle.Render("No environments configured. Use ccv create <name> to create one"))
		b.WriteString("\n")
	} else {
		visibleHeight := m.getVisibleListHeight()
		startIdx := m.scrollOffset
		endIdx := min(startIdx+visibleHeight, len(m.names))

		if startIdx > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ↑ %d more", startIdx)))
			b.WriteString("\n")
		}
		for i := startIdx; i < endIdx; i++ {
			b.WriteString(m.renderLine(i))
			b.WriteString("\n")
		}
		if endIdx < len(m.names) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ↓ %d more", len(m.names)-endIdx)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.separator(40))
	b.WriteString("\n")
	b.WriteString(m.RenderStatusBar())

	return b.String()
}

// renderLine renders a single environment line in the list
func (m Model) renderLine(index int) string {
	name := m.names[index]
	isSelected := index == m.cursor
	isActive := name == m.globalName

	marker := "  "
	if isActive {
		marker = "* "
	}

	line := marker + name
	if host := utils.ExtractHost(m.profiles[name].Variables[models.KeyBaseURL]); host != "" {
		line += "  (" + host + ")"
	}
	line = m.truncateText(line, m.getEffectiveWidth(40))

	switch {
	case isSelected && isActive:
		return activeSelectedStyle.Render(line)
	case isSelected:
		return selectedStyle.Render(line)
	case isActive:
		return activeStyle.Render(line)
	default:
		return normalStyle.Render(line)
	}
}

// RenderDeleteConfirm renders the delete confirmation dialog
func (m Model) RenderDeleteConfirm() string {
	var b strings.Builder
	effectiveWidth := m.getEffectiveWidth(40)

	b.WriteString(titleStyle.Render("Remove environment"))
	b.WriteString("\n")
	b.WriteString(m.separator(40))
	b.WriteString("\n\n")

	if name, ok := m.current(); ok {
		b.WriteString(normalStyle.Render("Remove environment "))
		b.WriteString(selectedStyle.Render(name))
		b.WriteString(normalStyle.Render("?"))
		b.WriteString("\n\n")

		if name == m.globalName {
			b.WriteString(errorStyle.Render("This is the global environment; the global setting will be cleared."))
			b.WriteString("\n\n")
		}

		profile := m.profiles[name]
		for _, k := range profile.SortedKeys() {
			line := fmt.Sprintf("%s = %s", k, utils.DisplayValue(k, profile.Variables[k]))
			b.WriteString(dimStyle.Render(m.truncateText(line, effectiveWidth)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(errorStyle.Render("No environment selected"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.separator(40))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("y: remove │ n/esc: cancel"))

	return b.String()
}

// RenderHelpView renders the help panel
func (m Model) RenderHelpView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	b.WriteString(m.separator(50))
	b.WriteString("\n\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(renderHelpLine(binding.Help().Key, binding.Help().Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.separator(50))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("?/esc: back"))

	return b.String()
}

// renderHelpLine renders a single help line with key and description
func renderHelpLine(key, desc string) string {
	keyStyled := helpKeyStyle.Render(fmt.Sprintf("  %-10s", key))
	descStyled := normalStyle.Render(desc)
	return fmt.Sprintf("%s %s\n", keyStyled, descStyled)
}

// RenderStatusBar renders the bottom status bar
func (m Model) RenderStatusBar() string {
	var b strings.Builder

	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errorMsg))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(messageStyle.Render("✓ " + m.message))
		b.WriteString("\n")
	}

	shortHelp := m.keys.ShortHelp()
	hints := make([]string, 0, len(shortHelp))
	for _, k := range shortHelp {
		hints = append(hints, helpKeyStyle.Render(k.Help().Key)+" "+helpStyle.Render(k.Help().Desc))
	}
	b.WriteString(strings.Join(hints, helpStyle.Render(" │ ")))

	return b.String()
}

func (m Model) separator(defaultWidth int) string {
	return separatorStyle.Render(strings.Repeat("─", m.getEffectiveWidth(defaultWidth)))
}

// getEffectiveWidth returns the window width capped at 80 columns
func (m Model) getEffectiveWidth(defaultWidth int) int {
	if m.width <= 0 {
		return defaultWidth
	}
	maxWidth := 80
	if m.width < maxWidth {
		return m.width - 2
	}
	return maxWidth
}

// truncateText shortens text to maxWidth runes, marking the cut with an ellipsis
func (m Model) truncateText(text string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text
	}
	return string(runes[:maxWidth-3]) + "..."
}
