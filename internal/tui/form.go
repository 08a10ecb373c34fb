package tui

import (
	"strings"

	"ccv/config/models"
	"ccv/config/validation"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// FormField represents the index of each form field
const (
	FormFieldName = iota
	FormFieldBaseURL
	FormFieldAuthToken
	FormFieldModel
	FormFieldSmallFastModel
	FormFieldCount
)

// FormData is what the new-environment form collects
type FormData struct {
	Name           string
	BaseURL        string
	AuthToken      string
	Model          string
	SmallFastModel string
}

// Validate checks the name. Variable values are stored verbatim.
func (f FormData) Validate() error {
	return validation.ValidateName(strings.TrimSpace(f.Name))
}

// Variables returns the form values keyed by variable name
func (f FormData) Variables() map[string]string {
	return map[string]string{
		models.KeyBaseURL:        f.BaseURL,
		models.KeyAuthToken:      f.AuthToken,
		models.KeyModel:          f.Model,
		models.KeySmallFastModel: f.SmallFastModel,
	}
}

var (
	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(28)

	formFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true).
				Width(28)

	formHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// FormInputs creates the inputs with the name field focused
func FormInputs() []textinput.Model {
	inputs := make([]textinput.Model, FormFieldCount)
	placeholders := []string{
		"work",
		"https://api.anthropic.com",
		"sk-ant-...",
		"claude-sonnet-4-20250514",
		"claude-3-5-haiku-20241022",
	}

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 512
		inputs[i].Width = 40
		inputs[i].Prompt = ""
	}
	inputs[FormFieldName].CharLimit = validation.MaxNameLength
	inputs[FormFieldAuthToken].EchoMode = textinput.EchoPassword
	inputs[FormFieldAuthToken].EchoCharacter = '•'

	inputs[FormFieldName].Focus()
	return inputs
}

// GetFormData extracts FormData from form inputs
func GetFormData(inputs []textinput.Model) FormData {
	return FormData{
		Name:           strings.TrimSpace(inputs[FormFieldName].Value()),
		BaseURL:        inputs[FormFieldBaseURL].Value(),
		AuthToken:      inputs[FormFieldAuthToken].Value(),
		Model:          inputs[FormFieldModel].Value(),
		SmallFastModel: inputs[FormFieldSmallFastModel].Value(),
	}
}

// FormLabels returns the labels for each form field
func FormLabels() []string {
	return []string{
		"Name:",
		models.KeyBaseURL + ":",
		models.KeyAuthToken + ":",
		models.KeyModel + ":",
		models.KeySmallFastModel + ":",
	}
}

// FormHints returns the hint text for each form field
func FormHints() []string {
	return []string{
		"unique, case-sensitive, no spaces",
		"API endpoint",
		"stored as entered, shown masked",
		"main model",
		"model for background tasks",
	}
}

// RenderForm renders the form with the focused field highlighted
func RenderForm(inputs []textinput.Model, focusIndex int, title string, errorMsg string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n\n")

	labels := FormLabels()
	hints := FormHints()

	for i, input := range inputs {
		if i == focusIndex {
			b.WriteString(formFocusedStyle.Render(labels[i]))
		} else {
			b.WriteString(formLabelStyle.Render(labels[i]))
		}
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n")

		if i == focusIndex {
			b.WriteString(formLabelStyle.Render(""))
			b.WriteString(" ")
			b.WriteString(formHintStyle.Render(hints[i]))
			b.WriteString("\n")
		}
	}

	if errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + errorMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↓: next │ shift+tab/↑: previous │ enter: create │ esc: cancel"))

	return b.String()
}

// NextFormField moves focus to the next form field
func NextFormField(inputs []textinput.Model, currentFocus int) int {
	inputs[currentFocus].Blur()
	nextFocus := (currentFocus + 1) % len(inputs)
	inputs[nextFocus].Focus()
	return nextFocus
}

// PrevFormField moves focus to the previous form field
func PrevFormField(inputs []textinput.Model, currentFocus int) int {
	inputs[currentFocus].Blur()
	prevFocus := currentFocus - 1
	if prevFocus < 0 {
		prevFocus = len(inputs) - 1
	}
	inputs[prevFocus].Focus()
	return prevFocus
}
