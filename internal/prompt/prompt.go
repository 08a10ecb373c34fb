// Package prompt implements the line-based question flow used by `ccv create`
// and the yes/no confirmations of destructive commands.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"ccv/config/models"
)

// ErrIncompleteInput is returned when input ends before every question is answered
var ErrIncompleteInput = errors.New("input ended before all answers were collected")

// Step is a single question of the create flow
type Step struct {
	Key    string
	Prompt string
}

// ProfileSteps are asked in order. Answers are taken verbatim.
var ProfileSteps = []Step{
	{Key: models.KeyBaseURL, Prompt: "ANTHROPIC_BASE_URL"},
	{Key: models.KeyAuthToken, Prompt: "ANTHROPIC_AUTH_TOKEN"},
	{Key: models.KeyModel, Prompt: "ANTHROPIC_MODEL"},
	{Key: models.KeySmallFastModel, Prompt: "ANTHROPIC_SMALL_FAST_MODEL"},
}

// SetActiveQuestion closes the create flow
const SetActiveQuestion = "Set as global default environment?"

// ProfileAnswers holds the result of CollectProfile
type ProfileAnswers struct {
	Variables map[string]string
	SetActive bool
}

// Prompter asks questions on out and reads answers line by line from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and returns the next line of input without its line
// ending. A final line lacking a newline still counts as an answer.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrIncompleteInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return trimEOL(line), nil
}

// Confirm asks a yes/no question. An empty answer selects def; anything
// other than y/yes/n/no counts as no.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	answer, err := p.Ask(question + " " + hint)
	if err != nil {
		return false, err
	}
	return parseYesNo(answer, def), nil
}

// CollectProfile runs ProfileSteps followed by the set-active confirmation
func (p *Prompter) CollectProfile() (ProfileAnswers, error) {
	answers := ProfileAnswers{Variables: make(map[string]string, len(ProfileSteps))}

	for _, step := range ProfileSteps {
		value, err := p.Ask(step.Prompt)
		if err != nil {
			return ProfileAnswers{}, err
		}
		answers.Variables[step.Key] = value
	}

	setActive, err := p.Confirm(SetActiveQuestion, true)
	if err != nil {
		return ProfileAnswers{}, err
	}
	answers.SetActive = setActive
	return answers, nil
}

func parseYesNo(answer string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
