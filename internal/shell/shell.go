// Package shell renders profile variables as statements a shell can eval.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ccv/config/models"
	"ccv/config/validation"

	"al.essio.dev/pkg/shellescape"
)

// SessionVar names the environment variable holding the activated profile name
const SessionVar = "CLAUDE_CODE_ENV"

// Dialect is a shell syntax family
type Dialect string

const (
	Bash       Dialect = "bash"
	Zsh        Dialect = "zsh"
	Sh         Dialect = "sh"
	Fish       Dialect = "fish"
	PowerShell Dialect = "powershell"
)

// Dialects lists every supported dialect
var Dialects = []Dialect{Bash, Zsh, Sh, Fish, PowerShell}

// ParseDialect maps a shell name or path such as /usr/bin/zsh or pwsh to a Dialect
func ParseDialect(name string) (Dialect, error) {
	base := strings.ToLower(filepath.Base(strings.TrimSpace(name)))
	base = strings.TrimSuffix(base, ".exe")

	switch base {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "sh", "dash", "ksh", "ash":
		return Sh, nil
	case "fish":
		return Fish, nil
	case "powershell", "pwsh":
		return PowerShell, nil
	}
	return "", fmt.Errorf("unsupported shell %q (supported: %s)", name, joinDialects())
}

// Detect derives the dialect from $SHELL, falling back to sh
func Detect() Dialect {
	if d, err := ParseDialect(os.Getenv("SHELL")); err == nil {
		return d
	}
	return Sh
}

// Render returns one assignment per variable, sorted by key, followed by
// the session marker. Nothing is rendered if any key is not a valid
// variable name, since the output is meant for eval.
func Render(name string, profile models.Profile, dialect Dialect) (string, error) {
	if err := checkKeys(name, profile); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, key := range profile.SortedKeys() {
		b.WriteString(assignment(dialect, key, profile.Variables[key]))
	}
	b.WriteString(assignment(dialect, SessionVar, name))
	return b.String(), nil
}

// Environ returns base extended with the profile's variables and the session marker
func Environ(base []string, name string, profile models.Profile) ([]string, error) {
	if err := checkKeys(name, profile); err != nil {
		return nil, err
	}

	env := make([]string, 0, len(base)+len(profile.Variables)+1)
	env = append(env, base...)
	for _, key := range profile.SortedKeys() {
		env = append(env, key+"="+profile.Variables[key])
	}
	return append(env, SessionVar+"="+name), nil
}

func checkKeys(name string, profile models.Profile) error {
	for _, key := range profile.SortedKeys() {
		if err := validation.ValidateVariableName(key); err != nil {
			return fmt.Errorf("environment '%s': %w", name, err)
		}
	}
	return nil
}

// HookSnippet is a line for the shell's startup file that activates the
// global profile in every new session
func HookSnippet(dialect Dialect) string {
	switch dialect {
	case Fish:
		return "ccv shell --shell fish 2>/dev/null | source\n"
	case PowerShell:
		return "ccv shell --shell powershell 2>$null | Out-String | Invoke-Expression\n"
	default:
		return fmt.Sprintf("eval \"$(ccv shell --shell %s 2>/dev/null)\"\n", dialect)
	}
}

func assignment(dialect Dialect, key, value string) string {
	switch dialect {
	case Fish:
		return fmt.Sprintf("set -gx %s %s;\n", key, fishQuote(value))
	case PowerShell:
		return fmt.Sprintf("$env:%s = '%s'\n", key, strings.ReplaceAll(value, "'", "''"))
	default:
		return fmt.Sprintf("export %s=%s\n", key, shellescape.Quote(value))
	}
}

// fishQuote single-quotes s for fish, where \\ and \' are escapes even inside quotes
func fishQuote(s string) string {
	return "'" + fishEscaper.Replace(s) + "'"
}

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func joinDialects() string {
	names := make([]string, len(Dialects))
	for i, d := range Dialects {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
