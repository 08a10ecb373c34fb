package validation

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength bounds environment names
const MaxNameLength = 64

// variableNamePattern matches names every supported shell accepts in an assignment
var variableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName checks if an environment name is usable as a TOML table key
// and as a shell argument. Names are case-sensitive and otherwise free-form.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("environment name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("environment name %q is not valid UTF-8", name)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("environment name is too long (max %d characters)", MaxNameLength)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("environment name %q must not contain whitespace or control characters", name)
		}
	}
	return nil
}

// ValidateVariableName checks that key can be assigned in POSIX shells, fish and PowerShell
func ValidateVariableName(key string) error {
	if !variableNamePattern.MatchString(key) {
		return fmt.Errorf("variable name %q must start with a letter or underscore and contain only letters, digits and underscores", key)
	}
	return nil
}

// ValidateVariable checks a variable name and its value before they are stored
func ValidateVariable(key, value string) error {
	if err := ValidateVariableName(key); err != nil {
		return err
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("value of %s is not valid UTF-8", key)
	}
	return nil
}
