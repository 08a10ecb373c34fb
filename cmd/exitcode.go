package cmd

import (
	"errors"

	"ccv/config"
	"ccv/internal/prompt"
)

// Process exit codes
const (
	ExitOK              = 0
	ExitGeneral         = 1
	ExitNotFound        = 2
	ExitDuplicate       = 3
	ExitCorruptConfig   = 4
	ExitIO              = 5
	ExitIncompleteInput = 6
)

// ExitCode maps an error returned by Execute to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrNotFound), errors.Is(err, config.ErrNoEnvironment):
		return ExitNotFound
	case errors.Is(err, config.ErrDuplicateProfile):
		return ExitDuplicate
	case errors.Is(err, config.ErrCorruptConfig):
		return ExitCorruptConfig
	case errors.Is(err, config.ErrIO):
		return ExitIO
	case errors.Is(err, prompt.ErrIncompleteInput):
		return ExitIncompleteInput
	default:
		return ExitGeneral
	}
}
