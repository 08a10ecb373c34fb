package config

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the store and profile operations.
// Callers match them with errors.Is.
var (
	ErrDuplicateProfile = errors.New("already exists")
	ErrNotFound         = errors.New("does not exist")
	ErrCorruptConfig    = errors.New("config file is corrupt")
	ErrIO               = errors.New("config file I/O error")
	ErrNoEnvironment    = errors.New("no environment specified and no global environment set")
)

func duplicateError(name string) error {
	return fmt.Errorf("environment '%s' %w", name, ErrDuplicateProfile)
}

func notFoundError(name string) error {
	return fmt.Errorf("environment '%s' %w", name, ErrNotFound)
}
