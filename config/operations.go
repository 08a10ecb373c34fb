package config

import (
	"maps"
	"slices"
	"time"

	"ccv/config/models"
	"ccv/config/validation"

	"github.com/samber/lo"
)

// now is replaced in tests
var now = time.Now

// RemoveResult describes the outcome of Remove
type RemoveResult struct {
	// Cancelled is set when removal was not confirmed; the store is untouched
	Cancelled bool
	// ClearedGlobal is set when the removed environment was the global one
	ClearedGlobal bool
}

// Create inserts a new environment holding a copy of variables.
// With setActive the environment also becomes the global one, in the same
// mutation, so both changes are persisted together or not at all.
func Create(store *models.Store, name string, variables map[string]string, setActive bool) error {
	if err := CheckAvailable(store, name); err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(variables)) {
		if err := validation.ValidateVariable(key, variables[key]); err != nil {
			return err
		}
	}

	vars := maps.Clone(variables)
	if vars == nil {
		vars = map[string]string{}
	}

	ts := now().UTC().Truncate(time.Second)
	store.SetProfile(name, models.Profile{
		Variables:   vars,
		Description: models.DefaultDescription,
		CreatedAt:   &ts,
		UpdatedAt:   &ts,
	})

	if setActive {
		store.GlobalEnv = name
	}
	return nil
}

// CheckAvailable reports whether name is valid and unused, so callers can
// fail before collecting input for a new environment.
func CheckAvailable(store *models.Store, name string) error {
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	if _, exists := store.GetProfile(name); exists {
		return duplicateError(name)
	}
	return nil
}

// Remove deletes an environment once confirmed, clearing the global
// reference when it pointed at the removed environment.
func Remove(store *models.Store, name string, confirmed bool) (RemoveResult, error) {
	if _, exists := store.GetProfile(name); !exists {
		return RemoveResult{}, notFoundError(name)
	}
	if !confirmed {
		return RemoveResult{Cancelled: true}, nil
	}

	store.RemoveProfile(name)

	var result RemoveResult
	if store.GlobalEnv == name {
		store.GlobalEnv = ""
		result.ClearedGlobal = true
	}
	return result, nil
}

// Activate makes name the global environment
func Activate(store *models.Store, name string) error {
	if _, exists := store.GetProfile(name); !exists {
		return notFoundError(name)
	}
	store.GlobalEnv = name
	return nil
}

// List returns environment names in alphabetical (byte) order.
// ok is false when the store holds no environments.
func List(store *models.Store) (names []string, ok bool) {
	names = store.Names()
	return names, len(names) > 0
}

// ResolveActive picks the environment to activate: explicit when given,
// otherwise the global one.
func ResolveActive(store *models.Store, explicit string) (string, models.Profile, error) {
	name := explicit
	if name == "" {
		name = store.GlobalEnv
	}
	if name == "" {
		return "", models.Profile{}, ErrNoEnvironment
	}

	profile, exists := store.GetProfile(name)
	if !exists {
		return "", models.Profile{}, notFoundError(name)
	}
	return name, profile, nil
}

// CurrentName returns the environment in effect for a shell: the session
// environment when set, else the global one. Empty when neither is set.
func CurrentName(store *models.Store, sessionEnv string) string {
	return lo.Ternary(sessionEnv != "", sessionEnv, store.GlobalEnv)
}
