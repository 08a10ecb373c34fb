package models

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

// Conventional variable keys populated by `ccv create`
const (
	KeyBaseURL        = "ANTHROPIC_BASE_URL"
	KeyAuthToken      = "ANTHROPIC_AUTH_TOKEN"
	KeyModel          = "ANTHROPIC_MODEL"
	KeySmallFastModel = "ANTHROPIC_SMALL_FAST_MODEL"
)

// DefaultDescription is attached to profiles created interactively
const DefaultDescription = "Anthropic Claude Code configuration"

// Profile represents a single named environment
type Profile struct {
	Variables   map[string]string `toml:"variables"`
	Description string            `toml:"description,omitempty"`
	CreatedAt   *time.Time        `toml:"created_at,omitempty"`
	UpdatedAt   *time.Time        `toml:"updated_at,omitempty"`
}

// Store represents the structure of the config file
type Store struct {
	Environments map[string]Profile `toml:"environments"`
	GlobalEnv    string             `toml:"global_env,omitempty"`
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{Environments: map[string]Profile{}}
}

// GetProfile returns the profile stored under name
func (s *Store) GetProfile(name string) (Profile, bool) {
	p, ok := s.Environments[name]
	return p, ok
}

// SetProfile inserts or replaces the profile stored under name
func (s *Store) SetProfile(name string, p Profile) {
	if s.Environments == nil {
		s.Environments = map[string]Profile{}
	}
	s.Environments[name] = p
}

// RemoveProfile deletes the profile stored under name.
// It reports whether the profile was present.
func (s *Store) RemoveProfile(name string) bool {
	if _, ok := s.Environments[name]; !ok {
		return false
	}
	delete(s.Environments, name)
	return true
}

// HasGlobal reports whether an active profile reference is set
func (s *Store) HasGlobal() bool {
	return s.GlobalEnv != ""
}

// SortedKeys returns the profile's variable names in byte order
func (p Profile) SortedKeys() []string {
	keys := lo.Keys(p.Variables)
	slices.Sort(keys)
	return keys
}

// Names returns the environment names in byte order
func (s *Store) Names() []string {
	names := lo.Keys(s.Environments)
	slices.Sort(names)
	return names
}
