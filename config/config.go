package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ccv/config/models"
	"ccv/config/storage"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	log "github.com/charmbracelet/log"
)

// DefaultFileName is the config file name under the user's home directory
const DefaultFileName = ".claude-code-env.toml"

// DefaultConfigPath returns ~/.claude-code-env.toml
func DefaultConfigPath() string {
	return filepath.Join(xdg.Home, DefaultFileName)
}

// Load reads the store at path. A missing or empty file yields an empty store.
func Load(path string) (*models.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("config file not found, starting with an empty store", "path", path)
			return models.NewStore(), nil
		}
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIO, path, err)
	}

	store, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded config", "path", path, "environments", len(store.Environments), "global", store.GlobalEnv)
	return store, nil
}

// Decode parses TOML into a store
func Decode(data []byte) (*models.Store, error) {
	store := models.NewStore()
	if len(bytes.TrimSpace(data)) == 0 {
		return store, nil
	}

	md, err := toml.Decode(string(data), store)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Debug("ignoring unknown config keys", "keys", undecoded)
	}

	if store.Environments == nil {
		store.Environments = map[string]models.Profile{}
	}
	for name, p := range store.Environments {
		if p.Variables == nil {
			p.Variables = map[string]string{}
			store.Environments[name] = p
		}
	}
	return store, nil
}

// Encode serializes the full store as TOML
func Encode(store *models.Store) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(store); err != nil {
		return nil, fmt.Errorf("failed to serialize config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the full store to path, replacing it atomically.
// Content that would not load back is never written.
func Save(store *models.Store, path string) error {
	data, err := Encode(store)
	if err != nil {
		return err
	}
	if _, err := Decode(data); err != nil {
		return fmt.Errorf("refusing to write unreadable config to %s: %v", path, err)
	}
	if err := storage.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	log.Debug("saved config", "path", path, "environments", len(store.Environments), "global", store.GlobalEnv)
	return nil
}
