package config

import (
	"fmt"
	"os"
	"path/filepath"

	"ccv/config/models"
	"ccv/config/storage"

	log "github.com/charmbracelet/log"
)

// Manager manages the environment store at a fixed path
type Manager struct {
	configPath string
}

// NewConfigManager creates a Manager for configPath.
// An empty path selects DefaultConfigPath.
func NewConfigManager(configPath string) *Manager {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	return &Manager{configPath: configPath}
}

// GetConfigPath returns the path to the config file
func (cm *Manager) GetConfigPath() string {
	return cm.configPath
}

// Load reads the current store without taking the lock
func (cm *Manager) Load() (*models.Store, error) {
	return Load(cm.configPath)
}

// Update performs one read-modify-write of the store while holding the
// store lock. fn reports whether it changed the store; the file is written
// only when fn changed it and returned no error.
func (cm *Manager) Update(fn func(store *models.Store) (bool, error)) error {
	unlock, err := cm.lock()
	if err != nil {
		return err
	}
	defer unlock()

	store, err := Load(cm.configPath)
	if err != nil {
		return err
	}

	changed, err := fn(store)
	if err != nil {
		return err
	}
	if !changed {
		log.Debug("store unchanged, skipping save", "path", cm.configPath)
		return nil
	}
	return Save(store, cm.configPath)
}

// lockPath is a sidecar file; the config itself is replaced by rename on
// every save, which would drop a lock held on it.
func (cm *Manager) lockPath() string {
	return cm.configPath + ".lock"
}

// lock takes the exclusive store lock and returns its release function
func (cm *Manager) lock() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(cm.configPath), storage.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: failed to create config directory: %w", ErrIO, err)
	}

	file, err := os.OpenFile(cm.lockPath(), os.O_RDWR|os.O_CREATE, storage.FilePerm)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open lock file: %w", ErrIO, err)
	}

	if err := lockFileExclusive(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: failed to lock config file: %w", ErrIO, err)
	}
	log.Debug("acquired store lock", "path", cm.lockPath())

	return func() {
		if err := unlockFile(file); err != nil {
			log.Warn("failed to unlock config file", "path", cm.lockPath(), "error", err)
		}
		file.Close()
	}, nil
}
