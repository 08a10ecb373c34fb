// Package sync writes profile variables into Claude Code's settings.json.
package sync

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"ccv/config/storage"

	"github.com/adrg/xdg"
	log "github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ManagedPrefix marks env keys owned by ccv
const ManagedPrefix = "ANTHROPIC_"

// SyncOptions provides options for synchronization
type SyncOptions struct {
	DryRun       bool // compute the result without writing
	CreateBackup bool // back up the current file before replacing it
}

// DefaultSettingsPath returns ~/.claude/settings.json
func DefaultSettingsPath() string {
	return filepath.Join(xdg.Home, ".claude", "settings.json")
}

// UpdateEnvField sets vars in the env object of the settings JSON.
// Existing ANTHROPIC_ keys absent from vars are removed. Other keys in vars
// overwrite same-named env entries; every remaining key is left as it was.
func UpdateEnvField(originalContent string, vars map[string]string) (string, error) {
	content, err := ClearEnv(originalContent)
	if err != nil {
		return "", err
	}

	keys := lo.Keys(vars)
	slices.Sort(keys)
	for _, key := range keys {
		content, err = sjson.Set(content, envPath(key), vars[key])
		if err != nil {
			return "", fmt.Errorf("failed to set env.%s: %w", key, err)
		}
	}

	if err := validateJSONUpdate(originalContent, content, keys...); err != nil {
		return "", fmt.Errorf("update validation failed: %w", err)
	}
	return content, nil
}

// ClearEnv removes every ANTHROPIC_ key from the env object
func ClearEnv(originalContent string) (string, error) {
	content := originalContent
	if strings.TrimSpace(content) == "" {
		content = "{}"
	}
	if !gjson.Valid(content) {
		return "", fmt.Errorf("invalid JSON content")
	}
	if !gjson.Parse(content).IsObject() {
		return "", fmt.Errorf("settings must be a JSON object")
	}

	env := gjson.Get(content, "env")
	if env.Exists() && !env.IsObject() {
		return "", fmt.Errorf("env field is not an object")
	}

	var managed []string
	env.ForEach(func(key, _ gjson.Result) bool {
		if isManaged(key.String()) {
			managed = append(managed, key.String())
		}
		return true
	})

	var err error
	for _, key := range managed {
		content, err = sjson.Delete(content, envPath(key))
		if err != nil {
			return "", fmt.Errorf("failed to delete env.%s: %w", key, err)
		}
	}
	return content, nil
}

// Apply rewrites the settings file at path with vars, or clears the managed
// keys when vars is nil. A missing file is created. It returns the new content.
func Apply(path string, vars map[string]string, opts SyncOptions) (string, error) {
	original, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var updated string
	if vars == nil {
		updated, err = ClearEnv(string(original))
	} else {
		updated, err = UpdateEnvField(string(original), vars)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	if opts.DryRun {
		return updated, nil
	}
	if err := storage.AtomicFileUpdate(path, updated, opts.CreateBackup); err != nil {
		return "", err
	}
	log.Debug("updated Claude settings", "path", path, "keys", len(vars))
	return updated, nil
}

// Restore replaces the settings file with its most recent backup
func Restore(path string) error {
	return storage.NewBackupManager(storage.DefaultBackupRetention).RestoreFromLatestBackup(path)
}

// validateJSONUpdate checks that nothing changed outside the managed env keys
// and the env keys named in written
func validateJSONUpdate(originalContent, updatedContent string, written ...string) error {
	if strings.TrimSpace(originalContent) == "" {
		originalContent = "{}"
	}
	if !gjson.Valid(updatedContent) {
		return fmt.Errorf("updated JSON is invalid")
	}

	original := gjson.Parse(originalContent)
	updated := gjson.Parse(updatedContent)

	if differences := compareObjects(original, updated, "env"); len(differences) > 0 {
		return fmt.Errorf("unexpected changes to non-env fields: %s", strings.Join(differences, ", "))
	}

	var err error
	original.Get("env").ForEach(func(key, value gjson.Result) bool {
		if isManaged(key.String()) || slices.Contains(written, key.String()) {
			return true
		}
		after := updated.Get(envPath(key.String()))
		switch {
		case !after.Exists():
			err = fmt.Errorf("non-ANTHROPIC field '%s' was deleted", key.String())
		case after.Raw != value.Raw:
			err = fmt.Errorf("non-ANTHROPIC field '%s' was modified", key.String())
		}
		return err == nil
	})
	return err
}

// compareObjects lists top-level keys that differ between two objects
func compareObjects(original, updated gjson.Result, skip string) []string {
	var differences []string

	original.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == skip {
			return true
		}
		after := updated.Get(gjson.Escape(name))
		if !after.Exists() {
			differences = append(differences, name+" (missing)")
		} else if after.Raw != value.Raw {
			differences = append(differences, name)
		}
		return true
	})

	updated.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if name != skip && !original.Get(gjson.Escape(name)).Exists() {
			differences = append(differences, name+" (new)")
		}
		return true
	})

	return differences
}

func envPath(key string) string {
	return "env." + gjson.Escape(key)
}

func isManaged(key string) bool {
	return strings.HasPrefix(strings.ToUpper(key), ManagedPrefix)
}
