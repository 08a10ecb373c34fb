package storage

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/charmbracelet/log"
)

// File permissions for everything ccv writes. Profiles carry auth tokens.
const (
	FilePerm os.FileMode = 0600
	DirPerm  os.FileMode = 0755
)

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// WriteFileAtomic writes data to filePath so that readers observe either the
// previous content or the new content, never a truncated file.
// The parent directory is created when missing.
func WriteFileAtomic(filePath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), DirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}
	if err := writeFileAtomic(filePath, data, FilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}

// AtomicFileUpdate replaces filePath with newContent, optionally taking a
// timestamped backup of the current file first.
func AtomicFileUpdate(filePath string, newContent string, createBackup bool) error {
	bm := NewBackupManager(DefaultBackupRetention)

	if createBackup && FileExists(filePath) {
		if _, err := bm.CreateBackup(filePath); err != nil {
			return fmt.Errorf("failed to create backup file: %w", err)
		}
	}

	if err := WriteFileAtomic(filePath, []byte(newContent)); err != nil {
		return err
	}

	if createBackup {
		if err := bm.CleanupOldBackups(filePath); err != nil {
			log.Warn("failed to prune old backups", "path", filePath, "err", err)
		}
	}

	return nil
}
