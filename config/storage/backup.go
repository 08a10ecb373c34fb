package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// DefaultBackupRetention is the default number of backups to keep
const DefaultBackupRetention = 3

// backupTimeLayout sorts lexically in chronological order
const backupTimeLayout = "20060102150405.000000000"

// BackupManager manages timestamped copies of a file written next to it
type BackupManager struct {
	// MaxBackups is the maximum number of backups to retain
	MaxBackups int

	now func() time.Time
}

// NewBackupManager creates a new BackupManager keeping at most maxBackups copies
func NewBackupManager(maxBackups int) *BackupManager {
	if maxBackups <= 0 {
		maxBackups = DefaultBackupRetention
	}
	return &BackupManager{
		MaxBackups: maxBackups,
		now:        time.Now,
	}
}

// backupPattern matches every backup of filePath
func backupPattern(filePath string) string {
	return filePath + ".backup-*"
}

// CreateBackup copies filePath to filePath.backup-<timestamp>-<pid>
func (bm *BackupManager) CreateBackup(filePath string) (string, error) {
	timestamp := bm.now().UTC().Format(backupTimeLayout)
	backupPath := fmt.Sprintf("%s.backup-%s-%d", filePath, timestamp, os.Getpid())

	if err := copyFile(filePath, backupPath); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	return backupPath, nil
}

// ListBackups returns the backups of filePath, oldest first
func (bm *BackupManager) ListBackups(filePath string) ([]string, error) {
	backups, err := filepath.Glob(backupPattern(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	slices.Sort(backups)
	return backups, nil
}

// CleanupOldBackups removes backups beyond MaxBackups, oldest first
func (bm *BackupManager) CleanupOldBackups(filePath string) error {
	backups, err := bm.ListBackups(filePath)
	if err != nil {
		return err
	}

	excess := len(backups) - bm.MaxBackups
	if excess <= 0 {
		return nil
	}

	for _, old := range backups[:excess] {
		if err := os.Remove(old); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old, err)
		}
	}
	return nil
}

// RestoreFromLatestBackup atomically replaces filePath with its newest backup
func (bm *BackupManager) RestoreFromLatestBackup(filePath string) error {
	backups, err := bm.ListBackups(filePath)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backup files found for %s", filePath)
	}

	data, err := os.ReadFile(backups[len(backups)-1])
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	return WriteFileAtomic(filePath, data)
}

// copyFile copies src to dst with FilePerm
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}
