package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	backupPrefix = "tdo-"
	backupSuffix = ".db"
)

var (
	backupDir  string
	backupKeep int
)

// EnableBackups makes Transaction snapshot the database into dir before each
// write, keeping the newest keep copies. keep <= 0 turns backups off.
func EnableBackups(dir string, keep int) {
	backupDir = dir
	backupKeep = keep
}

// Backup writes a consistent copy of db into dir with VACUUM INTO and prunes
// the directory down to the newest keep backups
func Backup(db *gorm.DB, dir string, keep int, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := backupPath(dir, now)
	for fileExists(path) {
		now = now.Add(time.Nanosecond)
		path = backupPath(dir, now)
	}

	if err := db.Exec("VACUUM INTO ?", path).Error; err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}

	if err := pruneBackups(dir, keep); err != nil {
		return "", err
	}
	return path, nil
}

// ListBackups returns the backup files in dir, oldest first
func ListBackups(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	// Timestamps are fixed width, so name order is age order
	sort.Strings(files)
	return files, nil
}

func pruneBackups(dir string, keep int) error {
	files, err := ListBackups(dir)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(files) <= keep {
		return nil
	}
	for _, f := range files[:len(files)-keep] {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("failed to prune backup: %w", err)
		}
	}
	return nil
}

func backupPath(dir string, t time.Time) string {
	return filepath.Join(dir, backupPrefix+t.UTC().Format("20060102T150405.000000000")+backupSuffix)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
