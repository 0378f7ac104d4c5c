// Package backup snapshots the storage location into a timestamped copy
// under a backups directory, keeping at most MaxBackups snapshots.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/studyhall/studyhall/internal/constants"
)

// Info describes one snapshot.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for a storage path, which may be a
// single database file or a directory of per-key documents.
type Manager struct {
	dataPath  string
	backupDir string
}

func NewManager(dataPath string) *Manager {
	var base string
	if info, err := os.Stat(dataPath); err == nil && info.IsDir() {
		base = dataPath
	} else {
		base = filepath.Dir(dataPath)
	}
	return &Manager{
		dataPath:  dataPath,
		backupDir: filepath.Join(base, constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create copies the storage location into a new timestamped snapshot and
// prunes snapshots beyond the retention limit.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	src, err := os.Stat(m.dataPath)
	if err != nil {
		return "", fmt.Errorf("storage does not exist: %s", m.dataPath)
	}

	name := constants.BackupFilePrefix + time.Now().Format("20060102-150405")
	dest := filepath.Join(m.backupDir, name)
	counter := 1
	for {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(m.backupDir, fmt.Sprintf("%s-%d", name, counter))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup name")
		}
	}

	if src.IsDir() {
		err = copyDir(m.dataPath, dest)
	} else {
		err = copyFile(m.dataPath, dest)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	if err := m.prune(); err != nil {
		// Pruning failure is not worth failing the backup for.
		fmt.Fprintf(os.Stderr, "Warning: failed to prune old backups: %v\n", err)
	}

	return dest, nil
}

// List returns all snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) {
			continue
		}

		stampStr := strings.TrimPrefix(name, constants.BackupFilePrefix)
		if i := strings.Index(stampStr, "-"); i >= 0 && len(stampStr) > 15 {
			stampStr = stampStr[:15] // drop collision counter
		}
		timestamp, err := time.Parse("20060102-150405", stampStr)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// prune removes the oldest snapshots beyond MaxBackups.
func (m *Manager) prune() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), constants.MaxBackups):] {
		if err := os.RemoveAll(old.Path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", old.Path, err)
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func copyDir(src, dest string) error {
	if err := os.MkdirAll(dest, 0700); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		// Skip nested directories; backups and logs live beside the data files.
		if entry.IsDir() {
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
