package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/piwi3910/ProfileCut/internal/model"
)

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Catalogue model.Catalogue `json:"catalogue"`
}

// ExportAllData exports all application data (config and material catalogue)
// to a single JSON file at the specified path.
func ExportAllData(exportPath string, config model.AppConfig, cat model.Catalogue) error {
	backup := BackupData{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Catalogue: cat,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// DefaultBackupsDir returns the directory for automatic backups.
// This is located at ~/.profilecut/backups/.
func DefaultBackupsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".profilecut", "backups"), nil
}

// WriteTimestampedBackup writes a backup into dir with a timestamped file
// name and prunes the oldest backups beyond keep. Returns the path of the
// new backup file.
func WriteTimestampedBackup(dir string, config model.AppConfig, cat model.Catalogue, keep int) (string, error) {
	name := fmt.Sprintf("backup-%s.json", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := ExportAllData(path, config, cat); err != nil {
		return "", err
	}
	if err := RotateBackups(dir, keep); err != nil {
		return path, err
	}
	return path, nil
}

// RotateBackups removes the oldest timestamped backups in dir, keeping at
// most keep files. Timestamped names sort chronologically, so pruning works
// on the sorted directory listing.
func RotateBackups(dir string, keep int) error {
	if keep < 1 {
		keep = 1
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if len(name) > 7 && name[:7] == "backup-" && filepath.Ext(name) == ".json" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for len(names) > keep {
		if err := os.Remove(filepath.Join(dir, names[0])); err != nil {
			return err
		}
		names = names[1:]
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying the imported config and catalogue.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	// Ensure RecentJobs is never nil
	if backup.Config.RecentJobs == nil {
		backup.Config.RecentJobs = []string{}
	}
	return backup, nil
}
