package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// AppDataDir returns the per-user directory for application data,
// e.g. ~/.config/<appName> on Linux or %AppData%\<appName> on Windows
func AppDataDir(appName string) (string, error) {
	if appName == "" {
		return "", fmt.Errorf("application name is empty")
	}

	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to resolve application data directory: %w", err)
		}
		// Fall back to a dot directory in home, which is what older releases used
		return filepath.Join(home, "."+appName), nil
	}

	return filepath.Join(base, appName), nil
}

// RemoveFilesWithPrefix deletes regular files in dir whose name starts with prefix.
// Subdirectories are left alone. It returns the names that were removed.
func RemoveFilesWithPrefix(dir, prefix string) ([]string, error) {
	if prefix == "" {
		return nil, fmt.Errorf("refusing to remove files with an empty prefix")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
		removed = append(removed, entry.Name())
	}

	return removed, nil
}
