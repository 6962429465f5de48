package backup

import (
	"fmt"

	"github.com/spf13/afero"
)

// NextAvailableSuffix returns the first of base.000, base.001, ... for which
// exists reports false. Suffixes keep growing past three digits (.999, .1000).
// The search stops at the first error from exists.
func NextAvailableSuffix(base string, exists func(string) (bool, error)) (string, error) {
	for n := 0; ; n++ {
		candidate := fmt.Sprintf("%s.%03d", base, n)
		found, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check backup name %s: %w", candidate, err)
		}
		if !found {
			return candidate, nil
		}
	}
}

// Create moves path to its next available backup name and returns that name.
// It returns "" and no error when path does not exist, since there is nothing
// to protect.
func Create(fs afero.Fs, path string) (string, error) {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !ok {
		return "", nil
	}

	// afero.Exists reports only "not exist" as absent; any other stat
	// failure ends the search instead of being taken for a used name.
	target, err := NextAvailableSuffix(path, func(p string) (bool, error) {
		return afero.Exists(fs, p)
	})
	if err != nil {
		return "", err
	}

	if err := fs.Rename(path, target); err != nil {
		return "", fmt.Errorf("failed to back up %s to %s: %w", path, target, err)
	}
	return target, nil
}

// Overwrite backs up path and then writes data to it.
func Overwrite(fs afero.Fs, path string, data []byte) (string, error) {
	backupPath, err := Create(fs, path)
	if err != nil {
		return "", err
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return backupPath, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return backupPath, nil
}
