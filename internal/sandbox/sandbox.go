// Package sandbox guards reconciler mutations so they act only on
// immediate entries of the target directory being reconciled. The source
// directory is never touched through these helpers.
package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
)

// EntryPath validates that name is a plain entry name and returns the
// absolute path targetDir/name. Names containing separators or dot
// traversal are rejected: a skill name must never address anything
// outside the target directory.
func EntryPath(targetDir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", fmt.Errorf("entry name %q escapes target directory %s", name, targetDir)
	}
	return filepath.Join(targetDir, name), nil
}

// Remove deletes targetDir/name after containment validation. The entry
// itself is removed, never followed: for a symlink only the link goes.
func Remove(targetDir, name string) error {
	path, err := EntryPath(targetDir, name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Symlink creates targetDir/name pointing at linkTarget, after
// containment validation of the entry name.
func Symlink(targetDir, name, linkTarget string) error {
	path, err := EntryPath(targetDir, name)
	if err != nil {
		return err
	}
	return os.Symlink(linkTarget, path)
}
