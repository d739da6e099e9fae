// Package source enumerates the skills directory being mirrored.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bianoble/skill-link/internal/logging"
	"github.com/bianoble/skill-link/internal/pathutil"
)

// ErrSourceNotFound indicates the skills directory is missing or not a
// directory. Fatal to the whole run; nothing is mutated when it occurs.
var ErrSourceNotFound = errors.New("skills source not found")

// Skill is one entry of the source directory to mirror into each target.
// Built fresh from a directory listing on every run, never persisted.
type Skill struct {
	Name string
	// Path is the absolute, symlink-resolved location of the entry.
	Path string
}

// List enumerates the immediate children of sourceDir as skills. Hidden
// entries (dot-prefixed names) are excluded. The result is ordered
// lexicographically by name so that logs and decisions are reproducible.
//
// A directory that exists but holds only hidden entries is a valid, empty
// source: List returns an empty slice and no error.
func List(sourceDir string) ([]Skill, error) {
	log := logging.GetLogger("source")

	fi, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourceDir)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, sourceDir)
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrSourceNotFound, sourceDir, err)
	}

	skills := make([]Skill, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		skills = append(skills, Skill{
			Name: e.Name(),
			Path: pathutil.Resolve(filepath.Join(sourceDir, e.Name())),
		})
	}

	// ReadDir already sorts, but the ordering is a contract here, not an
	// accident of the listing.
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })

	log.Debug().Int("count", len(skills)).Str("dir", sourceDir).Msg("enumerated skills")
	return skills, nil
}
