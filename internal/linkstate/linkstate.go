// Package linkstate classifies target directory entries for the
// reconciler: absent, valid link, broken link, or occupied by a real
// file. It also owns the encoding of link targets the engine writes.
package linkstate

import (
	"os"
	"path/filepath"

	"github.com/bianoble/skill-link/internal/pathutil"
)

// Kind is the coarse classification of a target entry.
type Kind int

const (
	// Absent means nothing exists at the path.
	Absent Kind = iota
	// ValidLink means a symlink whose referent exists.
	ValidLink
	// BrokenLink means a symlink whose referent is gone or unreadable.
	BrokenLink
	// Occupied means a real file or directory, not a symlink.
	Occupied
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case ValidLink:
		return "valid-link"
	case BrokenLink:
		return "broken-link"
	case Occupied:
		return "occupied"
	}
	return "unknown"
}

// State is the observed state of one target entry at inspection time.
// It is a snapshot: the engine never re-reads state for an entry after
// acting on it.
type State struct {
	Kind Kind
	// Resolved is the canonical referent path, set for ValidLink.
	Resolved string
	// RawTarget is the stored link target string, set for ValidLink and
	// BrokenLink (empty when the link itself was unreadable).
	RawTarget string
}

// Inspect classifies the entry at path. The first check must be a
// link-aware lstat: a dereferencing stat cannot tell a valid link from
// the real directory it points at.
func Inspect(path string) State {
	fi, err := os.Lstat(path)
	if err != nil {
		return State{Kind: Absent}
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return State{Kind: Occupied}
	}

	raw, err := os.Readlink(path)
	if err != nil || raw == "" {
		return State{Kind: BrokenLink}
	}

	ref := ParseTarget(raw)
	referent := ref.Referent(filepath.Dir(path))
	if _, err := os.Stat(referent); err != nil {
		return State{Kind: BrokenLink, RawTarget: raw}
	}
	return State{Kind: ValidLink, Resolved: pathutil.Resolve(referent), RawTarget: raw}
}
