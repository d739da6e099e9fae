package linkstate

import (
	"path/filepath"
	"strings"
)

// Marker is the prefix the engine puts on every link target it writes.
// A doubled leading slash resolves the same as a single slash on Linux
// and macOS, so engine-authored links stay valid symlinks while being
// distinguishable from links other tools created with plain targets.
const Marker = "//"

// RefKind distinguishes the three encodings a stored link target can use.
type RefKind int

const (
	// MarkerAbsolute is an engine-authored absolute target.
	MarkerAbsolute RefKind = iota
	// PlainAbsolute is an absolute target written by some other tool.
	PlainAbsolute
	// Relative is a target interpreted against the link's directory.
	Relative
)

// TargetRef is a stored link target parsed into its encoding. Parsing
// happens once, at inspection time; nothing downstream re-examines the
// raw string.
type TargetRef struct {
	Kind RefKind
	// Path is absolute for MarkerAbsolute and PlainAbsolute (marker
	// stripped), and the stored relative path otherwise.
	Path string
}

// ParseTarget classifies a stored symlink target string.
func ParseTarget(raw string) TargetRef {
	switch {
	case strings.HasPrefix(raw, Marker):
		return TargetRef{Kind: MarkerAbsolute, Path: raw[1:]}
	case filepath.IsAbs(raw):
		return TargetRef{Kind: PlainAbsolute, Path: raw}
	default:
		return TargetRef{Kind: Relative, Path: raw}
	}
}

// Referent returns the absolute path the ref points at, given the
// directory containing the link.
func (r TargetRef) Referent(linkDir string) string {
	if r.Kind == Relative {
		return filepath.Join(linkDir, r.Path)
	}
	return r.Path
}

// EncodeTarget returns the marker-prefixed form of an absolute path.
// Every link the engine creates stores its target in this form.
func EncodeTarget(abs string) string {
	return Marker + strings.TrimPrefix(abs, "/")
}
