// Package target models the consumer directories skills are mirrored
// into, and discovers the well-known ones.
package target

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/bianoble/skill-link/internal/logging"
)

var (
	// ErrTargetNotFound indicates an explicitly requested target
	// directory is missing. Candidates that fail discovery are skipped
	// silently instead.
	ErrTargetNotFound = errors.New("target directory not found")
	// ErrNoTargets indicates discovery and validation left zero targets.
	ErrNoTargets = errors.New("no valid target directories")
)

// Dir is one consumer location to mirror skills into. Immutable for the
// run once constructed.
type Dir struct {
	// Path is absolute and validated to exist as a directory.
	Path string
	// Tool names the owning tool for discovered targets; empty for
	// explicitly requested ones.
	Tool string
}

// candidate is one well-known location probed during discovery.
type candidate struct {
	tool string
	path func() string
}

// homeRel builds a path relative to the user's home directory. The HOME
// environment variable wins over the OS lookup so tests can redirect it.
func homeRel(rel string) func() string {
	return func() string {
		home := os.Getenv("HOME")
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return ""
			}
		}
		return filepath.Join(home, rel)
	}
}

// configRel builds a path under the XDG config tree.
func configRel(rel string) func() string {
	return func() string {
		return filepath.Join(xdg.ConfigHome, rel)
	}
}

// candidates lists the skill directories of known consumer tools. Most
// tools keep theirs directly under the home directory; a few follow the
// XDG base directory spec.
var candidates = []candidate{
	{tool: "claude-code", path: homeRel(".claude/skills")},
	{tool: "cline", path: homeRel(".cline/skills")},
	{tool: "codex", path: homeRel(".codex/skills")},
	{tool: "cursor", path: homeRel(".cursor/skills")},
	{tool: "goose", path: configRel("goose/skills")},
	{tool: "opencode", path: configRel("opencode/skills")},
	{tool: "windsurf", path: homeRel(".windsurf/skills")},
}

// Probe reports one candidate and whether its directory currently exists.
type Probe struct {
	Tool   string
	Path   string
	Exists bool
}

// Known probes every candidate, including disabled ones, for reporting.
func Known() []Probe {
	probes := make([]Probe, 0, len(candidates))
	for _, c := range candidates {
		p := c.path()
		probe := Probe{Tool: c.tool, Path: p}
		if p != "" {
			if fi, err := os.Stat(p); err == nil && fi.IsDir() {
				probe.Exists = true
			}
		}
		probes = append(probes, probe)
	}
	return probes
}

// Discover returns the candidate directories that exist, skipping any
// tool named in disabled. A missing candidate is not an error — discovery
// is best effort, unlike Explicit.
func Discover(disabled []string) []Dir {
	log := logging.GetLogger("target")

	skip := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		skip[name] = true
	}

	var dirs []Dir
	for _, c := range candidates {
		if skip[c.tool] {
			log.Debug().Str("tool", c.tool).Msg("tool disabled, skipping")
			continue
		}
		p := c.path()
		if p == "" {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil || !fi.IsDir() {
			continue
		}
		log.Debug().Str("tool", c.tool).Str("dir", p).Msg("discovered target")
		dirs = append(dirs, Dir{Path: p, Tool: c.tool})
	}
	return dirs
}

// Explicit validates a user-requested target directory. Unlike discovery
// candidates, a missing explicit target is a hard error.
func Explicit(path string) (Dir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Dir{}, fmt.Errorf("resolving %s: %w", path, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return Dir{}, fmt.Errorf("%w: %s", ErrTargetNotFound, path)
	}
	if !fi.IsDir() {
		return Dir{}, fmt.Errorf("%w: %s is not a directory", ErrTargetNotFound, path)
	}
	return Dir{Path: abs}, nil
}
