package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bianoble/skill-link/internal/config"
	"github.com/bianoble/skill-link/internal/target"
	"github.com/bianoble/skill-link/internal/ui"
	"github.com/bianoble/skill-link/pkg/skilllink"
)

// defaultSourceRel is the skills directory used when neither the --source
// flag nor the config file names one, relative to the user's home.
const defaultSourceRel = ".agent-skills"

// loadConfig reads the config file; a missing file yields defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSource picks the skills directory: flag, then config, then the
// default under the user's home.
func resolveSource(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.Source != "" {
		return cfg.Source, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, defaultSourceRel), nil
}

// resolveTargets builds the target list. An explicit --target replaces
// discovery entirely and is validated strictly; otherwise discovered
// directories plus validated config extras are used.
func resolveTargets(flagValue string, cfg *config.Config) ([]target.Dir, error) {
	if flagValue != "" {
		d, err := target.Explicit(flagValue)
		if err != nil {
			return nil, err
		}
		return []target.Dir{d}, nil
	}

	dirs := target.Discover(cfg.DisabledTools)
	for _, p := range cfg.ExtraTargets {
		d, err := target.Explicit(p)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		return nil, target.ErrNoTargets
	}
	return dirs, nil
}

// printReport renders per-target decisions and the summary line.
// AlreadyLinked lines only appear in verbose mode; failures always go to
// stderr as well as the counter.
func printReport(rep *skilllink.Report, styles *ui.Styles) {
	for _, tr := range rep.Targets {
		info("%s", styles.Header(tr.Target))
		for _, d := range tr.Swept {
			info("%s", styles.Decision(d))
		}
		for _, d := range tr.Decisions {
			switch d.Kind {
			case skilllink.AlreadyLinked:
				detail("%s", styles.Decision(d))
			case skilllink.Failed:
				info("%s", styles.Decision(d))
				errorf("%s: %s", d.Skill, d.Detail)
			default:
				info("%s", styles.Decision(d))
			}
		}
	}
	info("")
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbosity >= 1 && !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
