package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/skill-link/internal/engine"
	"github.com/bianoble/skill-link/internal/ui"
)

var (
	syncSource string
	syncTarget string
	syncDryRun bool
	syncStrict bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror skills into all target directories",
	Long: `Enumerates the skills directory and reconciles every target: broken links
are deleted, missing links created, correct links confirmed. Entries
occupied by real files, or by links pointing elsewhere, are skipped and
never overwritten. Use --dry-run to see every decision without mutating.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		src, err := resolveSource(syncSource, cfg)
		if err != nil {
			return err
		}

		targets, err := resolveTargets(syncTarget, cfg)
		if err != nil {
			return err
		}

		rep, err := engine.Run(engine.Options{
			SourceDir: src,
			Targets:   targets,
			Preview:   syncDryRun,
		})
		if err != nil {
			return err
		}

		styles := ui.New(noColor)
		if syncDryRun {
			info("Dry run — no links changed.")
		}
		printReport(rep, styles)
		info("Sync complete: %s", styles.Summary(rep.Counters))

		// Per-entry failures are counted, not fatal, unless asked for.
		if syncStrict && rep.Counters.Failed > 0 {
			return fmt.Errorf("%d link(s) failed", rep.Counters.Failed)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncSource, "source", "", "skills directory to mirror (default ~/"+defaultSourceRel+")")
	syncCmd.Flags().StringVar(&syncTarget, "target", "", "reconcile exactly this target directory, skipping discovery")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "report decisions without changing any links")
	syncCmd.Flags().BoolVar(&syncStrict, "strict", false, "exit non-zero when any link creation fails")
	rootCmd.AddCommand(syncCmd)
}
