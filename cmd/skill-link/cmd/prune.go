package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bianoble/skill-link/internal/engine"
	"github.com/bianoble/skill-link/internal/ui"
)

var (
	pruneTarget string
	pruneDryRun bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete broken links from target directories",
	Long: `Sweeps every target directory for symbolic links whose referent no
longer exists and removes them. Nothing is created; valid links, foreign
links, and real files are untouched. Use --dry-run to preview.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		targets, err := resolveTargets(pruneTarget, cfg)
		if err != nil {
			return err
		}

		rep, err := engine.Prune(targets, pruneDryRun)
		if err != nil {
			return err
		}

		styles := ui.New(noColor)
		if pruneDryRun {
			info("Dry run — no links removed.")
		}
		for _, tr := range rep.Targets {
			if len(tr.Swept) == 0 {
				continue
			}
			info("%s", styles.Header(tr.Target))
			for _, d := range tr.Swept {
				info("%s", styles.Decision(d))
			}
		}
		info("Removed %d broken link(s).", rep.Counters.Deleted)
		return nil
	},
}

func init() {
	pruneCmd.Flags().StringVar(&pruneTarget, "target", "", "prune exactly this target directory, skipping discovery")
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "report what would be removed without acting")
	rootCmd.AddCommand(pruneCmd)
}
