package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bianoble/skill-link/internal/engine"
	"github.com/bianoble/skill-link/internal/ui"
)

var (
	statusSource string
	statusTarget string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what a sync would do, without changing anything",
	Long: `Runs the reconciliation in preview mode and prints the decision for
every skill in every target. Decisions are identical to what a mutating
sync would do on the same filesystem state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		src, err := resolveSource(statusSource, cfg)
		if err != nil {
			return err
		}

		targets, err := resolveTargets(statusTarget, cfg)
		if err != nil {
			return err
		}

		rep, err := engine.Run(engine.Options{
			SourceDir: src,
			Targets:   targets,
			Preview:   true,
		})
		if err != nil {
			return err
		}

		styles := ui.New(noColor)
		for _, tr := range rep.Targets {
			info("%s", styles.Header(tr.Target))
			for _, d := range tr.Swept {
				info("%s", styles.Row(d))
			}
			for _, d := range tr.Decisions {
				info("%s", styles.Row(d))
			}
		}
		info("")
		info("Would be: %s", styles.Summary(rep.Counters))
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusSource, "source", "", "skills directory to mirror (default ~/"+defaultSourceRel+")")
	statusCmd.Flags().StringVar(&statusTarget, "target", "", "inspect exactly this target directory, skipping discovery")
	rootCmd.AddCommand(statusCmd)
}
