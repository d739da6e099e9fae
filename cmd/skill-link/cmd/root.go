package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/skill-link/internal/logging"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	verbosity  int
	quiet      bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "skill-link",
	Short: "Mirror a skills directory into agent tool directories",
	Long: `skill-link maintains one-way symbolic-link mirrors of a skills directory
inside the skill directories of consumer tools. Each run re-derives state
purely from the filesystem: broken links are reclaimed, missing links are
created, and anything owned by the user or another tool is left alone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity, quiet, noColor)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skill-link %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "skill-link.yaml", "path to config file")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log detail (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
