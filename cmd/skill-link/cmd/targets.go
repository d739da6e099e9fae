package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/skill-link/internal/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List known tool skill directories",
	Long: `Shows every tool skill directory skill-link knows how to discover and
whether it currently exists. Only existing directories take part in a
sync; missing ones are listed for reference.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		disabled := make(map[string]bool, len(cfg.DisabledTools))
		for _, name := range cfg.DisabledTools {
			disabled[name] = true
		}

		fmt.Printf("%-14s %-10s %s\n", "TOOL", "STATE", "PATH")
		for _, p := range target.Known() {
			state := "missing"
			switch {
			case disabled[p.Tool]:
				state = "disabled"
			case p.Exists:
				state = "active"
			}
			fmt.Printf("%-14s %-10s %s\n", p.Tool, state, p.Path)
		}

		for _, extra := range cfg.ExtraTargets {
			fmt.Printf("%-14s %-10s %s\n", "(extra)", "explicit", extra)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
