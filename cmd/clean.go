package cmd

import (
	"fmt"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/export"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cleanForce bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated files from the output directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		input := utils.NewInputUtils()
		if !input.AskConfirmation(fmt.Sprintf("Remove generated files from %s?", cfg.Output.Dir), cleanForce) {
			color.Yellow("Clean cancelled")
			return nil
		}

		removed, err := export.Clean(cfg.Output.Dir)
		if err != nil {
			return err
		}
		if len(removed) == 0 {
			color.Yellow("Nothing to clean in %s", cfg.Output.Dir)
			return nil
		}
		for _, path := range removed {
			color.Red("  🗑️  %s", path)
		}
		color.Green("✅ Removed %d files", len(removed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "Skip confirmation prompt")
}
