package cmd

import (
	"fmt"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default salesgen.config.json and .env",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.IsInitialized() {
			color.Yellow("⚠️  %s already exists", config.ConfigFile)
			return nil
		}

		if err := config.InitializeProject(); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}

		color.Green("✅ Created %s", config.ConfigFile)
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Adjust counts and seed in " + config.ConfigFile)
		fmt.Println("  2. Run 'salesgen generate'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
