package cmd

import (
	"context"
	"fmt"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/export"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the dataset and write it to the output directory",
	Long: `
Generate every table in dependency order and write the result.

Examples:
  salesgen generate
  salesgen generate --seed 7 --orders 50
  salesgen generate --format json --out fixtures`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := cfg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}

		data, err := generateDataset(cfg)
		if err != nil {
			return err
		}
		tables := data.Tables()

		ctx := context.Background()
		paths, err := export.PerformExport(ctx, tables, cfg.Output.Dir, cfg.Output.Format)
		if err != nil {
			return err
		}
		fmt.Println()
		for _, path := range paths {
			color.Cyan("  💾 %s", path)
		}

		if cfg.Output.Manifest {
			path, err := export.WriteManifest(cfg.Output.Dir, export.NewManifest(cfg.Seed, cfg.Output.Format, tables))
			if err != nil {
				return err
			}
			color.Cyan("  🧾 %s", path)
		}

		color.Green("\n✅ Data generation complete.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("out", "o", "data", "Output directory")
	generateCmd.Flags().StringP("format", "F", "csv", "Output format: csv, json or sqlite")
	generateCmd.Flags().Bool("manifest", true, "Write manifest.yaml next to the data")

	bindFlags(generateCmd.Flags(), map[string]string{
		"output.dir":      "out",
		"output.format":   "format",
		"output.manifest": "manifest",
	})
}
