package cmd

import (
	"fmt"
	"strings"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/seeder"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the generation order and table dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s := seeder.NewSeeder(seedConfigFrom(cfg))
		order, err := s.Order()
		if err != nil {
			return err
		}

		color.Cyan("📋 Generation plan (seed %d)", cfg.Seed)
		fmt.Println()

		schemas := make(map[string]types.TableSchema)
		for _, schema := range types.Schemas() {
			schemas[schema.Name] = schema
		}

		for i, name := range order {
			deps := s.Dependencies(name)
			depText := "-"
			if len(deps) > 0 {
				depText = strings.Join(deps, ", ")
			}
			fmt.Printf("  %d. %-30s ", i+1, name)
			color.New(color.FgYellow).Printf("← %s", depText)
			fmt.Printf("  (%s)\n", schemas[name].FileName)
		}

		fmt.Println()
		fmt.Printf("  customers=%d sellers=%d products=%d orders=%d\n",
			cfg.Counts.Customers, cfg.Counts.Sellers, cfg.Counts.Products, cfg.Counts.Orders)
		fmt.Printf("  output=%s format=%s\n", cfg.Output.Dir, cfg.Output.Format)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
