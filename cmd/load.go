package cmd

import (
	"context"
	"fmt"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/database"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/loader"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	loadTruncate      bool
	loadNoTransaction bool
	loadForce         bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and insert it into a database",
	Long: `
Generate the dataset and insert every table into the database named by the
configured URL environment variable (DATABASE_URL by default).

Tables are created when missing and loaded parents first.

Examples:
  salesgen load
  salesgen load --truncate
  salesgen load --provider postgres --batch 1000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if loadTruncate {
			input := utils.NewInputUtils()
			if !input.AskConfirmation("⚠️  This will delete existing rows in the dataset tables. Continue?", loadForce) {
				color.Yellow("Load cancelled")
				return nil
			}
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter := database.NewAdapter(cfg.Database.Provider)
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		if err := adapter.Ping(ctx); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		color.Green("🔌 Connected to %s", cfg.Database.Provider)

		data, err := generateDataset(cfg)
		if err != nil {
			return err
		}
		tables := data.Tables()

		l := loader.New(adapter, loader.Options{
			BatchSize:     cfg.Database.BatchSize,
			Truncate:      loadTruncate,
			NoTransaction: loadNoTransaction,
		})
		loaded, err := l.Load(ctx, tables)
		if err != nil {
			return err
		}

		var total int64
		for _, table := range tables {
			total += loaded[table.Name]
		}
		color.Green("\n✅ Inserted %d rows into %d tables", total, len(tables))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().BoolVar(&loadTruncate, "truncate", false, "Empty the tables before loading")
	loadCmd.Flags().BoolVar(&loadNoTransaction, "no-transaction", false, "Do not wrap each table in a transaction")
	loadCmd.Flags().BoolVarP(&loadForce, "force", "f", false, "Skip confirmation prompt for --truncate")
	loadCmd.Flags().Int("batch", 500, "Rows per INSERT statement")
	loadCmd.Flags().String("provider", "sqlite", "Database provider: postgresql, mysql or sqlite")

	bindFlags(loadCmd.Flags(), map[string]string{
		"database.batch_size": "batch",
		"database.provider":   "provider",
	})
}
