package cmd

import (
	"fmt"
	"os"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║   ███████╗ █████╗ ██╗     ███████╗███████╗   ║",
		"║   ██╔════╝██╔══██╗██║     ██╔════╝██╔════╝   ║",
		"║   ███████╗███████║██║     █████╗  ███████╗   ║",
		"║   ╚════██║██╔══██║██║     ██╔══╝  ╚════██║   ║",
		"║   ███████║██║  ██║███████╗███████╗███████║   ║",
		"║   ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝   ║",
		"║                                              ║",
		"║     🛒 Synthetic e-commerce fixtures 🛒      ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("               ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "salesgen",
	Short: "Generate a synthetic relational e-commerce dataset",
	Long: `
salesgen synthesizes a small relational e-commerce dataset for use as
test fixtures: customers, sellers, products, category translations,
orders, order items, payments and reviews.

Output:
- CSV (one file per table, default)
- JSON (single dataset.json)
- SQLite (single dataset.db)
- Any PostgreSQL, MySQL or SQLite database via 'salesgen load'`,
	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("salesgen version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./salesgen.config.json)")
	rootCmd.PersistentFlags().Uint64("seed", 42, "Random seed; the same seed and counts reproduce the same dataset")
	rootCmd.PersistentFlags().Int("customers", 200, "Number of customers")
	rootCmd.PersistentFlags().Int("sellers", 50, "Number of sellers")
	rootCmd.PersistentFlags().Int("products", 100, "Number of products")
	rootCmd.PersistentFlags().Int("orders", 1000, "Number of orders")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"seed":             "seed",
		"counts.customers": "customers",
		"counts.sellers":   "sellers",
		"counts.products":  "products",
		"counts.orders":    "orders",
	})
}

// bindFlags binds config keys to flags so that a flag set on the command
// line overrides the config file and environment.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
		}
	}
}

func initConfig() {
	if err := config.Init(cfgFile); err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}
}

// loadConfig loads, validates and returns the active configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
