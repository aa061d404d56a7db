package cmd

import (
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/config"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/seeder"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
)

func seedConfigFrom(cfg *config.Config) seeder.SeedConfig {
	return seeder.SeedConfig{
		Seed: cfg.Seed,
		Counts: seeder.Counts{
			Customers: cfg.Counts.Customers,
			Sellers:   cfg.Counts.Sellers,
			Products:  cfg.Counts.Products,
			Orders:    cfg.Counts.Orders,
		},
	}
}

func generateDataset(cfg *config.Config) (*types.Dataset, error) {
	return seeder.NewSeeder(seedConfigFrom(cfg)).Run()
}
