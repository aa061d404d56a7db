package seeder

import (
	"fmt"
	"strings"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/fatih/color"
)

type generateFunc func(s *Seeder, data *types.Dataset) (int, error)

// Seeder runs the table generators in dependency order against one shared
// DataGenerator.
type Seeder struct {
	generator  *DataGenerator
	graph      *DependencyGraph
	seedConfig SeedConfig
	steps      map[string]generateFunc
}

func NewSeeder(seedConfig SeedConfig) *Seeder {
	s := &Seeder{
		generator:  NewDataGenerator(seedConfig.Seed),
		graph:      NewDependencyGraph(),
		seedConfig: seedConfig,
		steps:      make(map[string]generateFunc),
	}

	s.register(types.CustomersSchema, func(s *Seeder, data *types.Dataset) (int, error) {
		data.Customers = GenerateCustomers(s.generator, s.seedConfig.Counts.Customers)
		return len(data.Customers), nil
	})
	s.register(types.SellersSchema, func(s *Seeder, data *types.Dataset) (int, error) {
		data.Sellers = GenerateSellers(s.generator, s.seedConfig.Counts.Sellers)
		return len(data.Sellers), nil
	})
	s.register(types.ProductsSchema, func(s *Seeder, data *types.Dataset) (int, error) {
		data.Products = GenerateProducts(s.generator, s.seedConfig.Counts.Products)
		return len(data.Products), nil
	})
	s.register(types.CategoryTranslationsSchema, func(s *Seeder, data *types.Dataset) (int, error) {
		data.CategoryTranslations = GenerateCategoryTranslations(DistinctCategories(data.Products))
		return len(data.CategoryTranslations), nil
	})
	s.register(types.OrdersSchema, func(s *Seeder, data *types.Dataset) (int, error) {
		orders, err := GenerateOrders(s.generator, data.Customers, s.seedConfig.Counts.Orders)
		if err != nil {
			return 0, err
		}
		data.Orders = orders
		return len(orders), nil
	})
	s.register(types.OrderItemsSchema, func(s *Seeder, data *types.Dataset) (int, error) {
		items, err := GenerateOrderItems(s.generator, data.Orders, data.Products, data.Sellers)
		if err != nil {
			return 0, err
		}
		data.OrderItems = items
		return len(items), nil
	})
	s.register(types.PaymentsSchema, func(s *Seeder, data *types.Dataset) (int, error) {
		data.Payments = GeneratePayments(s.generator, data.OrderItems)
		return len(data.Payments), nil
	})
	s.register(types.ReviewsSchema, func(s *Seeder, data *types.Dataset) (int, error) {
		data.Reviews = GenerateReviews(s.generator, data.Orders)
		return len(data.Reviews), nil
	})

	return s
}

func (s *Seeder) register(schema types.TableSchema, fn generateFunc) {
	s.graph.AddTable(schema)
	s.steps[schema.Name] = fn
}

// Order returns the table generation order.
func (s *Seeder) Order() ([]string, error) {
	return s.graph.BuildInsertionOrder()
}

func (s *Seeder) Dependencies(tableName string) []string {
	return s.graph.Dependencies(tableName)
}

// Run generates every table. Any generator error aborts the run.
func (s *Seeder) Run() (*types.Dataset, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	order, err := s.graph.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build generation order: %w", err)
	}

	s.logf(color.Cyan, "🌱 Generating dataset (seed %d)...", s.seedConfig.Seed)
	s.logf(color.Cyan, "📋 Generation order: %s", strings.Join(order, " → "))

	data := &types.Dataset{}
	for _, tableName := range order {
		rows, err := s.steps[tableName](s, data)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", tableName, err)
		}
		s.logf(color.Green, "  ✅ %s: %d rows", tableName, rows)
	}

	return data, nil
}

func (s *Seeder) validate() error {
	c := s.seedConfig.Counts
	for name, n := range map[string]int{
		types.TableCustomers: c.Customers,
		types.TableSellers:   c.Sellers,
		types.TableProducts:  c.Products,
		types.TableOrders:    c.Orders,
	} {
		if n < 0 {
			return fmt.Errorf("invalid row count for %s: %d", name, n)
		}
	}
	return nil
}

func (s *Seeder) logf(print func(format string, a ...interface{}), format string, a ...interface{}) {
	if s.seedConfig.Quiet {
		return
	}
	print(format, a...)
}
