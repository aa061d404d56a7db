package seeder

import (
	"fmt"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
)

// DependencyGraph orders tables so that every table comes after the tables it
// references. Ties are broken by registration order, which keeps the random
// draw sequence, and therefore the output, stable across runs.
type DependencyGraph struct {
	tables map[string]types.TableSchema
	names  []string
	order  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]types.TableSchema),
	}
}

func (g *DependencyGraph) AddTable(table types.TableSchema) {
	if _, exists := g.tables[table.Name]; !exists {
		g.names = append(g.names, table.Name)
	}
	g.tables[table.Name] = table
}

func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		table, ok := g.tables[tableName]
		if !ok {
			return fmt.Errorf("unknown table: %s", tableName)
		}

		temp[tableName] = true
		for _, dep := range table.Dependencies {
			if dep == tableName {
				continue
			}
			if _, ok := g.tables[dep]; !ok {
				return fmt.Errorf("table %s depends on unknown table %s", tableName, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}

// Dependencies returns the direct dependencies of a registered table.
func (g *DependencyGraph) Dependencies(tableName string) []string {
	return g.tables[tableName].Dependencies
}
