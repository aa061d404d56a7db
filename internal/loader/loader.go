package loader

import (
	"context"
	"fmt"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/database"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/fatih/color"
)

type Options struct {
	BatchSize     int  // Rows per INSERT statement
	Truncate      bool // Empty tables before loading
	NoTransaction bool // Disable per-table transaction wrapping
	Quiet         bool
}

// Loader writes generated tables into a database through an adapter.
type Loader struct {
	adapter database.DatabaseAdapter
	opts    Options
}

func New(adapter database.DatabaseAdapter, opts Options) *Loader {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}
	return &Loader{adapter: adapter, opts: opts}
}

// Load creates missing tables and inserts rows in the given order, which must
// list referenced tables first. Truncation runs in reverse order.
func (l *Loader) Load(ctx context.Context, tables []types.Table) (map[string]int64, error) {
	for _, table := range tables {
		if err := l.adapter.CreateTable(ctx, table.TableSchema); err != nil {
			return nil, fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
	}

	if l.opts.Truncate {
		l.logf(color.Yellow, "🗑️  Truncating tables...")
		for i := len(tables) - 1; i >= 0; i-- {
			if err := l.adapter.TruncateTable(ctx, tables[i].Name); err != nil {
				return nil, fmt.Errorf("failed to truncate %s: %w", tables[i].Name, err)
			}
		}
	}

	loaded := make(map[string]int64, len(tables))
	for _, table := range tables {
		l.logf(color.Cyan, "  📝 Loading %s (%d records)...", table.Name, len(table.Rows))
		n, err := l.adapter.InsertRows(ctx, table, l.opts.BatchSize, !l.opts.NoTransaction)
		if err != nil {
			return loaded, fmt.Errorf("failed to load table %s: %w", table.Name, err)
		}
		loaded[table.Name] = n
	}

	l.logf(color.Green, "✅ Loaded %d tables", len(tables))
	return loaded, nil
}

func (l *Loader) logf(print func(format string, a ...interface{}), format string, a ...interface{}) {
	if l.opts.Quiet {
		return
	}
	print(format, a...)
}
