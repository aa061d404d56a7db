package database

import (
	"context"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
)

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Table management
	CreateTable(ctx context.Context, schema types.TableSchema) error
	TruncateTable(ctx context.Context, tableName string) error
	DropTable(ctx context.Context, tableName string) error
	GetTableRowCount(ctx context.Context, tableName string) (int, error)

	// InsertRows writes the table's rows in batches of batchSize and returns
	// the number of rows written.
	InsertRows(ctx context.Context, table types.Table, batchSize int, useTransaction bool) (int64, error)
}
