package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/database/common"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type Adapter struct {
	pool    *pgxpool.Pool
	dialect common.Dialect
}

var typeMap = map[types.ColumnKind]string{
	types.KindText:      "TEXT",
	types.KindInteger:   "INTEGER",
	types.KindDecimal:   "NUMERIC(12, 2)",
	types.KindTimestamp: "TIMESTAMP",
}

func New() *Adapter {
	return &Adapter{
		dialect: common.Dialect{
			Quote:   pq.QuoteIdentifier,
			TypeMap: typeMap,
			Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		},
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Adapter) CreateTable(ctx context.Context, schema types.TableSchema) error {
	query, err := p.dialect.CreateTableSQL(schema)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, query)
	return err
}

func (p *Adapter) TruncateTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	_, err := p.pool.Exec(ctx, "TRUNCATE TABLE "+pq.QuoteIdentifier(tableName))
	return err
}

func (p *Adapter) DropTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	_, err := p.pool.Exec(ctx, "DROP TABLE IF EXISTS "+pq.QuoteIdentifier(tableName))
	return err
}

func (p *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if !common.IsValidIdentifier(tableName) {
		return 0, fmt.Errorf("invalid table name: %s", tableName)
	}
	var count int
	err := p.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+pq.QuoteIdentifier(tableName)).Scan(&count)
	return count, err
}

func (p *Adapter) InsertRows(ctx context.Context, table types.Table, batchSize int, useTransaction bool) (int64, error) {
	statements, err := p.dialect.InsertStatements(table, batchSize)
	if err != nil {
		return 0, err
	}

	if !useTransaction {
		for _, stmt := range statements {
			if _, err := p.pool.Exec(ctx, stmt.SQL, stmt.Args...); err != nil {
				return 0, err
			}
		}
		return int64(len(table.Rows)), nil
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt.SQL, stmt.Args...); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return int64(len(table.Rows)), nil
}
