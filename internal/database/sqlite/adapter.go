package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/database/common"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db      *sql.DB
	dialect common.Dialect
	path    string
}

var typeMap = map[types.ColumnKind]string{
	types.KindText:      "TEXT",
	types.KindInteger:   "INTEGER",
	types.KindDecimal:   "NUMERIC",
	types.KindTimestamp: "TEXT",
}

func New() *Adapter {
	return &Adapter{
		dialect: common.Dialect{
			Quote:   common.QuoteDouble,
			TypeMap: typeMap,
			Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
			Value:   common.TextValue,
		},
	}
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")

	s.path = dbPath
	if idx := strings.Index(s.path, "?"); idx > 0 {
		s.path = s.path[:idx]
	}
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

// Path is the database file the adapter is connected to.
func (s *Adapter) Path() string {
	return s.path
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) CreateTable(ctx context.Context, schema types.TableSchema) error {
	query, err := s.dialect.CreateTableSQL(schema)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query)
	return err
}

func (s *Adapter) TruncateTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM "+common.QuoteDouble(tableName))
	return err
}

func (s *Adapter) DropTable(ctx context.Context, tableName string) error {
	if !common.IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table name: %s", tableName)
	}
	_, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+common.QuoteDouble(tableName))
	return err
}

func (s *Adapter) GetTableRowCount(ctx context.Context, tableName string) (int, error) {
	if !common.IsValidIdentifier(tableName) {
		return 0, fmt.Errorf("invalid table name: %s", tableName)
	}
	return common.CountRows(ctx, s.db, common.QuoteDouble(tableName))
}

func (s *Adapter) InsertRows(ctx context.Context, table types.Table, batchSize int, useTransaction bool) (int64, error) {
	statements, err := s.dialect.InsertStatements(table, batchSize)
	if err != nil {
		return 0, err
	}
	if err := common.ExecStatements(ctx, s.db, statements, useTransaction); err != nil {
		return 0, err
	}
	return int64(len(table.Rows)), nil
}
