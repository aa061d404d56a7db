package common

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/shopspring/decimal"
)

const TimestampLayout = "2006-01-02 15:04:05"

var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Statement is one generated SQL statement with its bound arguments.
type Statement struct {
	SQL  string
	Args []interface{}
}

type Dialect struct {
	Quote   func(string) string
	TypeMap map[types.ColumnKind]string
	Builder squirrel.StatementBuilderType
	// Value converts a row value into something the driver accepts.
	Value func(interface{}) interface{}
}

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

func QuoteDouble(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func QuoteBacktick(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func validateSchema(schema types.TableSchema) error {
	if !IsValidIdentifier(schema.Name) {
		return fmt.Errorf("invalid table name: %s", schema.Name)
	}
	for _, col := range schema.Columns {
		if !IsValidIdentifier(col.Name) {
			return fmt.Errorf("invalid column name in table %s: %s", schema.Name, col.Name)
		}
	}
	return nil
}

func (d Dialect) CreateTableSQL(schema types.TableSchema) (string, error) {
	if err := validateSchema(schema); err != nil {
		return "", err
	}

	defs := make([]string, len(schema.Columns))
	for i, col := range schema.Columns {
		def := d.Quote(col.Name) + " " + d.TypeMap[col.Kind]
		if !col.Nullable {
			def += " NOT NULL"
		}
		defs[i] = def
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", d.Quote(schema.Name), strings.Join(defs, ", ")), nil
}

// InsertStatements builds one multi-row INSERT per batch.
func (d Dialect) InsertStatements(table types.Table, batchSize int) ([]Statement, error) {
	if err := validateSchema(table.TableSchema); err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	columns := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		columns[i] = d.Quote(col.Name)
	}

	var statements []Statement
	for start := 0; start < len(table.Rows); start += batchSize {
		end := start + batchSize
		if end > len(table.Rows) {
			end = len(table.Rows)
		}

		insert := d.Builder.Insert(d.Quote(table.Name)).Columns(columns...)
		for _, row := range table.Rows[start:end] {
			if len(row) != len(columns) {
				return nil, fmt.Errorf("table %s: row has %d values, expected %d", table.Name, len(row), len(columns))
			}
			values := make([]interface{}, len(row))
			for i, v := range row {
				values[i] = d.convert(v)
			}
			insert = insert.Values(values...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build insert for %s: %w", table.Name, err)
		}
		statements = append(statements, Statement{SQL: query, Args: args})
	}

	return statements, nil
}

func (d Dialect) convert(v interface{}) interface{} {
	if d.Value != nil {
		return d.Value(v)
	}
	return DriverValue(v)
}

// DriverValue renders money as a fixed two-place string and leaves
// everything else to the driver.
func DriverValue(v interface{}) interface{} {
	switch val := v.(type) {
	case decimal.Decimal:
		return val.StringFixed(2)
	default:
		return v
	}
}

// TextValue is DriverValue with timestamps rendered as text, for stores
// without a native timestamp type.
func TextValue(v interface{}) interface{} {
	if t, ok := v.(time.Time); ok {
		return t.Format(TimestampLayout)
	}
	return DriverValue(v)
}

// ExecStatements runs the statements against a database/sql handle,
// optionally inside one transaction.
func ExecStatements(ctx context.Context, db *sql.DB, statements []Statement, useTransaction bool) error {
	if !useTransaction {
		for _, stmt := range statements {
			if _, err := db.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
				return err
			}
		}
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func CountRows(ctx context.Context, db *sql.DB, quotedTable string) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quotedTable).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
