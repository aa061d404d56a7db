package common

import (
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/shopspring/decimal"
)

var testDialect = Dialect{
	Quote: QuoteDouble,
	TypeMap: map[types.ColumnKind]string{
		types.KindText:      "TEXT",
		types.KindInteger:   "INTEGER",
		types.KindDecimal:   "NUMERIC",
		types.KindTimestamp: "TIMESTAMP",
	},
	Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
}

func TestCreateTableSQL(t *testing.T) {
	query, err := testDialect.CreateTableSQL(types.OrdersSchema)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expectedParts := []string{
		`CREATE TABLE IF NOT EXISTS "orders" (`,
		`"order_id" TEXT NOT NULL`,
		`"order_purchase_timestamp" TIMESTAMP NOT NULL`,
		`"order_delivered_customer_date" TIMESTAMP,`,
	}
	for _, part := range expectedParts {
		if !strings.Contains(query, part) {
			t.Errorf("Expected %q in %s", part, query)
		}
	}
}

func TestCreateTableSQLRejectsBadIdentifiers(t *testing.T) {
	schema := types.TableSchema{Name: "orders; DROP TABLE x", Columns: []types.Column{{Name: "id"}}}
	if _, err := testDialect.CreateTableSQL(schema); err == nil {
		t.Error("Expected invalid table name to be rejected")
	}

	schema = types.TableSchema{Name: "orders", Columns: []types.Column{{Name: "bad-name"}}}
	if _, err := testDialect.CreateTableSQL(schema); err == nil {
		t.Error("Expected invalid column name to be rejected")
	}
}

func TestInsertStatementsBatches(t *testing.T) {
	table := types.Table{TableSchema: types.PaymentsSchema}
	for i := 0; i < 5; i++ {
		table.Rows = append(table.Rows, types.Payment{
			OrderID:      "o",
			Sequential:   1,
			Type:         "boleto",
			Installments: 2,
			Value:        decimal.RequireFromString("12.5"),
		}.Values())
	}

	statements, err := testDialect.InsertStatements(table, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(statements) != 3 {
		t.Fatalf("Expected 3 batches, got %d", len(statements))
	}

	first := statements[0]
	if !strings.HasPrefix(first.SQL, `INSERT INTO "order_payments" ("order_id","payment_sequential"`) {
		t.Errorf("Unexpected SQL: %s", first.SQL)
	}
	if !strings.Contains(first.SQL, "$10") {
		t.Errorf("Expected dollar placeholders for 2 rows, got %s", first.SQL)
	}
	if len(first.Args) != 10 {
		t.Errorf("Expected 10 args, got %d", len(first.Args))
	}
	if first.Args[4] != "12.50" {
		t.Errorf("Expected decimal rendered as 12.50, got %v", first.Args[4])
	}
	if len(statements[2].Args) != 5 {
		t.Errorf("Expected last batch to hold one row, got %d args", len(statements[2].Args))
	}
}

func TestInsertStatementsRowWidthMismatch(t *testing.T) {
	table := types.Table{TableSchema: types.SellersSchema, Rows: [][]interface{}{{"only-one"}}}
	if _, err := testDialect.InsertStatements(table, 10); err == nil {
		t.Error("Expected error for short row")
	}
}

func TestValueConversions(t *testing.T) {
	ts := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)

	if got := TextValue(ts); got != "2023-05-06 07:08:09" {
		t.Errorf("Expected formatted timestamp, got %v", got)
	}
	if got := DriverValue(ts); got != ts {
		t.Errorf("Expected timestamp passthrough, got %v", got)
	}
	if got := DriverValue(nil); got != nil {
		t.Errorf("Expected nil passthrough, got %v", got)
	}
	if got := TextValue(decimal.RequireFromString("3")); got != "3.00" {
		t.Errorf("Expected 3.00, got %v", got)
	}
}

func TestQuote(t *testing.T) {
	if got := QuoteDouble(`a"b`); got != `"a""b"` {
		t.Errorf("Unexpected double quoting: %s", got)
	}
	if got := QuoteBacktick("a`b"); got != "`a``b`" {
		t.Errorf("Unexpected backtick quoting: %s", got)
	}
}
