package database

import (
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/database/mysql"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/database/postgres"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/database/sqlite"
)

func NewAdapter(provider string) DatabaseAdapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New()
	case "mysql":
		return mysql.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	default:
		return postgres.New()
	}
}
