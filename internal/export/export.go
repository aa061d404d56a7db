package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/database/sqlite"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/loader"
	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
)

const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"

	JSONFile   = "dataset.json"
	SQLiteFile = "dataset.db"
)

// PerformExport writes the tables to exportPath in the given format and
// returns the paths written. CSV writes one file per table; a failure part
// way through leaves the files already written on disk.
func PerformExport(ctx context.Context, tables []types.Table, exportPath, format string) ([]string, error) {
	if err := os.MkdirAll(exportPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	switch format {
	case FormatCSV, "":
		return exportToCSV(tables, exportPath)
	case FormatJSON:
		path, err := exportToJSON(tables, exportPath)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	case FormatSQLite:
		path, err := exportToSQLite(ctx, tables, exportPath)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

func exportToCSV(tables []types.Table, exportPath string) ([]string, error) {
	var paths []string
	for _, table := range tables {
		filePath := filepath.Join(exportPath, table.FileName)
		if err := writeCSV(filePath, table); err != nil {
			return paths, fmt.Errorf("failed to write CSV file for %s: %w", table.Name, err)
		}
		paths = append(paths, filePath)
	}
	return paths, nil
}

func writeCSV(filePath string, table types.Table) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header()); err != nil {
		return err
	}

	values := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, v := range row {
			values[i] = FormatValue(v)
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

type jsonTable struct {
	Name    string                   `json:"name"`
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

func exportToJSON(tables []types.Table, exportPath string) (string, error) {
	out := struct {
		Tables []jsonTable `json:"tables"`
	}{Tables: make([]jsonTable, 0, len(tables))}

	for _, table := range tables {
		header := table.Header()
		jt := jsonTable{
			Name:    table.Name,
			Columns: header,
			Rows:    make([]map[string]interface{}, len(table.Rows)),
		}
		for r, row := range table.Rows {
			record := make(map[string]interface{}, len(header))
			for i, v := range row {
				record[header[i]] = jsonValue(v)
			}
			jt.Rows[r] = record
		}
		out.Tables = append(out.Tables, jt)
	}

	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}

	filePath := filepath.Join(exportPath, JSONFile)
	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return filePath, nil
}

func exportToSQLite(ctx context.Context, tables []types.Table, exportPath string) (string, error) {
	filePath := filepath.Join(exportPath, SQLiteFile)
	for _, stale := range []string{filePath, filePath + "-wal", filePath + "-shm"} {
		if err := os.Remove(stale); err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	adapter := sqlite.New()
	if err := adapter.Connect(ctx, "sqlite://"+filePath+"?_journal_mode=DELETE"); err != nil {
		return "", fmt.Errorf("failed to create SQLite database: %w", err)
	}
	defer adapter.Close()

	if _, err := loader.New(adapter, loader.Options{Quiet: true}).Load(ctx, tables); err != nil {
		return "", err
	}
	return filePath, nil
}

// GeneratedFiles lists every file name the exporters may write.
func GeneratedFiles() []string {
	var files []string
	for _, schema := range types.Schemas() {
		files = append(files, schema.FileName)
	}
	return append(files, JSONFile, SQLiteFile, ManifestFile)
}

// Clean removes generated files from dir and returns the ones it deleted.
func Clean(dir string) ([]string, error) {
	var removed []string
	for _, name := range GeneratedFiles() {
		path := filepath.Join(dir, name)
		err := os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
