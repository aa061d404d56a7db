package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const ManifestFile = "manifest.yaml"

type Manifest struct {
	DatasetID string          `yaml:"dataset_id"`
	Seed      uint64          `yaml:"seed"`
	Format    string          `yaml:"format"`
	Tables    []ManifestTable `yaml:"tables"`
}

type ManifestTable struct {
	Name    string   `yaml:"name"`
	File    string   `yaml:"file,omitempty"`
	Rows    int      `yaml:"rows"`
	Columns []string `yaml:"columns"`
}

// NewManifest describes a written dataset. The dataset id is derived from the
// seed and row counts, so identical runs produce identical manifests.
func NewManifest(seed uint64, format string, tables []types.Table) Manifest {
	m := Manifest{Seed: seed, Format: format}

	key := []string{fmt.Sprintf("seed=%d", seed)}
	for _, table := range tables {
		mt := ManifestTable{
			Name:    table.Name,
			Rows:    len(table.Rows),
			Columns: table.Header(),
		}
		if format == FormatCSV {
			mt.File = table.FileName
		}
		m.Tables = append(m.Tables, mt)
		key = append(key, fmt.Sprintf("%s=%d", table.Name, len(table.Rows)))
	}

	m.DatasetID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(key, ";"))).String()
	return m
}

func WriteManifest(dir string, m Manifest) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
