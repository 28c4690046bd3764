package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/strideapp/stride/migrations"
	"gorm.io/gorm"
)

// Migrations are forward-only. Each NNNN_name.sql file runs once inside a
// transaction and is recorded in schema_migrations; files already recorded
// are never replayed.

var addColumnPattern = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+(\S+)\s+ADD\s+COLUMN\s+(\S+)\b`)

type migrationFile struct {
	version    int
	name       string
	statements []string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	if err := database.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	pending, err := readMigrationFiles()
	if err != nil {
		return err
	}

	applied := make([]string, 0)
	if err := database.Table("schema_migrations").Pluck("version", &applied).Error; err != nil {
		return fmt.Errorf("read applied versions: %w", err)
	}
	appliedSet := make(map[string]struct{}, len(applied))
	for _, version := range applied {
		appliedSet[version] = struct{}{}
	}

	for _, file := range pending {
		if _, done := appliedSet[strconv.Itoa(file.version)]; done {
			continue
		}
		if err := runMigration(database, file); err != nil {
			return fmt.Errorf("migration %s: %w", file.name, err)
		}
	}
	return nil
}

func readMigrationFiles() ([]migrationFile, error) {
	names, err := fs.Glob(migrations.Files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("glob embedded migrations: %w", err)
	}

	files := make([]migrationFile, 0, len(names))
	seen := make(map[int]string, len(names))
	for _, name := range names {
		prefix, _, found := strings.Cut(name, "_")
		if !found {
			continue
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		if earlier, dup := seen[version]; dup {
			return nil, fmt.Errorf("migration version %d defined by both %s and %s", version, earlier, name)
		}
		seen[version] = name

		raw, err := fs.ReadFile(migrations.Files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		statements := splitStatements(string(raw))
		if len(statements) == 0 {
			return nil, fmt.Errorf("migration %s holds no statements", name)
		}
		files = append(files, migrationFile{version: version, name: name, statements: statements})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].version < files[j].version })
	return files, nil
}

func runMigration(database *gorm.DB, file migrationFile) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range file.statements {
			// SQLite has no ADD COLUMN IF NOT EXISTS; skip columns that a
			// partially recorded earlier run already added.
			if column := addColumnPattern.FindStringSubmatch(statement); column != nil {
				present, err := columnExists(tx, trimIdentifier(column[1]), trimIdentifier(column[2]))
				if err != nil {
					return err
				}
				if present {
					continue
				}
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("exec %q: %w", statement, err)
			}
		}
		return tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			strconv.Itoa(file.version), file.name,
		).Error
	})
}

func splitStatements(raw string) []string {
	parts := strings.Split(raw, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

func columnExists(database *gorm.DB, table string, column string) (bool, error) {
	if table == "" || column == "" {
		return false, errors.New("malformed ALTER TABLE statement")
	}

	var columns []struct {
		Name string `gorm:"column:name"`
	}
	escaped := strings.ReplaceAll(table, `"`, `""`)
	if err := database.Raw(fmt.Sprintf(`PRAGMA table_info("%s")`, escaped)).Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("table_info %s: %w", table, err)
	}
	for _, existing := range columns {
		if strings.EqualFold(existing.Name, column) {
			return true, nil
		}
	}
	return false, nil
}

func trimIdentifier(identifier string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(identifier), "\"`[]"))
}
