// Package sqlitemigrate applies embedded SQL migration files to a SQLite
// database. Applied files are recorded in a schema_migrations table so
// every migration runs at most once.
package sqlitemigrate

import (
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const ledgerTable = "schema_migrations"

const (
	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

type migration struct {
	name string
	up   string
}

// Apply executes every pending .sql file under dir in lexicographic order.
// Each file runs inside its own transaction and is recorded on success, so
// a failed file leaves the ledger untouched and is retried next time.
func Apply(sqlDB *sql.DB, fsys fs.FS, dir string) error {
	if sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}

	migrations, err := loadMigrations(fsys, dir)
	if err != nil {
		return err
	}
	if err := ensureLedger(sqlDB); err != nil {
		return err
	}
	applied, err := appliedSet(sqlDB)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if _, done := applied[m.name]; done {
			continue
		}
		if err := applyOne(sqlDB, m); err != nil {
			return err
		}
	}
	return nil
}

func loadMigrations(fsys fs.FS, dir string) ([]migration, error) {
	root := strings.TrimSpace(dir)
	if root == "" {
		root = "."
	}

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	var migrations []migration
	for _, file := range files {
		key := file
		if root != "." {
			key = path.Join(root, file)
		}

		content, err := fs.ReadFile(fsys, path.Join(root, file))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", key, err)
		}
		up, err := upSection(string(content))
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", key, err)
		}
		migrations = append(migrations, migration{name: key, up: up})
	}
	return migrations, nil
}

func upSection(content string) (string, error) {
	start := strings.Index(content, upMarker)
	if start == -1 {
		return "", fmt.Errorf("missing %q section", upMarker)
	}
	section := content[start+len(upMarker):]
	if end := strings.Index(section, downMarker); end != -1 {
		section = section[:end]
	}
	if strings.TrimSpace(section) == "" {
		return "", fmt.Errorf("empty %q section", upMarker)
	}
	return section, nil
}

func ensureLedger(sqlDB *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS ` + ledgerTable + ` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`
	if _, err := sqlDB.Exec(ddl); err != nil {
		return fmt.Errorf("ensure migrations ledger: %w", err)
	}
	return nil
}

func appliedSet(sqlDB *sql.DB) (map[string]struct{}, error) {
	rows, err := sqlDB.Query("SELECT name FROM " + ledgerTable)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		applied[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applied migrations: %w", err)
	}
	return applied, nil
}

func applyOne(sqlDB *sql.DB, m migration) error {
	tx, err := sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.name, err)
	}
	if _, err := tx.Exec(m.up); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply migration %s: %w", m.name, err)
	}
	record := "INSERT INTO " + ledgerTable + " (name, applied_at) VALUES (?, ?)"
	if _, err := tx.Exec(record, m.name, time.Now().UTC().UnixMilli()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", m.name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", m.name, err)
	}
	return nil
}
