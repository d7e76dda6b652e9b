package database

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Migrate applies pending .up.sql files from dir in lexical order.
// Applied versions are tracked in schema_migrations.
func Migrate(ctx context.Context, db PgxIface, dir string) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read migrations dir %s: %w", dir, err)
	}

	var upMigrations []string
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".up.sql") {
			upMigrations = append(upMigrations, file.Name())
		}
	}
	sort.Strings(upMigrations)

	for _, migration := range upMigrations {
		var exists bool
		err := db.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)",
			migration,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", migration, err)
		}
		if exists {
			continue
		}

		sqlBytes, err := os.ReadFile(dir + "/" + migration)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", migration, err)
		}

		if _, err := db.Exec(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", migration, err)
		}

		if _, err := db.Exec(ctx,
			"INSERT INTO schema_migrations (version) VALUES ($1)", migration,
		); err != nil {
			return fmt.Errorf("record migration %s: %w", migration, err)
		}
	}

	return nil
}
