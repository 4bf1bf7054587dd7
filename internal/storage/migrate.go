package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type migrationDirection string

const (
	directionUp   migrationDirection = ".up.sql"
	directionDown migrationDirection = ".down.sql"
)

// MigrateUp applies every up migration in filename order, each inside its
// own transaction.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, directionUp)
}

// MigrateDown rolls the schema back, applying down migrations in reverse
// filename order.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, directionDown)
}

func runMigrations(ctx context.Context, db *sql.DB, dir migrationDirection) error {
	names, err := fs.Glob(migrationFS, "migrations/*"+string(dir))
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	if dir == directionDown {
		for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
			names[i], names[j] = names[j], names[i]
		}
	}
	for _, name := range names {
		if err := applyMigration(ctx, db, name); err != nil {
			return fmt.Errorf("migration %s: %w", strings.TrimPrefix(name, "migrations/"), err)
		}
	}
	return nil
}

// applyMigration runs one migration file inside a transaction so a failing
// statement leaves the schema untouched.
func applyMigration(ctx context.Context, db *sql.DB, name string) error {
	script, err := migrationFS.ReadFile(name)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, string(script)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
