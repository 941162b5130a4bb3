package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Orders and expenses collections",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS orders (
					id TEXT PRIMARY KEY,
					date TEXT NOT NULL,
					customer_name TEXT NOT NULL DEFAULT '',
					phone TEXT NOT NULL DEFAULT '',
					address TEXT NOT NULL DEFAULT '',
					flavors TEXT NOT NULL DEFAULT '{}',
					delivery_fee REAL NOT NULL DEFAULT 0,
					discount REAL NOT NULL DEFAULT 0,
					total REAL NOT NULL DEFAULT 0,
					created_at INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_orders_date ON orders(date)`,

				`CREATE TABLE IF NOT EXISTS expenses (
					id TEXT PRIMARY KEY,
					date TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					author TEXT NOT NULL DEFAULT '',
					amount REAL NOT NULL DEFAULT 0,
					created_at INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_expenses_date ON expenses(date)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Pricing collections: products and raw materials",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS products (
					id TEXT PRIMARY KEY,
					slug TEXT UNIQUE NOT NULL,
					name TEXT NOT NULL,
					price REAL NOT NULL DEFAULT 0,
					cost_price REAL NOT NULL DEFAULT 0,
					promo_cost REAL NOT NULL DEFAULT 0
				)`,

				`CREATE TABLE IF NOT EXISTS raw_materials (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					unit TEXT NOT NULL DEFAULT '',
					price REAL NOT NULL DEFAULT 0,
					promo_price REAL NOT NULL DEFAULT 0,
					yield INTEGER NOT NULL DEFAULT 1,
					cost_per_unit REAL NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_raw_materials_name ON raw_materials(name COLLATE NOCASE)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
			m.Version, m.Description,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Info("applied migration", "version", m.Version, "description", m.Description)
	}

	final, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}
	if final != ExpectedSchemaVersion {
		return fmt.Errorf("schema version %d after migration, expected %d", final, ExpectedSchemaVersion)
	}
	return nil
}

func (s *SQLiteStorage) schemaVersion(ctx context.Context) (int, error) {
	var version sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}
