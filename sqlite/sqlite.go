// Package sqlite provides SQLite-based storage implementations for locrecipe services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
// List and map fields are stored as JSON text.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recipes (
			id TEXT PRIMARY KEY,
			source_url TEXT NOT NULL UNIQUE,
			canonical_url TEXT NOT NULL DEFAULT '',
			host TEXT NOT NULL DEFAULT '',
			site_name TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			total_time INTEGER,
			cook_time INTEGER,
			prep_time INTEGER,
			yields TEXT NOT NULL DEFAULT '',
			ingredients TEXT NOT NULL DEFAULT '[]',
			ingredient_groups TEXT NOT NULL DEFAULT '[]',
			instructions TEXT NOT NULL DEFAULT '',
			instructions_list TEXT NOT NULL DEFAULT '[]',
			nutrients TEXT NOT NULL DEFAULT '{}',
			equipment TEXT NOT NULL DEFAULT '[]',
			ratings REAL,
			ratings_count INTEGER,
			cuisine TEXT NOT NULL DEFAULT '',
			cooking_method TEXT NOT NULL DEFAULT '',
			keywords TEXT NOT NULL DEFAULT '[]',
			dietary_restrictions TEXT NOT NULL DEFAULT '[]',
			content_hash TEXT NOT NULL DEFAULT '',
			scraped_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_recipes_host ON recipes(host);
	`

	_, err := db.db.Exec(schema)
	return err
}
