// Package storage provides an in-memory SQLite inventory backend.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/grocer/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var _ service.Inventory = (*SQLiteStorage)(nil)

// Argument errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
)

// SQLiteStorage implements service.Inventory on a private in-memory SQLite database.
// The database lives as long as the storage and is never written to disk.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens a fresh in-memory database and applies the schema.
func NewSQLiteStorage(ctx context.Context) (*SQLiteStorage, error) {
	if err := requireContext(ctx); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so keep exactly one alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStorage{db: db}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection, discarding its contents.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func requireContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, field)
	}
	return nil
}
