package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/pinnacle/erp/config"
)

// Store is the record store owning the products and clients tables. Every
// operation issues a single SQL statement and is its own atomic unit.
type Store struct {
	db     *sql.DB
	driver string
	sb     squirrel.StatementBuilderType
	log    *zap.Logger
}

// Open connects to the configured database and ensures the schema is current.
func Open(ctx context.Context, cfg config.Database, log *zap.Logger) (*Store, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.IsSQLite() {
		// SQLite only supports one writer at a time.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		if err := applyPragmas(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragmas: %w", err)
		}
	}

	s := New(db, cfg.Driver, log)
	if err := s.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already open database. The schema is not touched; call
// Initialize before use on a fresh database.
func New(db *sql.DB, driver string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if driver == config.DriverPostgres {
		placeholder = squirrel.Dollar
	}
	return &Store{
		db:     db,
		driver: driver,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(placeholder).RunWith(db),
		log:    log.Named("store"),
	}
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
