package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/pinnacle/erp/config"
)

// Schema version tracking:
// 1 - products and clients tables
// 2 - unique index on clients.cpf
const CurrentSchemaVersion = 2

const versionTable = "schema_version"

type migration struct {
	version  int
	sqlite   []string
	postgres []string
}

var migrations = []migration{
	{
		version: 1,
		sqlite: []string{
			`CREATE TABLE IF NOT EXISTS products (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				codigo_produto TEXT NOT NULL,
				cor TEXT NOT NULL DEFAULT '',
				descricao_produto TEXT NOT NULL,
				tamanho TEXT NOT NULL DEFAULT '',
				modelagem TEXT NOT NULL DEFAULT '',
				genero TEXT NOT NULL DEFAULT '',
				grupo TEXT NOT NULL DEFAULT '',
				subgrupo TEXT NOT NULL DEFAULT '',
				preco_custo REAL NOT NULL DEFAULT 0,
				preco_venda REAL NOT NULL DEFAULT 0,
				estoque INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE TABLE IF NOT EXISTS clients (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				nome TEXT NOT NULL,
				cpf TEXT NOT NULL,
				sexo TEXT NOT NULL DEFAULT '',
				nascimento TEXT,
				telefone TEXT NOT NULL DEFAULT '',
				email TEXT NOT NULL DEFAULT ''
			)`,
		},
		postgres: []string{
			`CREATE TABLE IF NOT EXISTS products (
				id BIGSERIAL PRIMARY KEY,
				codigo_produto TEXT NOT NULL,
				cor TEXT NOT NULL DEFAULT '',
				descricao_produto TEXT NOT NULL,
				tamanho TEXT NOT NULL DEFAULT '',
				modelagem TEXT NOT NULL DEFAULT '',
				genero TEXT NOT NULL DEFAULT '',
				grupo TEXT NOT NULL DEFAULT '',
				subgrupo TEXT NOT NULL DEFAULT '',
				preco_custo NUMERIC(12,2) NOT NULL DEFAULT 0,
				preco_venda NUMERIC(12,2) NOT NULL DEFAULT 0,
				estoque INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE TABLE IF NOT EXISTS clients (
				id BIGSERIAL PRIMARY KEY,
				nome TEXT NOT NULL,
				cpf TEXT NOT NULL,
				sexo TEXT NOT NULL DEFAULT '',
				nascimento TEXT,
				telefone TEXT NOT NULL DEFAULT '',
				email TEXT NOT NULL DEFAULT ''
			)`,
		},
	},
	{
		version:  2,
		sqlite:   []string{`CREATE UNIQUE INDEX IF NOT EXISTS clients_cpf_key ON clients (cpf)`},
		postgres: []string{`CREATE UNIQUE INDEX IF NOT EXISTS clients_cpf_key ON clients (cpf)`},
	},
}

// Initialize creates missing tables and applies pending schema versions.
// It is idempotent.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("failed to create schema_version: %w", err)
	}

	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := s.migrate(ctx, m); err != nil {
			return fmt.Errorf("migrate to v%d: %w", m.version, err)
		}
		s.log.Info("schema migrated", zap.Int("version", m.version))
	}
	return nil
}

// SchemaVersion returns the highest applied schema version, 0 for an empty store.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.sb.Select("COALESCE(MAX(version), 0)").From(versionTable).QueryRowContext(ctx).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("get schema version: %w", err)
	}
	return version, nil
}

func (s *Store) migrate(ctx context.Context, m migration) error {
	stmts := m.sqlite
	if s.driver == config.DriverPostgres {
		stmts = m.postgres
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if err := s.setVersion(ctx, tx, m.version); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) setVersion(ctx context.Context, tx *sql.Tx, version int) error {
	_, err := s.sb.Insert(versionTable).
		Columns("version").
		Values(version).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}
