package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pinnacle/erp/config"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	for _, driver := range sqliteDrivers {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.db")

			s, err := Open(context.Background(), config.Database{Driver: driver, DSN: path}, nil)
			require.NoError(t, err)
			defer s.Close()

			_, err = os.Stat(path)
			assert.NoError(t, err, "database file was not created")

			version, err := s.SchemaVersion(context.Background())
			require.NoError(t, err)
			assert.Equal(t, CurrentSchemaVersion, version)
		})
	}
}

func TestOpen_Idempotent(t *testing.T) {
	ctx := context.Background()
	cfg := config.Database{Driver: config.DriverSQLite3, DSN: filepath.Join(t.TempDir(), "test.db")}

	for i := 0; i < 3; i++ {
		s, err := Open(ctx, cfg, zap.NewNop())
		require.NoError(t, err, "Open() iteration %d", i)
		require.NoError(t, s.Close())
	}

	s, err := Open(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	for _, table := range []string{"products", "clients", "schema_version"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		assert.NoError(t, err, "table %q not found after idempotent opens", table)
	}

	// Each version is recorded exactly once.
	var rows int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&rows))
	assert.Equal(t, CurrentSchemaVersion, rows)
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open(context.Background(), config.Database{Driver: config.DriverSQLite3, DSN: "/nonexistent/dir/test.db"}, nil)
	assert.Error(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Database{Driver: "oracle", DSN: "x"}, nil)
	assert.ErrorContains(t, err, "failed to open database")
}

func TestInitialize_UpgradesFromV1(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t, config.DriverSQLite3)

	// Roll the store back to the first schema version.
	_, err := s.DB().Exec("DROP INDEX clients_cpf_key")
	require.NoError(t, err)
	_, err = s.DB().Exec("DELETE FROM schema_version WHERE version = 2")
	require.NoError(t, err)

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, version)

	require.NoError(t, s.Initialize(ctx))

	version, err = s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	var name string
	err = s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='index' AND name='clients_cpf_key'").Scan(&name)
	assert.NoError(t, err)
}

func TestInitialize_FailsOnDuplicateCPFsFromV1(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t, config.DriverSQLite3)

	_, err := s.DB().Exec("DROP INDEX clients_cpf_key")
	require.NoError(t, err)
	_, err = s.DB().Exec("DELETE FROM schema_version WHERE version = 2")
	require.NoError(t, err)

	_, err = s.InsertClient(ctx, createTestClient("Ana", "111"))
	require.NoError(t, err)
	_, err = s.InsertClient(ctx, createTestClient("Bia", "111"))
	require.NoError(t, err)

	err = s.Initialize(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate to v2")

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Close())
}
