package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/pinnacle/erp/config"
	"github.com/pinnacle/erp/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var sqliteDrivers = []string{config.DriverSQLite3, config.DriverSQLite}

// createTestStore opens a fresh store in a temporary directory.
func createTestStore(t *testing.T, driver string) *Store {
	t.Helper()
	cfg := config.Database{Driver: driver, DSN: filepath.Join(t.TempDir(), "test.db")}
	s, err := Open(context.Background(), cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// forEachDriver runs fn once per SQLite driver.
func forEachDriver(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Helper()
	for _, driver := range sqliteDrivers {
		driver := driver
		t.Run(driver, func(t *testing.T) {
			fn(t, createTestStore(t, driver))
		})
	}
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func createTestProduct(code string) domain.Product {
	return domain.Product{
		Code:        code,
		Color:       domain.ColorPreta,
		Description: "Camisa",
		Size:        domain.SizeM,
		Fit:         domain.FitSlim,
		Gender:      domain.GenderMasculino,
		Group:       domain.GroupCamisaMC,
		Subgroup:    domain.SubgroupSlim,
		CostPrice:   decimal.NewFromFloat(10.0),
		SalePrice:   decimal.NewFromFloat(20.0),
		Stock:       5,
	}
}

func createTestClient(name, cpf string) domain.Client {
	return domain.Client{
		Name:  name,
		CPF:   cpf,
		Sex:   domain.SexFeminino,
		Phone: "11 99999-0000",
		Email: "cliente@example.com",
	}
}
