package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	domainRepo "github.com/fleetdesk/fleetdesk-api/internal/domain/repository"
	"github.com/fleetdesk/fleetdesk-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

// sqlRecorder captures every statement gorm renders so tests can assert on
// the generated SQL without a live database.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func openDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, Logger: rec})
	require.NoError(t, err)
	return db, rec
}

func TestVehicleListSearch(t *testing.T) {
	t.Run("searches number, name and serial", func(t *testing.T) {
		db, rec := openDryRunDB(t)
		repo := NewVehicleRepository(db)

		_, _, err := repo.List(context.Background(), &domainRepo.VehicleFilter{Search: "ABC123"}, pagination.Default())
		require.NoError(t, err)

		rendered := strings.Join(rec.statements, "\n")
		assert.Contains(t, rendered, "number ILIKE")
		assert.Contains(t, rendered, "name ILIKE")
		assert.Contains(t, rendered, "serial_number ILIKE")
		assert.Contains(t, rendered, "%ABC123%")
	})

	t.Run("retries with spaces stripped when the plain pass matches nothing", func(t *testing.T) {
		db, rec := openDryRunDB(t)
		repo := NewVehicleRepository(db)

		// dry-run counts always come back zero, which is exactly the
		// no-match case the looser pass exists for
		_, _, err := repo.List(context.Background(), &domainRepo.VehicleFilter{Search: "ABC 123"}, pagination.Default())
		require.NoError(t, err)

		rendered := strings.Join(rec.statements, "\n")
		assert.Contains(t, rendered, "REPLACE(number, ' ', '') ILIKE")
		assert.Contains(t, rendered, "REPLACE(name, ' ', '') ILIKE")
		assert.Contains(t, rendered, "REPLACE(COALESCE(serial_number, ''), ' ', '') ILIKE")
		assert.Contains(t, rendered, "%ABC123%")
	})

	t.Run("does not retry without a search term", func(t *testing.T) {
		db, rec := openDryRunDB(t)
		repo := NewVehicleRepository(db)

		_, _, err := repo.List(context.Background(), &domainRepo.VehicleFilter{}, pagination.Default())
		require.NoError(t, err)

		assert.NotContains(t, strings.Join(rec.statements, "\n"), "REPLACE")
	})
}
