package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/handoverhq/tenancy-stats/internal/domain"
)

// initSQLiteTestDB opens a private in-memory database with a migrated schema
func initSQLiteTestDB(t *testing.T) (Store, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a shared in-memory database lives as long as one connection is open
	require.NoError(t, ConfigureConnectionPool(db, 1, 1, 0, 0))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, Migrate(db))
	return NewPGStore(db), db
}

// TestSQLiteStore runs all store tests against SQLite
func TestSQLiteStore(t *testing.T) {
	RunStoreTests(t, initSQLiteTestDB)
}

func TestLoadSnapshot_Unavailable(t *testing.T) {
	store, db := initSQLiteTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	snapshot, err := store.LoadSnapshot(context.Background())
	assert.Nil(t, snapshot)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSnapshotUnavailable)
}

func TestConfigureConnectionPool(t *testing.T) {
	_, db := initSQLiteTestDB(t)

	require.NoError(t, ConfigureConnectionPool(db, 4, 8, 0, 0))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 4, sqlDB.Stats().MaxOpenConnections)
}
