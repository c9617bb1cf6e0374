package testutils

import (
	"fmt"
	"testing"

	"maintenance-portal-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupSQLiteDB opens an isolated in-memory database with the full schema
// migrated. Each call gets its own database, so tests never share state.
func SetupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Keep the shared-cache memory database alive for the whole test
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(database.AllModels()...), "failed to migrate schema")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
