// Package dbtest opens migrated SQLite databases for tests. Only test
// binaries import it, so the server never links the cgo SQLite driver.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/repository/dao"
)

// MemoryDSN is a private in-memory database with foreign keys enforced.
const MemoryDSN = "file::memory:?_foreign_keys=on"

// Open returns a migrated in-memory database closed when the test ends. It
// holds a single connection, so the database lives as long as the handle.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(MemoryDSN), &gorm.Config{
		Logger:         glogger.Default.LogMode(glogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dao.InitTables(db))

	return db
}
