package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSqliteConnection opens the local session database. The file is created
// on first run next to the binary unless SESSION_DB_PATH says otherwise.
func NewSqliteConnection(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
