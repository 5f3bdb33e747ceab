package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB opens the local store file. There is no server database in this
// app; everything persists into a single SQLite file next to the binary.
func ConnectDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "glowbook.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("Failed to open local store")
	}

	DB = db
}
