package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

// InitORM opens the GORM handle used by the user directory. Postgres in
// normal operation; DB_DRIVER=sqlite switches to a local file so the server
// can run without a Postgres container during development.
func InitORM(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "flightdeck.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	} else {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	PgDB = db
	return db, nil
}
