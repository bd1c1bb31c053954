package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase establishes the ledger database connection.
//
// When DATABASE_URL is set it connects to PostgreSQL. Otherwise it opens an
// in-memory SQLite database, so a process restart discards all state and the
// demo seed is recreated on the next boot.
func ConnectDatabase() error {
	databaseURL := os.Getenv("DATABASE_URL")

	var err error
	if databaseURL != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		log.Println("DATABASE_URL not set, using in-memory SQLite database")
		DB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
		if err == nil {
			// One connection serializes every read-check-then-write
			// workflow (wallet debit, delivery assignment) and keeps the
			// shared in-memory database from being dropped between requests.
			sqlDB, dbErr := DB.DB()
			if dbErr != nil {
				return fmt.Errorf("failed to access database pool: %w", dbErr)
			}
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the database instance. Tests use this to point the handlers
// at a throwaway in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}
