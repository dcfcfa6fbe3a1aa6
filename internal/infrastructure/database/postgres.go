package database

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=pagamentos port=5432 sslmode=disable"

// ConnectPostgres opens the process-wide connection pool. It is created once
// at startup and shared by every use case and activity.
func ConnectPostgres() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[payment][database] failed connecting to postgres: %v", err)
	}
	log.Printf("[payment][database] postgres connection established")
	return db
}
