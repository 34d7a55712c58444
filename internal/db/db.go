package db

import (
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres using DATABASE_URL.
func Open() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConfigurePool applies connection pool limits to the underlying sql.DB.
func ConfigurePool(conn *gorm.DB, maxOpen, maxIdle, maxLifetimeSeconds, maxIdleTimeSeconds int) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(maxIdleTimeSeconds) * time.Second)
	return nil
}

// Migrate runs GORM auto-migrations for the core tables.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	if err := conn.AutoMigrate(
		&Game{},
		&Membership{},
		&Word{},
		&Assignment{},
		&Elimination{},
	); err != nil {
		return err
	}
	log.Println("database migration complete")
	return nil
}
