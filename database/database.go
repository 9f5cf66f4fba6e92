// Package database opens and migrates the relational store. The
// returned *gorm.DB is injected into services explicitly; there is no
// package-level connection.
package database

import (
	"fmt"
	"time"

	"github.com/JinJinHistory/climb-hub/config"
	"github.com/JinJinHistory/climb-hub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres connection described by cfg and configures
// the pool. TranslateError lets gorm surface constraint violations as
// its sentinel errors, which the error taxonomy maps further.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the four tables and their constraints.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Brand{},
		&models.Gym{},
		&models.RouteUpdate{},
		&models.CrawlLog{},
	)
}

// Close releases the underlying connection pool. Called once at
// shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
