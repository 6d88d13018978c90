// Package gormdb is the gorm-backed persistence layer.
package gormdb

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres through gorm. Driver errors are translated so
// duplicate keys surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}
	return db, nil
}

// NewConfig is the gorm configuration shared by every dialect we open.
func NewConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}
