package db

import (
	"errors"
	"fmt"

	"mentrex/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound is returned by lookup methods when no record matches.
var ErrNotFound = errors.New("record not found")

func Connect(databaseURL string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Conversation{}, &models.Message{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return gdb, nil
}
