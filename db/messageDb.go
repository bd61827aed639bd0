package db

import (
	"fmt"
	"slices"

	"mentrex/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMessageLimit is the history window returned when no explicit limit
// is given: the most recent 50 messages, oldest first.
const DefaultMessageLimit = 50

type MessageRepository interface {
	CreateMessage(msg *models.Message) error
	// GetMessagesByUser returns the caller's most recent messages in
	// ascending creation order, capped at limit.
	GetMessagesByUser(userID uuid.UUID, limit int) ([]*models.Message, error)
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) CreateMessage(msg *models.Message) error {
	msg.ID = uuid.New()
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *GormMessageRepository) GetMessagesByUser(userID uuid.UUID, limit int) ([]*models.Message, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	var messages []*models.Message
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	// The query fetches the tail window newest-first; history reads oldest-first.
	slices.Reverse(messages)
	return messages, nil
}
