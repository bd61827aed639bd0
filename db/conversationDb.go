package db

import (
	"errors"
	"fmt"

	"mentrex/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepository interface {
	CreateConversation(conv *models.Conversation) error
	// GetConversationsByUser returns the caller's conversations, most
	// recently updated first.
	GetConversationsByUser(userID uuid.UUID) ([]*models.Conversation, error)
	GetConversationByID(userID, id uuid.UUID) (*models.Conversation, error)
}

type GormConversationRepository struct {
	db *gorm.DB
}

func NewGormConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{db: db}
}

func (r *GormConversationRepository) CreateConversation(conv *models.Conversation) error {
	conv.ID = uuid.New()
	if err := r.db.Create(conv).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (r *GormConversationRepository) GetConversationsByUser(userID uuid.UUID) ([]*models.Conversation, error) {
	var conversations []*models.Conversation
	err := r.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	return conversations, nil
}

func (r *GormConversationRepository) GetConversationByID(userID, id uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.First(&conv, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &conv, nil
}
