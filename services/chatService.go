package services

import (
	"context"
	"fmt"
	"log"

	"mentrex/db"
	"mentrex/models"
	"mentrex/services/assistant"

	"github.com/google/uuid"
)

// ChatService drives the three AI modes. Each operation persists the user
// message, obtains the normalized assistant result, and persists the paired
// AI message. The assistant never fails, so once the user message is stored
// the AI message is always written too and history stays pairwise
// consistent.
type ChatService struct {
	messages  db.MessageRepository
	assistant *assistant.Service
}

func NewChatService(messages db.MessageRepository, assistantService *assistant.Service) *ChatService {
	return &ChatService{
		messages:  messages,
		assistant: assistantService,
	}
}

func (s *ChatService) Ask(ctx context.Context, userID uuid.UUID, question string) (*models.MessagePair, error) {
	log.Printf("[INFO] Starting ask for user %s", userID)

	userMessage := &models.Message{
		UserID:  userID,
		Type:    models.MessageTypeUser,
		Content: question,
		Mode:    models.ModeAsk,
	}
	if err := s.messages.CreateMessage(userMessage); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	answer := s.assistant.Answer(ctx, question)

	aiMessage := &models.Message{
		UserID:  userID,
		Type:    models.MessageTypeAI,
		Content: answer,
		Mode:    models.ModeAsk,
	}
	if err := s.messages.CreateMessage(aiMessage); err != nil {
		return nil, fmt.Errorf("failed to store AI message: %w", err)
	}

	return &models.MessagePair{UserMessage: userMessage, AIMessage: aiMessage}, nil
}

func (s *ChatService) Summarize(ctx context.Context, userID uuid.UUID, text string) (*models.MessagePair, error) {
	log.Printf("[INFO] Starting summarize for user %s", userID)

	userMessage := &models.Message{
		UserID:  userID,
		Type:    models.MessageTypeUser,
		Content: text,
		Mode:    models.ModeSummarize,
	}
	if err := s.messages.CreateMessage(userMessage); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	summaryPoints := s.assistant.Summarize(ctx, text)

	aiMessage := &models.Message{
		UserID:   userID,
		Type:     models.MessageTypeAI,
		Content:  "Here's your summary:",
		Mode:     models.ModeSummarize,
		Metadata: &models.MessageMetadata{SummaryPoints: summaryPoints},
	}
	if err := s.messages.CreateMessage(aiMessage); err != nil {
		return nil, fmt.Errorf("failed to store AI message: %w", err)
	}

	return &models.MessagePair{UserMessage: userMessage, AIMessage: aiMessage}, nil
}

func (s *ChatService) GenerateMCQs(ctx context.Context, userID uuid.UUID, topic string, count int) (*models.MessagePair, error) {
	log.Printf("[INFO] Starting MCQ generation for user %s", userID)

	userMessage := &models.Message{
		UserID:  userID,
		Type:    models.MessageTypeUser,
		Content: fmt.Sprintf("Generate %d MCQs on %s", count, topic),
		Mode:    models.ModeMCQ,
	}
	if err := s.messages.CreateMessage(userMessage); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	mcqs := s.assistant.GenerateMCQs(ctx, topic, count)

	aiMessage := &models.Message{
		UserID:   userID,
		Type:     models.MessageTypeAI,
		Content:  fmt.Sprintf("Here are %d MCQs on %s:", len(mcqs), topic),
		Mode:     models.ModeMCQ,
		Metadata: &models.MessageMetadata{MCQs: mcqs},
	}
	if err := s.messages.CreateMessage(aiMessage); err != nil {
		return nil, fmt.Errorf("failed to store AI message: %w", err)
	}

	return &models.MessagePair{UserMessage: userMessage, AIMessage: aiMessage}, nil
}

// History returns the caller's most recent messages, oldest first.
func (s *ChatService) History(userID uuid.UUID) ([]*models.Message, error) {
	messages, err := s.messages.GetMessagesByUser(userID, db.DefaultMessageLimit)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch history for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return messages, nil
}
