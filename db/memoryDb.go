package db

import (
	"slices"
	"sync"
	"time"

	"mentrex/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MemStore is an in-memory implementation of the user, message, and
// conversation repositories, used by tests.
type MemStore struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]*models.User
	messages      []*models.Message
	conversations map[uuid.UUID]*models.Conversation
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:         make(map[uuid.UUID]*models.User),
		conversations: make(map[uuid.UUID]*models.Conversation),
	}
}

func (s *MemStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *MemStore) GetUserByID(id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *user
	return &found, nil
}

func (s *MemStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateMessage(msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	stored := *msg
	s.messages = append(s.messages, &stored)
	return nil
}

func (s *MemStore) GetMessagesByUser(userID uuid.UUID, limit int) ([]*models.Message, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Insertion order is creation order, so the tail is the recent window.
	owned := lo.Filter(s.messages, func(msg *models.Message, _ int) bool {
		return msg.UserID == userID
	})
	if len(owned) > limit {
		owned = owned[len(owned)-limit:]
	}

	return lo.Map(owned, func(msg *models.Message, _ int) *models.Message {
		found := *msg
		return &found
	}), nil
}

func (s *MemStore) CreateConversation(conv *models.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	conv.ID = uuid.New()
	conv.CreatedAt = now
	conv.UpdatedAt = now
	stored := *conv
	s.conversations[conv.ID] = &stored
	return nil
}

func (s *MemStore) GetConversationsByUser(userID uuid.UUID) ([]*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var conversations []*models.Conversation
	for _, conv := range s.conversations {
		if conv.UserID == userID {
			found := *conv
			conversations = append(conversations, &found)
		}
	}

	slices.SortFunc(conversations, func(a, b *models.Conversation) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return conversations, nil
}

func (s *MemStore) GetConversationByID(userID, id uuid.UUID) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok || conv.UserID != userID {
		return nil, ErrNotFound
	}
	found := *conv
	return &found, nil
}
