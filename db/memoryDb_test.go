package db

import (
	"fmt"
	"testing"

	"mentrex/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreUserLookups(t *testing.T) {
	store := NewMemStore()

	user := &models.User{Username: "sam", Email: "sam@example.com", PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(user))
	require.NotEqual(t, uuid.Nil, user.ID)

	byID, err := store.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "sam", byID.Username)

	byEmail, err := store.GetUserByEmail("sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byUsername, err := store.GetUserByUsername("sam")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	_, err = store.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreMessagesAscendingOrder(t *testing.T) {
	store := NewMemStore()
	userID := uuid.New()

	for i := 0; i < 4; i++ {
		require.NoError(t, store.CreateMessage(&models.Message{
			UserID:  userID,
			Type:    models.MessageTypeUser,
			Content: fmt.Sprintf("message %d", i),
			Mode:    models.ModeAsk,
		}))
	}

	messages, err := store.GetMessagesByUser(userID, DefaultMessageLimit)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	for i, msg := range messages {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
	}
}

func TestMemStoreMessagesTailWindow(t *testing.T) {
	store := NewMemStore()
	userID := uuid.New()

	for i := 0; i < 60; i++ {
		require.NoError(t, store.CreateMessage(&models.Message{
			UserID:  userID,
			Type:    models.MessageTypeUser,
			Content: fmt.Sprintf("message %d", i),
			Mode:    models.ModeAsk,
		}))
	}

	messages, err := store.GetMessagesByUser(userID, DefaultMessageLimit)
	require.NoError(t, err)
	require.Len(t, messages, DefaultMessageLimit)

	// The window keeps the most recent messages, still oldest first.
	assert.Equal(t, "message 10", messages[0].Content)
	assert.Equal(t, "message 59", messages[len(messages)-1].Content)
}

func TestMemStoreMessagesScopedToUser(t *testing.T) {
	store := NewMemStore()
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, store.CreateMessage(&models.Message{UserID: alice, Type: models.MessageTypeUser, Content: "alice asks", Mode: models.ModeAsk}))
	require.NoError(t, store.CreateMessage(&models.Message{UserID: bob, Type: models.MessageTypeUser, Content: "bob asks", Mode: models.ModeAsk}))

	messages, err := store.GetMessagesByUser(alice, DefaultMessageLimit)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "alice asks", messages[0].Content)
}

func TestMemStoreConversations(t *testing.T) {
	store := NewMemStore()
	userID := uuid.New()

	first := &models.Conversation{UserID: userID}
	require.NoError(t, store.CreateConversation(first))
	second := &models.Conversation{UserID: userID}
	require.NoError(t, store.CreateConversation(second))

	conversations, err := store.GetConversationsByUser(userID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	// Most recently updated first.
	assert.False(t, conversations[0].UpdatedAt.Before(conversations[1].UpdatedAt))

	found, err := store.GetConversationByID(userID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = store.GetConversationByID(uuid.New(), first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
