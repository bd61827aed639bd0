package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	service := NewSessionService("test-secret")
	userID := uuid.New()

	token, err := service.IssueToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	service := NewSessionService("test-secret")

	_, err := service.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionService("secret-one")
	verifier := NewSessionService("secret-two")

	token, err := issuer.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}
