package support

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("guest submission has no user", func(t *testing.T) {
		m, err := NewMessage(nil, "Ana", "ana@x.com", "Do you ship to Alaska?")
		require.NoError(t, err)
		assert.Nil(t, m.UserID)
		assert.Equal(t, MessageStatusUnread, m.Status)
	})

	t.Run("lowercases email", func(t *testing.T) {
		m, err := NewMessage(nil, "Ana", "Ana@X.com", "hi")
		require.NoError(t, err)
		assert.Equal(t, "ana@x.com", m.Email)
	})

	t.Run("authenticated submission keeps user", func(t *testing.T) {
		userID := uuid.New()
		m, err := NewMessage(&userID, "Bob", "bob@x.com", "question")
		require.NoError(t, err)
		require.NotNil(t, m.UserID)
		assert.Equal(t, userID, *m.UserID)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := NewMessage(nil, "Ana", "ana@x.com", "   ")
		assert.Error(t, err)
	})

	t.Run("rejects bad email", func(t *testing.T) {
		_, err := NewMessage(nil, "Ana", "not-an-email", "hi")
		assert.Error(t, err)
	})
}

func TestMessageLifecycle(t *testing.T) {
	t.Run("mark read flips unread only", func(t *testing.T) {
		m, err := NewMessage(nil, "Ana", "ana@x.com", "hi")
		require.NoError(t, err)

		m.MarkRead()
		assert.Equal(t, MessageStatusRead, m.Status)

		require.NoError(t, m.Respond("We do!"))
		m.MarkRead()
		assert.Equal(t, MessageStatusReplied, m.Status)
	})

	t.Run("respond stamps time and status", func(t *testing.T) {
		m, err := NewMessage(nil, "Ana", "ana@x.com", "hi")
		require.NoError(t, err)

		require.NoError(t, m.Respond("Yes, overnight only."))
		assert.Equal(t, MessageStatusReplied, m.Status)
		assert.Equal(t, "Yes, overnight only.", m.Response)
		require.NotNil(t, m.RespondedAt)
	})

	t.Run("empty response rejected", func(t *testing.T) {
		m, err := NewMessage(nil, "Ana", "ana@x.com", "hi")
		require.NoError(t, err)
		assert.Error(t, m.Respond(""))
	})
}
