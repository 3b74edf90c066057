package support

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// MessageStatus tracks where a support message is in its lifecycle
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// IsValid reports whether the status is a known value
func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusUnread, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}

// Message is a support inquiry. UserID is nil for guest submissions, which
// are keyed by email only.
type Message struct {
	shared.BaseEntity
	UserID      *uuid.UUID    `gorm:"type:uuid;index" json:"user_id"`
	Name        string        `gorm:"type:varchar(100);not null" json:"name"`
	Email       string        `gorm:"type:varchar(255);not null;index" json:"email"`
	Content     string        `gorm:"type:text;not null" json:"content"`
	Status      MessageStatus `gorm:"type:varchar(20);not null;default:'unread'" json:"status"`
	Response    string        `gorm:"type:text" json:"response"`
	RespondedAt *time.Time    `json:"responded_at"`
}

// TableName returns the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// NewMessage creates an unread support message
func NewMessage(userID *uuid.UUID, name, email, content string) (*Message, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	content = strings.TrimSpace(content)

	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if content == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Message content cannot be empty")
	}

	return &Message{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Name:       name,
		Email:      email,
		Content:    content,
		Status:     MessageStatusUnread,
	}, nil
}

// MarkRead transitions an unread message to read. Reading a message that has
// already been read or replied to is a no-op.
func (m *Message) MarkRead() {
	if m.Status == MessageStatusUnread {
		m.Status = MessageStatusRead
		m.UpdatedAt = time.Now()
	}
}

// Respond records an admin reply and stamps the response time
func (m *Message) Respond(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return shared.NewDomainError("INVALID_INPUT", "Response cannot be empty")
	}
	now := time.Now()
	m.Response = text
	m.RespondedAt = &now
	m.Status = MessageStatusReplied
	m.UpdatedAt = now
	return nil
}
