package support

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/support"
)

// SubmitMessageRequest contains the input for a support inquiry. Name and
// email are required for guests and ignored for logged-in users, whose
// account details are used instead.
type SubmitMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content" binding:"required"`
}

// RespondRequest contains an admin reply to a message
type RespondRequest struct {
	Response string `json:"response" binding:"required"`
}

// MessageResponse is the API representation of a support message
type MessageResponse struct {
	ID          uuid.UUID              `json:"id"`
	UserID      *uuid.UUID             `json:"user_id,omitempty"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Content     string                 `json:"content"`
	Status      support.MessageStatus  `json:"status"`
	Response    string                 `json:"response,omitempty"`
	RespondedAt *time.Time             `json:"responded_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ToMessageResponse converts a message entity to its API representation
func ToMessageResponse(m *support.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Email:       m.Email,
		Content:     m.Content,
		Status:      m.Status,
		Response:    m.Response,
		RespondedAt: m.RespondedAt,
		CreatedAt:   m.CreatedAt,
	}
}
