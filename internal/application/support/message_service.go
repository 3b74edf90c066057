package support

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/identity"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/support"
)

// MessageService handles customer and guest support messages
type MessageService struct {
	messageRepo support.MessageRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo support.MessageRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ListFilter contains filtering options for the admin message list
type ListFilter struct {
	Page     int
	PageSize int
	Status   string
}

// Submit records a support inquiry. When userID is set the message is linked
// to the account and contact details come from it; guests supply their own.
func (s *MessageService) Submit(ctx context.Context, userID *uuid.UUID, req SubmitMessageRequest) (*MessageResponse, error) {
	name, email := req.Name, req.Email
	if userID != nil {
		user, err := s.userRepo.FindByID(ctx, *userID)
		if err != nil {
			return nil, err
		}
		name, email = user.Name, user.Email
	}

	message, err := support.NewMessage(userID, name, email, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("Support message submitted",
		zap.String("message_id", message.ID.String()),
		zap.Bool("guest", userID == nil))

	resp := ToMessageResponse(message)
	return &resp, nil
}

// ListMine returns the user's messages, newest first
func (s *MessageService) ListMine(ctx context.Context, userID uuid.UUID) ([]MessageResponse, error) {
	messages, err := s.messageRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}
	return responses, nil
}

// List returns messages across all senders for administrators
func (s *MessageService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[MessageResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	// "all" means no status filter
	if status := strings.ToLower(filter.Status); status != "" && status != "all" {
		if !support.MessageStatus(status).IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown message status")
		}
		domainFilter.Filters["status"] = status
	}

	messages, err := s.messageRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.messageRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}

	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Get returns a message for an administrator. Opening an unread message
// marks it read.
func (s *MessageService) Get(ctx context.Context, messageID uuid.UUID) (*MessageResponse, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.Status == support.MessageStatusUnread {
		message.MarkRead()
		if err := s.messageRepo.Save(ctx, message); err != nil {
			return nil, err
		}
	}

	resp := ToMessageResponse(message)
	return &resp, nil
}

// Respond records an admin reply and marks the message replied
func (s *MessageService) Respond(ctx context.Context, messageID uuid.UUID, req RespondRequest) (*MessageResponse, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if err := message.Respond(req.Response); err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("Support message answered",
		zap.String("message_id", messageID.String()))

	resp := ToMessageResponse(message)
	return &resp, nil
}

// Delete removes a message
func (s *MessageService) Delete(ctx context.Context, messageID uuid.UUID) error {
	if _, err := s.messageRepo.FindByID(ctx, messageID); err != nil {
		return err
	}
	return s.messageRepo.Delete(ctx, messageID)
}
