package support

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/identity"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/support"
)

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*support.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*support.Message), args.Error(1)
}

func (m *MockMessageRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]support.Message, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]support.Message), args.Error(1)
}

func (m *MockMessageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]support.Message, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]support.Message), args.Error(1)
}

func (m *MockMessageRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) Save(ctx context.Context, message *support.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newMessageService() (*MessageService, *MockMessageRepository, *MockUserRepository) {
	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	service := NewMessageService(messageRepo, userRepo, zap.NewNop())
	return service, messageRepo, userRepo
}

func TestMessageService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("guest submission uses supplied contact details", func(t *testing.T) {
		service, messageRepo, userRepo := newMessageService()
		messageRepo.On("Save", ctx, mock.AnythingOfType("*support.Message")).Return(nil)

		resp, err := service.Submit(ctx, nil, SubmitMessageRequest{
			Name:    "Guest Visitor",
			Email:   "guest@example.com",
			Content: "Do you ship to Canada?",
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.UserID)
		assert.Equal(t, "guest@example.com", resp.Email)
		assert.Equal(t, support.MessageStatusUnread, resp.Status)
		userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("account submission overrides contact details", func(t *testing.T) {
		service, messageRepo, userRepo := newMessageService()
		user, _ := identity.NewUser("Ana", "ana@x.com", "s3cretpass")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		messageRepo.On("Save", ctx, mock.AnythingOfType("*support.Message")).Return(nil)

		resp, err := service.Submit(ctx, &user.ID, SubmitMessageRequest{
			Name:    "Spoofed",
			Email:   "spoof@example.com",
			Content: "Care sheet question",
		})

		assert.NoError(t, err)
		assert.Equal(t, &user.ID, resp.UserID)
		assert.Equal(t, "ana@x.com", resp.Email)
		assert.Equal(t, "Ana", resp.Name)
	})

	t.Run("guest without email is rejected", func(t *testing.T) {
		service, _, _ := newMessageService()

		_, err := service.Submit(ctx, nil, SubmitMessageRequest{
			Name:    "Guest",
			Content: "hello",
		})

		assert.Error(t, err)
	})
}

func TestMessageService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("opening an unread message marks it read", func(t *testing.T) {
		service, messageRepo, _ := newMessageService()
		message, _ := support.NewMessage(nil, "Guest", "guest@example.com", "hi")
		messageRepo.On("FindByID", ctx, message.ID).Return(message, nil)
		messageRepo.On("Save", ctx, message).Return(nil)

		resp, err := service.Get(ctx, message.ID)

		assert.NoError(t, err)
		assert.Equal(t, support.MessageStatusRead, resp.Status)
		messageRepo.AssertExpectations(t)
	})

	t.Run("opening a replied message does not regress its status", func(t *testing.T) {
		service, messageRepo, _ := newMessageService()
		message, _ := support.NewMessage(nil, "Guest", "guest@example.com", "hi")
		_ = message.Respond("We ship Mondays")
		messageRepo.On("FindByID", ctx, message.ID).Return(message, nil)

		resp, err := service.Get(ctx, message.ID)

		assert.NoError(t, err)
		assert.Equal(t, support.MessageStatusReplied, resp.Status)
		messageRepo.AssertNotCalled(t, "Save", ctx, message)
	})
}

func TestMessageService_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("records the reply with a timestamp", func(t *testing.T) {
		service, messageRepo, _ := newMessageService()
		message, _ := support.NewMessage(nil, "Guest", "guest@example.com", "hi")
		messageRepo.On("FindByID", ctx, message.ID).Return(message, nil)
		messageRepo.On("Save", ctx, message).Return(nil)

		resp, err := service.Respond(ctx, message.ID, RespondRequest{Response: "We ship Mondays"})

		assert.NoError(t, err)
		assert.Equal(t, support.MessageStatusReplied, resp.Status)
		assert.Equal(t, "We ship Mondays", resp.Response)
		assert.NotNil(t, resp.RespondedAt)
	})

	t.Run("empty reply is rejected", func(t *testing.T) {
		service, messageRepo, _ := newMessageService()
		message, _ := support.NewMessage(nil, "Guest", "guest@example.com", "hi")
		messageRepo.On("FindByID", ctx, message.ID).Return(message, nil)

		_, err := service.Respond(ctx, message.ID, RespondRequest{Response: "   "})

		assert.Error(t, err)
	})
}

func TestMessageService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by status", func(t *testing.T) {
		service, messageRepo, _ := newMessageService()
		message, _ := support.NewMessage(nil, "Guest", "guest@example.com", "hi")
		messageRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "unread"
		})).Return([]support.Message{*message}, nil)
		messageRepo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

		result, err := service.List(ctx, ListFilter{Status: "unread"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("all returns every status", func(t *testing.T) {
		service, messageRepo, _ := newMessageService()
		message, _ := support.NewMessage(nil, "Guest", "guest@example.com", "hi")
		messageRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			_, filtered := f.Filters["status"]
			return !filtered
		})).Return([]support.Message{*message}, nil)
		messageRepo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

		result, err := service.List(ctx, ListFilter{Status: "All"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		service, _, _ := newMessageService()

		_, err := service.List(ctx, ListFilter{Status: "archived"})

		assert.Error(t, err)
	})
}
