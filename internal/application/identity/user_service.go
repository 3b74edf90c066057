package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/identity"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// UserService handles administrative account operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// UserListFilter contains filtering options for listing accounts
type UserListFilter struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

// List retrieves accounts with filtering and pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) (*shared.Paginated[UserInfo], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, ToUserInfo(&users[i]))
	}

	result := shared.NewPaginated(infos, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Get retrieves an account by ID
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := ToUserInfo(user)
	return &info, nil
}

// Promote grants the admin role to an account
func (s *UserService) Promote(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Promote()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User promoted to admin", zap.String("user_id", userID.String()))

	info := ToUserInfo(user)
	return &info, nil
}

// Delete removes an account
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("User deleted", zap.String("user_id", userID.String()))
	return nil
}
