package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/identity"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/auth"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/config"
)

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

func newAuthService() (*AuthService, *MockUserRepository, *auth.JWTService, *auth.InMemoryTokenBlacklist) {
	userRepo := new(MockUserRepository)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-00",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "reptile-store-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	service := NewAuthService(userRepo, jwtService, blacklist, zap.NewNop())
	return service, userRepo, jwtService, blacklist
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer account", func(t *testing.T) {
		service, userRepo, _, _ := newAuthService()
		userRepo.On("ExistsByEmail", ctx, "ana@x.com").Return(false, nil)
		userRepo.On("ExistsByName", ctx, "Ana").Return(false, nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		info, err := service.Register(ctx, RegisterInput{
			Name:     "Ana",
			Email:    "ana@x.com",
			Password: "s3cretpass",
		})

		assert.NoError(t, err)
		assert.Equal(t, "ana@x.com", info.Email)
		assert.Equal(t, identity.RoleCustomer, info.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		service, userRepo, _, _ := newAuthService()
		userRepo.On("ExistsByEmail", ctx, "ana@x.com").Return(true, nil)

		_, err := service.Register(ctx, RegisterInput{
			Name:     "Ana",
			Email:    "ana@x.com",
			Password: "s3cretpass",
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		userRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("duplicate email detection is case insensitive", func(t *testing.T) {
		service, userRepo, _, _ := newAuthService()
		// NewUser lowercases; the uniqueness probe must use the stored form
		userRepo.On("ExistsByEmail", ctx, "ana@x.com").Return(true, nil)

		_, err := service.Register(ctx, RegisterInput{
			Name:     "Ana",
			Email:    "ANA@X.com",
			Password: "s3cretpass",
		})

		assert.Error(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("short password rejected", func(t *testing.T) {
		service, _, _, _ := newAuthService()

		_, err := service.Register(ctx, RegisterInput{
			Name:     "Ana",
			Email:    "ana@x.com",
			Password: "short",
		})

		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials yield tokens with role claim", func(t *testing.T) {
		service, userRepo, jwtService, _ := newAuthService()
		user, _ := identity.NewUser("Ana", "ana@x.com", "s3cretpass")
		userRepo.On("FindByEmail", ctx, "ana@x.com").Return(user, nil)

		result, err := service.Login(ctx, LoginInput{Email: "ana@x.com", Password: "s3cretpass"})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)

		claims, err := jwtService.ValidateAccessToken(result.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, string(identity.RoleCustomer), claims.Role)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		service, userRepo, _, _ := newAuthService()
		user, _ := identity.NewUser("Ana", "ana@x.com", "s3cretpass")
		userRepo.On("FindByEmail", ctx, "ana@x.com").Return(user, nil)
		userRepo.On("FindByEmail", ctx, "ghost@x.com").Return(nil, shared.ErrNotFound)

		_, errWrongPass := service.Login(ctx, LoginInput{Email: "ana@x.com", Password: "wrongpass1"})
		_, errUnknown := service.Login(ctx, LoginInput{Email: "ghost@x.com", Password: "whatever12"})

		var e1, e2 *shared.DomainError
		assert.ErrorAs(t, errWrongPass, &e1)
		assert.ErrorAs(t, errUnknown, &e2)
		assert.Equal(t, e1.Code, e2.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", e1.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a fresh pair and rotates the old token", func(t *testing.T) {
		service, userRepo, jwtService, blacklist := newAuthService()
		user, _ := identity.NewUser("Ana", "ana@x.com", "s3cretpass")
		userRepo.On("FindByEmail", ctx, "ana@x.com").Return(user, nil)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		login, err := service.Login(ctx, LoginInput{Email: "ana@x.com", Password: "s3cretpass"})
		assert.NoError(t, err)

		result, err := service.Refresh(ctx, RefreshInput{RefreshToken: login.RefreshToken})
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)

		// The used refresh token is revoked and cannot be replayed
		oldClaims, err := jwtService.ValidateRefreshToken(login.RefreshToken)
		assert.NoError(t, err)
		revoked, err := blacklist.IsBlacklisted(ctx, oldClaims.ID)
		assert.NoError(t, err)
		assert.True(t, revoked)

		_, err = service.Refresh(ctx, RefreshInput{RefreshToken: login.RefreshToken})
		assert.Error(t, err)
	})

	t.Run("access token is not accepted for refresh", func(t *testing.T) {
		service, userRepo, _, _ := newAuthService()
		user, _ := identity.NewUser("Ana", "ana@x.com", "s3cretpass")
		userRepo.On("FindByEmail", ctx, "ana@x.com").Return(user, nil)

		login, err := service.Login(ctx, LoginInput{Email: "ana@x.com", Password: "s3cretpass"})
		assert.NoError(t, err)

		_, err = service.Refresh(ctx, RefreshInput{RefreshToken: login.AccessToken})
		assert.Error(t, err)
	})

	t.Run("deleted account cannot refresh", func(t *testing.T) {
		service, userRepo, _, _ := newAuthService()
		user, _ := identity.NewUser("Ana", "ana@x.com", "s3cretpass")
		userRepo.On("FindByEmail", ctx, "ana@x.com").Return(user, nil)
		userRepo.On("FindByID", ctx, user.ID).Return(nil, shared.ErrNotFound)

		login, err := service.Login(ctx, LoginInput{Email: "ana@x.com", Password: "s3cretpass"})
		assert.NoError(t, err)

		_, err = service.Refresh(ctx, RefreshInput{RefreshToken: login.RefreshToken})
		assert.Error(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes presented tokens", func(t *testing.T) {
		service, _, _, blacklist := newAuthService()

		err := service.Logout(ctx, LogoutInput{
			AccessJTI:  "access-jti",
			AccessTTL:  10 * time.Minute,
			RefreshJTI: "refresh-jti",
			RefreshTTL: time.Hour,
		})

		assert.NoError(t, err)
		revoked, _ := blacklist.IsBlacklisted(ctx, "access-jti")
		assert.True(t, revoked)
		revoked, _ = blacklist.IsBlacklisted(ctx, "refresh-jti")
		assert.True(t, revoked)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the account", func(t *testing.T) {
		service, userRepo, _, _ := newAuthService()
		user, _ := identity.NewUser("Ana", "ana@x.com", "s3cretpass")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		info, err := service.Me(ctx, user.ID)

		assert.NoError(t, err)
		assert.Equal(t, user.Email, info.Email)
	})

	t.Run("missing account", func(t *testing.T) {
		service, userRepo, _, _ := newAuthService()
		id := uuid.New()
		userRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Me(ctx, id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
