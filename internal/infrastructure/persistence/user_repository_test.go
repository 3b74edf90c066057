package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/identity"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

func newUserDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&identity.User{}))
	return db
}

func TestGormUserRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a new user", func(t *testing.T) {
		repo := NewGormUserRepository(newUserDB(t))

		user, err := identity.NewUser("Ana", "ana@example.com", "s3cret-pass")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, user))

		found, err := repo.FindByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("duplicate email maps to already exists", func(t *testing.T) {
		repo := NewGormUserRepository(newUserDB(t))

		first, err := identity.NewUser("Ana", "ana@example.com", "s3cret-pass")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, first))

		second, err := identity.NewUser("Other Ana", "ana@example.com", "s3cret-pass")
		require.NoError(t, err)

		err = repo.Save(ctx, second)
		assert.Equal(t, shared.ErrAlreadyExists, err)
	})

	t.Run("duplicate name maps to already exists", func(t *testing.T) {
		repo := NewGormUserRepository(newUserDB(t))

		first, err := identity.NewUser("Ana", "ana@example.com", "s3cret-pass")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, first))

		second, err := identity.NewUser("Ana", "ana2@example.com", "s3cret-pass")
		require.NoError(t, err)

		err = repo.Save(ctx, second)
		assert.Equal(t, shared.ErrAlreadyExists, err)
	})
}
