package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/support"
)

// GormMessageRepository implements MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// FindByID finds a message by ID
func (r *GormMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*support.Message, error) {
	var message support.Message
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// FindByUserID finds a user's messages, newest first
func (r *GormMessageRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]support.Message, error) {
	var messages []support.Message
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// FindAll finds messages matching the filter
func (r *GormMessageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]support.Message, error) {
	var messages []support.Message
	query := applyFilter(r.db.WithContext(ctx).Model(&support.Message{}), filter, "name", "email")
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// Count counts messages matching the filter
func (r *GormMessageRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearchAndFilters(r.db.WithContext(ctx).Model(&support.Message{}), filter, "name", "email")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a message
func (r *GormMessageRepository) Save(ctx context.Context, message *support.Message) error {
	return r.db.WithContext(ctx).Save(message).Error
}

// Delete deletes a message
func (r *GormMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&support.Message{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormMessageRepository implements MessageRepository
var _ support.MessageRepository = (*GormMessageRepository)(nil)
