package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// Create creates a new action item
func (r *actionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// CreateBatch creates several action items in one transaction
func (r *actionItemRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

// FindByID retrieves an action item by its ID
func (r *actionItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByMeeting retrieves all action items of a meeting, oldest first
func (r *actionItemRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// List retrieves action items with filters and pagination
func (r *actionItemRepository) List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, int64, error) {
	var items []*entities.ActionItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.ActionItem{})

	// Apply filters
	if filters.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filters.MeetingID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Assignee != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Assignee)
		query = query.Where("assignee ILIKE ?", searchPattern)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&items).Error
	return items, total, err
}

// Update updates an existing action item
func (r *actionItemRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteByMeeting removes all action items of a meeting
func (r *actionItemRepository) DeleteByMeeting(ctx context.Context, meetingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&entities.ActionItem{}).Error
}

// Delete removes an action item
func (r *actionItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ActionItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
