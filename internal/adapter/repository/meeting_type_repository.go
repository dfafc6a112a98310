package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

// meetingTypeRepository implements the MeetingTypeRepository interface
type meetingTypeRepository struct {
	db *gorm.DB
}

// NewMeetingTypeRepository creates a new meeting type repository
func NewMeetingTypeRepository(db *gorm.DB) repositories.MeetingTypeRepository {
	return &meetingTypeRepository{db: db}
}

// Create creates a new meeting type
func (r *meetingTypeRepository) Create(ctx context.Context, meetingType *entities.MeetingType) error {
	return r.db.WithContext(ctx).Create(meetingType).Error
}

// FindByID retrieves a meeting type by its ID
func (r *meetingTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingType, error) {
	var meetingType entities.MeetingType
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meetingType).Error

	if err != nil {
		return nil, err
	}
	return &meetingType, nil
}

// FindBySlug retrieves a meeting type by its slug
func (r *meetingTypeRepository) FindBySlug(ctx context.Context, slug string) (*entities.MeetingType, error) {
	var meetingType entities.MeetingType
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&meetingType).Error

	if err != nil {
		return nil, err
	}
	return &meetingType, nil
}

// List retrieves all meeting types, system types first
func (r *meetingTypeRepository) List(ctx context.Context) ([]*entities.MeetingType, error) {
	var types []*entities.MeetingType
	err := r.db.WithContext(ctx).
		Order("is_system DESC, name ASC").
		Find(&types).Error
	return types, err
}

// Update updates an existing meeting type
func (r *meetingTypeRepository) Update(ctx context.Context, meetingType *entities.MeetingType) error {
	return r.db.WithContext(ctx).Save(meetingType).Error
}

// Delete removes a meeting type
func (r *meetingTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MeetingType{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountMeetings returns the number of meetings using a meeting type
func (r *meetingTypeRepository) CountMeetings(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("meeting_type_slug = ?", slug).
		Count(&count).Error
	return count, err
}
