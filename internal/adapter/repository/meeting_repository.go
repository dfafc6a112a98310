package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Update updates an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

// Delete removes a meeting, its action items and its entity associations in
// one transaction. Entities referenced by the meeting are left in place.
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.ActionItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.MeetingEntity{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&entities.Meeting{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List retrieves meetings with filters and pagination
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{})

	// Apply filters
	if filters.MeetingTypeSlug != nil {
		query = query.Where("meeting_type_slug = ?", *filters.MeetingTypeSlug)
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("title ILIKE ?", searchPattern)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting
	sortBy := "date"
	if filters.SortBy != "" {
		sortBy = filters.SortBy
	}
	sortOrder := "DESC"
	if filters.SortOrder != "" {
		sortOrder = filters.SortOrder
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&meetings).Error
	return meetings, total, err
}

// AddEntity links an entity to a meeting. Re-linking an existing pair is a
// no-op thanks to the composite primary key.
func (r *meetingRepository) AddEntity(ctx context.Context, meetingID, entityID uuid.UUID) error {
	link := entities.MeetingEntity{MeetingID: meetingID, EntityID: entityID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

// RemoveEntity unlinks an entity from a meeting
func (r *meetingRepository) RemoveEntity(ctx context.Context, meetingID, entityID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("meeting_id = ? AND entity_id = ?", meetingID, entityID).
		Delete(&entities.MeetingEntity{}).Error
}

// FindEntities retrieves all entities linked to a meeting
func (r *meetingRepository) FindEntities(ctx context.Context, meetingID uuid.UUID) ([]*entities.Entity, error) {
	var results []*entities.Entity
	err := r.db.WithContext(ctx).
		Joins("JOIN meeting_entities me ON me.entity_id = entities.id").
		Where("me.meeting_id = ?", meetingID).
		Order("entities.name ASC").
		Find(&results).Error
	return results, err
}

// FindByEntity retrieves all meetings linked to an entity, newest first
func (r *meetingRepository) FindByEntity(ctx context.Context, entityID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Joins("JOIN meeting_entities me ON me.meeting_id = meetings.id").
		Where("me.entity_id = ?", entityID).
		Order("meetings.date DESC").
		Find(&meetings).Error
	return meetings, err
}
