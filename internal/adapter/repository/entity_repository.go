package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

// entityRepository implements the EntityRepository interface
type entityRepository struct {
	db *gorm.DB
}

// NewEntityRepository creates a new entity repository
func NewEntityRepository(db *gorm.DB) repositories.EntityRepository {
	return &entityRepository{db: db}
}

// Create creates a new entity
func (r *entityRepository) Create(ctx context.Context, entity *entities.Entity) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// FindByID retrieves an entity by its ID
func (r *entityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Entity, error) {
	var entity entities.Entity
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error

	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindByName retrieves an entity by its exact name
func (r *entityRepository) FindByName(ctx context.Context, name string) (*entities.Entity, error) {
	var entity entities.Entity
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&entity).Error

	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindOrCreateByName returns the entity with the given name, creating it when
// absent. The insert and the re-read run in one transaction; the unique index
// on name arbitrates concurrent inserts, so every caller sees the same row.
func (r *entityRepository) FindOrCreateByName(ctx context.Context, candidate *entities.Entity) (*entities.Entity, bool, error) {
	var entity entities.Entity
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(candidate)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected == 1

		return tx.Where("name = ?", candidate.Name).First(&entity).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &entity, created, nil
}

// Update updates an existing entity
func (r *entityRepository) Update(ctx context.Context, entity *entities.Entity) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete removes an entity and its meeting associations in one transaction
func (r *entityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entity_id = ?", id).Delete(&entities.MeetingEntity{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&entities.Entity{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List retrieves entities with filters and pagination
func (r *entityRepository) List(ctx context.Context, filters repositories.EntityFilters) ([]*entities.Entity, int64, error) {
	var results []*entities.Entity
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Entity{})

	// Apply filters
	if filters.TypeSlug != nil {
		query = query.Where("type_slug = ?", *filters.TypeSlug)
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ?", searchPattern)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting
	sortBy := "created_at"
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

	err := query.Find(&results).Error
	return results, total, err
}

type lowUsageRow struct {
	ID           uuid.UUID `gorm:"column:id"`
	Name         string    `gorm:"column:name"`
	TypeSlug     string    `gorm:"column:type_slug"`
	Description  string    `gorm:"column:description"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	MeetingID    uuid.UUID `gorm:"column:meeting_id"`
	MeetingTitle string    `gorm:"column:meeting_title"`
	MeetingDate  time.Time `gorm:"column:meeting_date"`
}

// FindLowUsage retrieves entities linked to exactly one meeting, newest
// entity first, each joined with its single meeting
func (r *entityRepository) FindLowUsage(ctx context.Context) ([]*entities.EntityWithMeetingContext, error) {
	var rows []lowUsageRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.id, e.name, e.type_slug, e.description, e.created_at,
		       m.id AS meeting_id, m.title AS meeting_title, m.date AS meeting_date
		FROM entities e
		JOIN meeting_entities me ON me.entity_id = e.id
		JOIN meetings m ON m.id = me.meeting_id
		WHERE e.id IN (
			SELECT entity_id
			FROM meeting_entities
			GROUP BY entity_id
			HAVING COUNT(*) = 1
		)
		ORDER BY e.created_at DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]*entities.EntityWithMeetingContext, 0, len(rows))
	for _, row := range rows {
		results = append(results, &entities.EntityWithMeetingContext{
			Entity: entities.Entity{
				ID:          row.ID,
				Name:        row.Name,
				TypeSlug:    row.TypeSlug,
				Description: row.Description,
				CreatedAt:   row.CreatedAt,
			},
			MeetingID:    row.MeetingID,
			MeetingTitle: row.MeetingTitle,
			MeetingDate:  row.MeetingDate,
		})
	}
	return results, nil
}

// CountAssociations returns the number of meetings an entity is linked to
func (r *entityRepository) CountAssociations(ctx context.Context, entityID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.MeetingEntity{}).
		Where("entity_id = ?", entityID).
		Count(&count).Error
	return count, err
}

// CountByType returns the number of entities carrying a type slug
func (r *entityRepository) CountByType(ctx context.Context, typeSlug string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Entity{}).
		Where("type_slug = ?", typeSlug).
		Count(&count).Error
	return count, err
}

// UpdateType repoints a single entity to a new type slug
func (r *entityRepository) UpdateType(ctx context.Context, entityID uuid.UUID, typeSlug string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Entity{}).
		Where("id = ?", entityID).
		Update("type_slug", typeSlug)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Merge repoints every association of source onto target, then removes
// source. Pairs target already holds are skipped so the composite primary
// key never collides.
func (r *entityRepository) Merge(ctx context.Context, sourceID, targetID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			UPDATE meeting_entities SET entity_id = ?
			WHERE entity_id = ?
			  AND meeting_id NOT IN (
				SELECT meeting_id FROM meeting_entities WHERE entity_id = ?
			  )
		`, targetID, sourceID, targetID).Error; err != nil {
			return err
		}

		if err := tx.Where("entity_id = ?", sourceID).Delete(&entities.MeetingEntity{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", sourceID).Delete(&entities.Entity{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
