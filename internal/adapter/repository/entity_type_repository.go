package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
)

// entityTypeRepository implements the EntityTypeRepository interface
type entityTypeRepository struct {
	db *gorm.DB
}

// NewEntityTypeRepository creates a new entity type repository
func NewEntityTypeRepository(db *gorm.DB) repositories.EntityTypeRepository {
	return &entityTypeRepository{db: db}
}

// Create creates a new entity type
func (r *entityTypeRepository) Create(ctx context.Context, entityType *entities.EntityType) error {
	return r.db.WithContext(ctx).Create(entityType).Error
}

// FindByID retrieves an entity type by its ID
func (r *entityTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.EntityType, error) {
	var entityType entities.EntityType
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entityType).Error

	if err != nil {
		return nil, err
	}
	return &entityType, nil
}

// FindBySlug retrieves an entity type by its slug
func (r *entityTypeRepository) FindBySlug(ctx context.Context, slug string) (*entities.EntityType, error) {
	var entityType entities.EntityType
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&entityType).Error

	if err != nil {
		return nil, err
	}
	return &entityType, nil
}

// List retrieves all entity types, system types first
func (r *entityTypeRepository) List(ctx context.Context) ([]*entities.EntityType, error) {
	var types []*entities.EntityType
	err := r.db.WithContext(ctx).
		Order("is_system DESC, name ASC").
		Find(&types).Error
	return types, err
}

// Update updates an existing entity type
func (r *entityTypeRepository) Update(ctx context.Context, entityType *entities.EntityType) error {
	return r.db.WithContext(ctx).Save(entityType).Error
}

// Delete removes an entity type
func (r *entityTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.EntityType{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
