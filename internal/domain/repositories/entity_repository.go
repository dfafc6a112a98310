package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
)

// EntityRepository defines the interface for entity data access
type EntityRepository interface {
	// Create creates a new entity
	Create(ctx context.Context, entity *entities.Entity) error

	// FindByID retrieves an entity by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Entity, error)

	// FindByName retrieves an entity by its exact name
	FindByName(ctx context.Context, name string) (*entities.Entity, error)

	// FindOrCreateByName returns the entity with the given name, creating it
	// atomically when absent. Concurrent callers for the same name all
	// receive the same record; the candidate fields are only used when a
	// row is actually inserted.
	FindOrCreateByName(ctx context.Context, candidate *entities.Entity) (*entities.Entity, bool, error)

	// Update updates an existing entity
	Update(ctx context.Context, entity *entities.Entity) error

	// Delete removes an entity and all of its meeting associations in a
	// single transaction
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves entities with filters and pagination
	List(ctx context.Context, filters EntityFilters) ([]*entities.Entity, int64, error)

	// FindLowUsage retrieves entities linked to exactly one meeting,
	// newest entity first, each with its meeting context
	FindLowUsage(ctx context.Context) ([]*entities.EntityWithMeetingContext, error)

	// CountAssociations returns the number of meetings an entity is linked to
	CountAssociations(ctx context.Context, entityID uuid.UUID) (int64, error)

	// CountByType returns the number of entities carrying a type slug
	CountByType(ctx context.Context, typeSlug string) (int64, error)

	// UpdateType repoints a single entity to a new type slug
	UpdateType(ctx context.Context, entityID uuid.UUID, typeSlug string) error

	// Merge repoints every association of source onto target, then removes
	// source, all in one transaction. Associations target already holds
	// are left untouched.
	Merge(ctx context.Context, sourceID, targetID uuid.UUID) error
}

// EntityFilters represents filter options for listing entities
type EntityFilters struct {
	TypeSlug  *string
	Search    string // Substring match on name
	Limit     int
	Offset    int
	SortBy    string // "created_at", "name"
	SortOrder string // "asc", "desc"
}
