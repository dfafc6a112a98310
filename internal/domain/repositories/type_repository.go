package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
)

// EntityTypeRepository defines the interface for entity type data access
type EntityTypeRepository interface {
	// Create creates a new entity type
	Create(ctx context.Context, entityType *entities.EntityType) error

	// FindByID retrieves an entity type by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.EntityType, error)

	// FindBySlug retrieves an entity type by its slug
	FindBySlug(ctx context.Context, slug string) (*entities.EntityType, error)

	// List retrieves all entity types, system types first
	List(ctx context.Context) ([]*entities.EntityType, error)

	// Update updates an existing entity type
	Update(ctx context.Context, entityType *entities.EntityType) error

	// Delete removes an entity type
	Delete(ctx context.Context, id uuid.UUID) error
}

// MeetingTypeRepository defines the interface for meeting type data access
type MeetingTypeRepository interface {
	// Create creates a new meeting type
	Create(ctx context.Context, meetingType *entities.MeetingType) error

	// FindByID retrieves a meeting type by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingType, error)

	// FindBySlug retrieves a meeting type by its slug
	FindBySlug(ctx context.Context, slug string) (*entities.MeetingType, error)

	// List retrieves all meeting types, system types first
	List(ctx context.Context) ([]*entities.MeetingType, error)

	// Update updates an existing meeting type
	Update(ctx context.Context, meetingType *entities.MeetingType) error

	// Delete removes a meeting type
	Delete(ctx context.Context, id uuid.UUID) error

	// CountMeetings returns the number of meetings using a meeting type
	CountMeetings(ctx context.Context, slug string) (int64, error)
}
