package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// Update updates an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes a meeting together with its action items and entity
	// associations in a single transaction. Entities themselves survive.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves meetings with filters and pagination
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// AddEntity links an entity to a meeting. Linking an already linked
	// pair is a no-op.
	AddEntity(ctx context.Context, meetingID, entityID uuid.UUID) error

	// RemoveEntity unlinks an entity from a meeting. Unlinking a pair that
	// is not linked is a no-op.
	RemoveEntity(ctx context.Context, meetingID, entityID uuid.UUID) error

	// FindEntities retrieves all entities linked to a meeting
	FindEntities(ctx context.Context, meetingID uuid.UUID) ([]*entities.Entity, error)

	// FindByEntity retrieves all meetings linked to an entity, newest first
	FindByEntity(ctx context.Context, entityID uuid.UUID) ([]*entities.Meeting, error)
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	MeetingTypeSlug *string
	Search          string // Search in title
	Limit           int
	Offset          int
	SortBy          string // "date", "created_at", "title"
	SortOrder       string // "asc", "desc"
}
