package entities

import (
	"time"

	"github.com/google/uuid"
)

// EntityTypeTag is the closed set of type slugs the resolver can assign.
// The provider's free-text labels are mapped onto this set; anything
// unrecognized falls back to EntityTypeTagOther.
type EntityTypeTag string

const (
	EntityTypeTagPerson  EntityTypeTag = "person"
	EntityTypeTagCompany EntityTypeTag = "company"
	EntityTypeTagProject EntityTypeTag = "project"
	EntityTypeTagOther   EntityTypeTag = "other"
)

// Entity represents a canonical named entity extracted from meetings.
// The name is unique across the store; no two entities share one.
type Entity struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	TypeSlug    string    `json:"type_slug" gorm:"type:varchar(50);not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"default:now()"`
}

// TableName specifies the table name for Entity
func (Entity) TableName() string {
	return "entities"
}

// NewEntity creates an entity record with a fresh identity
func NewEntity(name string, typeSlug string, description string) *Entity {
	return &Entity{
		ID:          uuid.New(),
		Name:        name,
		TypeSlug:    typeSlug,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// EntityWithMeetingContext is the read model returned by the low-usage
// query: an entity plus the single meeting it is linked to.
type EntityWithMeetingContext struct {
	Entity
	MeetingID    uuid.UUID `json:"meeting_id"`
	MeetingTitle string    `json:"meeting_title"`
	MeetingDate  time.Time `json:"meeting_date"`
}

// MergeSuggestion pairs two same-typed entities whose names look alike
// enough that an operator may want to merge them.
type MergeSuggestion struct {
	Source     *Entity `json:"source"`
	Target     *Entity `json:"target"`
	Similarity float64 `json:"similarity"`
}
