package entities

import "github.com/google/uuid"

// MeetingEntity is the association between one meeting and one entity.
// The pair is unique; inserting an existing pair is a no-op. Rows are
// removed when either endpoint is deleted.
type MeetingEntity struct {
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;primaryKey"`
	EntityID  uuid.UUID `json:"entity_id" gorm:"type:uuid;primaryKey"`
}

// TableName specifies the table name for MeetingEntity
func (MeetingEntity) TableName() string {
	return "meeting_entities"
}
