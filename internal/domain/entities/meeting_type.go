package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingType carries optional per-meeting-type instruction overrides for
// the three derivation prompts. It is read-only to the processing core;
// a snapshot is passed into each process call.
type MeetingType struct {
	ID                     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                   string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug                   string    `json:"slug" gorm:"type:varchar(50);not null;uniqueIndex"`
	Description            string    `json:"description" gorm:"type:text"`
	SummaryInstructions    string    `json:"summary_instructions" gorm:"type:text"`
	EntityInstructions     string    `json:"entity_instructions" gorm:"type:text"`
	ActionItemInstructions string    `json:"action_item_instructions" gorm:"type:text"`
	IsSystem               bool      `json:"is_system" gorm:"not null;default:false"`
	CreatedAt              time.Time `json:"created_at" gorm:"default:now()"`
}

// TableName specifies the table name for MeetingType
func (MeetingType) TableName() string {
	return "meeting_types"
}
