package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting represents a processed meeting and its derived summary
type Meeting struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title           string         `json:"title" gorm:"type:varchar(255);not null"`
	Date            time.Time      `json:"date" gorm:"not null;index"`
	Transcript      string         `json:"transcript" gorm:"type:text"`
	Summary         string         `json:"summary" gorm:"type:text"`
	AudioObjectKey  *string        `json:"audio_object_key,omitempty" gorm:"type:varchar(512)"`
	MeetingTypeSlug string         `json:"meeting_type_slug" gorm:"type:varchar(50);not null;default:'general';index"`
	ProcessingMeta  datatypes.JSON `json:"processing_meta,omitempty" gorm:"type:jsonb;default:'{}'"`
	CreatedAt       time.Time      `json:"created_at" gorm:"default:now()"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"default:now()"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting record with a fresh identity
func NewMeeting(title string, date time.Time, transcript string, meetingTypeSlug string) *Meeting {
	if meetingTypeSlug == "" {
		meetingTypeSlug = "general"
	}
	return &Meeting{
		ID:              uuid.New(),
		Title:           title,
		Date:            date,
		Transcript:      transcript,
		MeetingTypeSlug: meetingTypeSlug,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}
