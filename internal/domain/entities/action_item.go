package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItemStatus represents the lifecycle status of an action item
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "pending"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusCompleted  ActionItemStatus = "completed"
	ActionItemStatusCancelled  ActionItemStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values
func (s ActionItemStatus) IsValid() bool {
	switch s {
	case ActionItemStatusPending, ActionItemStatusInProgress,
		ActionItemStatusCompleted, ActionItemStatusCancelled:
		return true
	}
	return false
}

// ActionItem represents a task extracted from a meeting or created by hand.
// It is owned by its meeting and removed when the meeting is deleted.
type ActionItem struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID        `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Description string           `json:"description" gorm:"type:text;not null"`
	Assignee    *string          `json:"assignee,omitempty" gorm:"type:varchar(255)"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	Status      ActionItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time        `json:"created_at" gorm:"default:now()"`
	UpdatedAt   time.Time        `json:"updated_at" gorm:"default:now()"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a pending action item for a meeting
func NewActionItem(meetingID uuid.UUID, description string) *ActionItem {
	return &ActionItem{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Description: description,
		Status:      ActionItemStatusPending,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}
