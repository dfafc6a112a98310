package meeting

import (
	"encoding/json"
	"time"

	"github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/common"
	"github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/entity"
)

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Date            time.Time       `json:"date"`
	Transcript      string          `json:"transcript,omitempty"`
	Summary         string          `json:"summary"`
	MeetingTypeSlug string          `json:"meeting_type_slug"`
	AudioObjectKey  *string         `json:"audio_object_key,omitempty"`
	ProcessingMeta  json.RawMessage `json:"processing_meta,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ActionItemResponse represents an action item in responses
type ActionItemResponse struct {
	ID          string     `json:"id"`
	MeetingID   string     `json:"meeting_id"`
	Description string     `json:"description"`
	Assignee    *string    `json:"assignee,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MeetingDetailResponse represents a meeting with its linked records
type MeetingDetailResponse struct {
	Meeting     *MeetingResponse         `json:"meeting"`
	Entities    []*entity.EntityResponse `json:"entities"`
	ActionItems []*ActionItemResponse    `json:"action_items"`
}

// MeetingListResponse represents a paginated meeting list
type MeetingListResponse struct {
	Meetings   []*MeetingResponse         `json:"meetings"`
	Pagination *common.PaginationResponse `json:"pagination"`
}

// SuggestTitleResponse represents a suggested meeting title
type SuggestTitleResponse struct {
	Title string `json:"title"`
}

// MeetingTypeResponse represents a meeting type in responses
type MeetingTypeResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Slug                   string    `json:"slug"`
	Description            string    `json:"description"`
	SummaryInstructions    string    `json:"summary_instructions"`
	EntityInstructions     string    `json:"entity_instructions"`
	ActionItemInstructions string    `json:"action_item_instructions"`
	IsSystem               bool      `json:"is_system"`
	CreatedAt              time.Time `json:"created_at"`
}
