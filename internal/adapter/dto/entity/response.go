package entity

import (
	"time"

	"github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/common"
)

// EntityResponse represents an entity in responses
type EntityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TypeSlug    string    `json:"type_slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// EntityListResponse represents a paginated entity list
type EntityListResponse struct {
	Entities   []*EntityResponse          `json:"entities"`
	Pagination *common.PaginationResponse `json:"pagination"`
}

// LowUsageEntityResponse represents a low-usage entity together with the
// single meeting it is linked to
type LowUsageEntityResponse struct {
	Entity       *EntityResponse `json:"entity"`
	MeetingID    string          `json:"meeting_id"`
	MeetingTitle string          `json:"meeting_title"`
	MeetingDate  time.Time       `json:"meeting_date"`
}

// BulkOutcomeResponse records what happened to one id in a bulk operation
type BulkOutcomeResponse struct {
	EntityID string `json:"entity_id"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

// BulkReportResponse represents the outcome of a bulk operation
type BulkReportResponse struct {
	Requested int                    `json:"requested"`
	Succeeded int                    `json:"succeeded"`
	Failed    int                    `json:"failed"`
	Outcomes  []*BulkOutcomeResponse `json:"outcomes"`
}

// MergeSuggestionResponse represents one suggested entity merge
type MergeSuggestionResponse struct {
	Source     *EntityResponse `json:"source"`
	Target     *EntityResponse `json:"target"`
	Similarity float64         `json:"similarity"`
}

// EntityTypeResponse represents an entity type in responses
type EntityTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	ColorClass  string    `json:"color_class"`
	Description string    `json:"description"`
	IsSystem    bool      `json:"is_system"`
	CreatedAt   time.Time `json:"created_at"`
}

// MeetingSummaryResponse is the compact meeting view embedded in entity
// detail responses
type MeetingSummaryResponse struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// EntityDetailResponse represents an entity with its meetings
type EntityDetailResponse struct {
	Entity   *EntityResponse           `json:"entity"`
	Meetings []*MeetingSummaryResponse `json:"meetings"`
}
