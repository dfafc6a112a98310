package meeting

import (
	"time"
)

// CreateMeetingRequest represents the request to create a meeting from a
// transcript. Title is optional; a missing title is suggested from the
// transcript content.
type CreateMeetingRequest struct {
	Title           string     `json:"title" validate:"omitempty,max=255"`
	Date            *time.Time `json:"date,omitempty"`
	Transcript      string     `json:"transcript"`
	MeetingTypeSlug string     `json:"meeting_type_slug" validate:"omitempty,max=50"`
}

// UpdateMeetingRequest represents the request to edit a meeting
type UpdateMeetingRequest struct {
	Title           *string    `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Date            *time.Time `json:"date,omitempty"`
	Summary         *string    `json:"summary,omitempty"`
	MeetingTypeSlug *string    `json:"meeting_type_slug,omitempty" validate:"omitempty,min=1,max=50"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	MeetingTypeSlug *string `query:"meeting_type" validate:"omitempty,max=50"`
	Search          string  `query:"search"`
	Page            int     `query:"page" validate:"omitempty,min=1"`
	PageSize        int     `query:"page_size" validate:"omitempty,min=1,max=100"`
	SortBy          string  `query:"sort_by" validate:"omitempty,oneof=date created_at title"`
	SortOrder       string  `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// SuggestTitleRequest represents the request to suggest a meeting title
type SuggestTitleRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// CreateActionItemRequest represents the request to add an action item
type CreateActionItemRequest struct {
	Description string     `json:"description" validate:"required,min=1"`
	Assignee    *string    `json:"assignee,omitempty" validate:"omitempty,max=255"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateActionItemRequest represents the request to edit an action item
type UpdateActionItemRequest struct {
	Description *string    `json:"description,omitempty" validate:"omitempty,min=1"`
	Assignee    *string    `json:"assignee,omitempty" validate:"omitempty,max=255"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
}

// CreateMeetingTypeRequest represents the request to create a meeting type
type CreateMeetingTypeRequest struct {
	Name                   string `json:"name" validate:"required,min=1,max=100"`
	Slug                   string `json:"slug" validate:"required,min=1,max=50"`
	Description            string `json:"description"`
	SummaryInstructions    string `json:"summary_instructions"`
	EntityInstructions     string `json:"entity_instructions"`
	ActionItemInstructions string `json:"action_item_instructions"`
}

// UpdateMeetingTypeRequest represents the request to edit a meeting type
type UpdateMeetingTypeRequest struct {
	Name                   string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug                   string `json:"slug" validate:"omitempty,min=1,max=50"`
	Description            string `json:"description"`
	SummaryInstructions    string `json:"summary_instructions"`
	EntityInstructions     string `json:"entity_instructions"`
	ActionItemInstructions string `json:"action_item_instructions"`
}
