package presenter

import (
	"encoding/json"

	"github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/common"
	meetingdto "github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/meeting"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingdto.MeetingResponse {
	if m == nil {
		return nil
	}
	return &meetingdto.MeetingResponse{
		ID:              m.ID.String(),
		Title:           m.Title,
		Date:            m.Date,
		Transcript:      m.Transcript,
		Summary:         m.Summary,
		MeetingTypeSlug: m.MeetingTypeSlug,
		AudioObjectKey:  m.AudioObjectKey,
		ProcessingMeta:  json.RawMessage(m.ProcessingMeta),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToActionItemResponse converts an ActionItem entity to its DTO
func ToActionItemResponse(item *entities.ActionItem) *meetingdto.ActionItemResponse {
	if item == nil {
		return nil
	}
	return &meetingdto.ActionItemResponse{
		ID:          item.ID.String(),
		MeetingID:   item.MeetingID.String(),
		Description: item.Description,
		Assignee:    item.Assignee,
		DueDate:     item.DueDate,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToMeetingDetailResponse converts meeting details to their DTO
func ToMeetingDetailResponse(details *meeting.MeetingDetails) *meetingdto.MeetingDetailResponse {
	if details == nil {
		return nil
	}

	items := make([]*meetingdto.ActionItemResponse, len(details.ActionItems))
	for i, item := range details.ActionItems {
		items[i] = ToActionItemResponse(item)
	}

	return &meetingdto.MeetingDetailResponse{
		Meeting:     ToMeetingResponse(details.Meeting),
		Entities:    ToEntityResponses(details.Entities),
		ActionItems: items,
	}
}

// ToMeetingListResponse converts a meeting page to its DTO
func ToMeetingListResponse(meetings []*entities.Meeting, total int64, page, pageSize int) *meetingdto.MeetingListResponse {
	responses := make([]*meetingdto.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return &meetingdto.MeetingListResponse{
		Meetings:   responses,
		Pagination: common.NewPaginationResponse(total, page, pageSize),
	}
}

// ToMeetingTypeResponse converts a MeetingType entity to its DTO
func ToMeetingTypeResponse(mt *entities.MeetingType) *meetingdto.MeetingTypeResponse {
	if mt == nil {
		return nil
	}
	return &meetingdto.MeetingTypeResponse{
		ID:                     mt.ID.String(),
		Name:                   mt.Name,
		Slug:                   mt.Slug,
		Description:            mt.Description,
		SummaryInstructions:    mt.SummaryInstructions,
		EntityInstructions:     mt.EntityInstructions,
		ActionItemInstructions: mt.ActionItemInstructions,
		IsSystem:               mt.IsSystem,
		CreatedAt:              mt.CreatedAt,
	}
}
