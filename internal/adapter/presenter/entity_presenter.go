package presenter

import (
	"github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/common"
	entitydto "github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/entity"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
)

// ToEntityResponse converts an Entity to EntityResponse DTO
func ToEntityResponse(e *entities.Entity) *entitydto.EntityResponse {
	if e == nil {
		return nil
	}
	return &entitydto.EntityResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		TypeSlug:    e.TypeSlug,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToEntityResponses converts a slice of entities to DTOs
func ToEntityResponses(list []*entities.Entity) []*entitydto.EntityResponse {
	responses := make([]*entitydto.EntityResponse, len(list))
	for i, e := range list {
		responses[i] = ToEntityResponse(e)
	}
	return responses
}

// ToEntityListResponse converts an entity page to its DTO
func ToEntityListResponse(list []*entities.Entity, total int64, page, pageSize int) *entitydto.EntityListResponse {
	return &entitydto.EntityListResponse{
		Entities:   ToEntityResponses(list),
		Pagination: common.NewPaginationResponse(total, page, pageSize),
	}
}

// ToLowUsageEntityResponse converts a low-usage read model to its DTO
func ToLowUsageEntityResponse(row *entities.EntityWithMeetingContext) *entitydto.LowUsageEntityResponse {
	if row == nil {
		return nil
	}
	return &entitydto.LowUsageEntityResponse{
		Entity:       ToEntityResponse(&row.Entity),
		MeetingID:    row.MeetingID.String(),
		MeetingTitle: row.MeetingTitle,
		MeetingDate:  row.MeetingDate,
	}
}

// ToBulkReportResponse converts a bulk report to its DTO
func ToBulkReportResponse(report *entities.BulkReport) *entitydto.BulkReportResponse {
	if report == nil {
		return nil
	}
	outcomes := make([]*entitydto.BulkOutcomeResponse, len(report.Outcomes))
	for i, outcome := range report.Outcomes {
		outcomes[i] = &entitydto.BulkOutcomeResponse{
			EntityID: outcome.EntityID.String(),
			Status:   string(outcome.Status),
			Reason:   outcome.Reason,
		}
	}
	return &entitydto.BulkReportResponse{
		Requested: report.Requested,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		Outcomes:  outcomes,
	}
}

// ToMergeSuggestionResponses converts merge suggestions to DTOs
func ToMergeSuggestionResponses(suggestions []*entities.MergeSuggestion) []*entitydto.MergeSuggestionResponse {
	responses := make([]*entitydto.MergeSuggestionResponse, len(suggestions))
	for i, suggestion := range suggestions {
		responses[i] = &entitydto.MergeSuggestionResponse{
			Source:     ToEntityResponse(suggestion.Source),
			Target:     ToEntityResponse(suggestion.Target),
			Similarity: suggestion.Similarity,
		}
	}
	return responses
}

// ToEntityTypeResponse converts an EntityType to its DTO
func ToEntityTypeResponse(t *entities.EntityType) *entitydto.EntityTypeResponse {
	if t == nil {
		return nil
	}
	return &entitydto.EntityTypeResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Slug:        t.Slug,
		ColorClass:  t.ColorClass,
		Description: t.Description,
		IsSystem:    t.IsSystem,
		CreatedAt:   t.CreatedAt,
	}
}

// ToEntityDetailResponse converts an entity and its meetings to a detail DTO
func ToEntityDetailResponse(e *entities.Entity, meetings []*entities.Meeting) *entitydto.EntityDetailResponse {
	summaries := make([]*entitydto.MeetingSummaryResponse, len(meetings))
	for i, m := range meetings {
		summaries[i] = &entitydto.MeetingSummaryResponse{
			ID:    m.ID.String(),
			Title: m.Title,
			Date:  m.Date,
		}
	}
	return &entitydto.EntityDetailResponse{
		Entity:   ToEntityResponse(e),
		Meetings: summaries,
	}
}
