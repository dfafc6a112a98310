package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lfnovo/ai-meeting-notes/errors"
	entitydto "github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/entity"
	"github.com/lfnovo/ai-meeting-notes/internal/adapter/presenter"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/integrity"
)

// Entity handles entity-related HTTP requests
type Entity struct {
	entityRepo       repositories.EntityRepository
	meetingRepo      repositories.MeetingRepository
	integrityService integrity.Service
	logger           *zap.Logger
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(
	entityRepo repositories.EntityRepository,
	meetingRepo repositories.MeetingRepository,
	integrityService integrity.Service,
	logger *zap.Logger,
) *Entity {
	return &Entity{
		entityRepo:       entityRepo,
		meetingRepo:      meetingRepo,
		integrityService: integrityService,
		logger:           logger,
	}
}

// Create handles POST /entities
func (h *Entity) Create(c echo.Context) error {
	var req entitydto.CreateEntityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	record := entities.NewEntity(req.Name, req.TypeSlug, req.Description)
	if err := h.entityRepo.Create(c.Request().Context(), record); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToEntityResponse(record))
}

// List handles GET /entities
func (h *Entity) List(c echo.Context) error {
	var req entitydto.ListEntitiesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	page, pageSize := normalizePaging(req.Page, req.PageSize)
	filters := repositories.EntityFilters{
		TypeSlug:  req.TypeSlug,
		Search:    req.Search,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	list, total, err := h.entityRepo.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEntityListResponse(list, total, page, pageSize))
}

// Get handles GET /entities/:id and includes the entity's meetings
func (h *Entity) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.entityRepo.FindByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrEntityNotFound(id.String()))
	}

	meetings, err := h.meetingRepo.FindByEntity(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEntityDetailResponse(record, meetings))
}

// Update handles PUT /entities/:id
func (h *Entity) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req entitydto.UpdateEntityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.entityRepo.FindByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrEntityNotFound(id.String()))
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.TypeSlug != nil {
		record.TypeSlug = *req.TypeSlug
	}
	if req.Description != nil {
		record.Description = *req.Description
	}

	if err := h.entityRepo.Update(c.Request().Context(), record); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEntityResponse(record))
}

// Delete handles DELETE /entities/:id
func (h *Entity) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.integrityService.DeleteEntity(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// LowUsage handles GET /entities/low-usage
func (h *Entity) LowUsage(c echo.Context) error {
	rows, err := h.integrityService.LowUsageEntities(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	responses := make([]*entitydto.LowUsageEntityResponse, len(rows))
	for i, row := range rows {
		responses[i] = presenter.ToLowUsageEntityResponse(row)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, responses)
}

// BulkDelete handles POST /entities/bulk-delete
func (h *Entity) BulkDelete(c echo.Context) error {
	var req entitydto.BulkDeleteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ids, err := parseUUIDs(req.EntityIDs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	report, err := h.integrityService.BulkDelete(c.Request().Context(), ids)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToBulkReportResponse(report))
}

// BulkUpdateType handles POST /entities/bulk-update-type
func (h *Entity) BulkUpdateType(c echo.Context) error {
	var req entitydto.BulkUpdateTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	ids, err := parseUUIDs(req.EntityIDs)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	report, err := h.integrityService.BulkUpdateType(c.Request().Context(), ids, req.TypeSlug)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToBulkReportResponse(report))
}

// Merge handles POST /entities/merge
func (h *Entity) Merge(c echo.Context) error {
	var req entitydto.MergeEntitiesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	sourceID, err := uuid.Parse(req.SourceID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("source_id must be a valid UUID"))
	}
	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("target_id must be a valid UUID"))
	}

	if err := h.integrityService.MergeEntities(c.Request().Context(), sourceID, targetID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// MergeSuggestions handles GET /entities/merge-suggestions
func (h *Entity) MergeSuggestions(c echo.Context) error {
	suggestions, err := h.integrityService.SuggestMerges(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMergeSuggestionResponses(suggestions))
}

// parseUUIDs converts a list of id strings to UUIDs
func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, errors.ErrInvalidArgument("entity_ids must be valid UUIDs")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
