package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lfnovo/ai-meeting-notes/errors"
	meetingdto "github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/meeting"
	"github.com/lfnovo/ai-meeting-notes/internal/adapter/presenter"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/repositories"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/integrity"
	meetingUsecase "github.com/lfnovo/ai-meeting-notes/internal/usecase/meeting"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/processing"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService   meetingUsecase.Service
	integrityService integrity.Service
	processor        processing.Service
	logger           *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(
	meetingService meetingUsecase.Service,
	integrityService integrity.Service,
	processor processing.Service,
	logger *zap.Logger,
) *Meeting {
	return &Meeting{
		meetingService:   meetingService,
		integrityService: integrityService,
		processor:        processor,
		logger:           logger,
	}
}

// Create handles POST /meetings
func (h *Meeting) Create(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := meetingUsecase.CreateInput{
		Title:           req.Title,
		Transcript:      req.Transcript,
		MeetingTypeSlug: req.MeetingTypeSlug,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	details, err := h.meetingService.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMeetingDetailResponse(details))
}

// Upload handles POST /meetings/upload with a multipart audio file
func (h *Meeting) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("audio file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	input := meetingUsecase.CreateInput{
		Title:           c.FormValue("title"),
		MeetingTypeSlug: c.FormValue("meeting_type_slug"),
	}
	if raw := c.FormValue("date"); raw != "" {
		date, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("date must be RFC3339"))
		}
		input.Date = date
	}

	contentType := fileHeader.Header.Get("Content-Type")
	details, err := h.meetingService.CreateFromAudio(c.Request().Context(), input, file, fileHeader.Filename, contentType)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMeetingDetailResponse(details))
}

// List handles GET /meetings
func (h *Meeting) List(c echo.Context) error {
	var req meetingdto.ListMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	page, pageSize := normalizePaging(req.Page, req.PageSize)
	filters := repositories.MeetingFilters{
		MeetingTypeSlug: req.MeetingTypeSlug,
		Search:          req.Search,
		Limit:           pageSize,
		Offset:          (page - 1) * pageSize,
		SortBy:          req.SortBy,
		SortOrder:       req.SortOrder,
	}

	meetings, total, err := h.meetingService.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingListResponse(meetings, total, page, pageSize))
}

// Get handles GET /meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	details, err := h.meetingService.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingDetailResponse(details))
}

// Update handles PUT /meetings/:id
func (h *Meeting) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.meetingService.Update(c.Request().Context(), id, meetingUsecase.UpdateInput{
		Title:           req.Title,
		Date:            req.Date,
		Summary:         req.Summary,
		MeetingTypeSlug: req.MeetingTypeSlug,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(record))
}

// Delete handles DELETE /meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.integrityService.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// Reprocess handles POST /meetings/:id/reprocess
func (h *Meeting) Reprocess(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	details, err := h.meetingService.Reprocess(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingDetailResponse(details))
}

// SuggestTitle handles POST /meetings/suggest-title
func (h *Meeting) SuggestTitle(c echo.Context) error {
	var req meetingdto.SuggestTitleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	title := h.processor.SuggestTitle(c.Request().Context(), req.Transcript)
	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.SuggestTitleResponse{Title: title})
}

// AddEntity handles POST /meetings/:id/entities/:entityId
func (h *Meeting) AddEntity(c echo.Context) error {
	meetingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	entityID, err := parseUUIDParam(c, "entityId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.integrityService.Associate(c.Request().Context(), meetingID, entityID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// RemoveEntity handles DELETE /meetings/:id/entities/:entityId
func (h *Meeting) RemoveEntity(c echo.Context) error {
	meetingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	entityID, err := parseUUIDParam(c, "entityId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.integrityService.Disassociate(c.Request().Context(), meetingID, entityID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// AddActionItem handles POST /meetings/:id/action-items
func (h *Meeting) AddActionItem(c echo.Context) error {
	meetingID, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.CreateActionItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.meetingService.AddActionItem(c.Request().Context(), meetingID, meetingUsecase.ActionItemInput{
		Description: req.Description,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToActionItemResponse(item))
}

// UpdateActionItem handles PUT /action-items/:id
func (h *Meeting) UpdateActionItem(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.UpdateActionItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := meetingUsecase.ActionItemUpdate{
		Description: req.Description,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := entities.ActionItemStatus(*req.Status)
		input.Status = &status
	}

	item, err := h.meetingService.UpdateActionItem(c.Request().Context(), id, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponse(item))
}

// DeleteActionItem handles DELETE /action-items/:id
func (h *Meeting) DeleteActionItem(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.DeleteActionItem(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// parseUUIDParam reads a path parameter as a UUID
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument(name + " must be a valid UUID")
	}
	return id, nil
}
