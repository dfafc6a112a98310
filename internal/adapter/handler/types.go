package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	entitydto "github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/entity"
	meetingdto "github.com/lfnovo/ai-meeting-notes/internal/adapter/dto/meeting"
	"github.com/lfnovo/ai-meeting-notes/internal/adapter/presenter"
	typesUsecase "github.com/lfnovo/ai-meeting-notes/internal/usecase/types"
)

// Types handles entity type and meeting type HTTP requests
type Types struct {
	typeService typesUsecase.Service
	logger      *zap.Logger
}

// NewTypesHandler creates a new types handler
func NewTypesHandler(typeService typesUsecase.Service, logger *zap.Logger) *Types {
	return &Types{typeService: typeService, logger: logger}
}

// ListEntityTypes handles GET /entity-types
func (h *Types) ListEntityTypes(c echo.Context) error {
	list, err := h.typeService.ListEntityTypes(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	responses := make([]*entitydto.EntityTypeResponse, len(list))
	for i, t := range list {
		responses[i] = presenter.ToEntityTypeResponse(t)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, responses)
}

// CreateEntityType handles POST /entity-types
func (h *Types) CreateEntityType(c echo.Context) error {
	var req entitydto.CreateEntityTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	entityType, err := h.typeService.CreateEntityType(c.Request().Context(), typesUsecase.EntityTypeInput{
		Name:        req.Name,
		Slug:        req.Slug,
		ColorClass:  req.ColorClass,
		Description: req.Description,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToEntityTypeResponse(entityType))
}

// UpdateEntityType handles PUT /entity-types/:id
func (h *Types) UpdateEntityType(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req entitydto.UpdateEntityTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	entityType, err := h.typeService.UpdateEntityType(c.Request().Context(), id, typesUsecase.EntityTypeInput{
		Name:        req.Name,
		Slug:        req.Slug,
		ColorClass:  req.ColorClass,
		Description: req.Description,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToEntityTypeResponse(entityType))
}

// DeleteEntityType handles DELETE /entity-types/:id
func (h *Types) DeleteEntityType(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.typeService.DeleteEntityType(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}

// ListMeetingTypes handles GET /meeting-types
func (h *Types) ListMeetingTypes(c echo.Context) error {
	list, err := h.typeService.ListMeetingTypes(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	responses := make([]*meetingdto.MeetingTypeResponse, len(list))
	for i, t := range list {
		responses[i] = presenter.ToMeetingTypeResponse(t)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, responses)
}

// GetMeetingType handles GET /meeting-types/:slug
func (h *Types) GetMeetingType(c echo.Context) error {
	meetingType, err := h.typeService.GetMeetingType(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingTypeResponse(meetingType))
}

// CreateMeetingType handles POST /meeting-types
func (h *Types) CreateMeetingType(c echo.Context) error {
	var req meetingdto.CreateMeetingTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetingType, err := h.typeService.CreateMeetingType(c.Request().Context(), typesUsecase.MeetingTypeInput{
		Name:                   req.Name,
		Slug:                   req.Slug,
		Description:            req.Description,
		SummaryInstructions:    req.SummaryInstructions,
		EntityInstructions:     req.EntityInstructions,
		ActionItemInstructions: req.ActionItemInstructions,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMeetingTypeResponse(meetingType))
}

// UpdateMeetingType handles PUT /meeting-types/:id
func (h *Types) UpdateMeetingType(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.UpdateMeetingTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	meetingType, err := h.typeService.UpdateMeetingType(c.Request().Context(), id, typesUsecase.MeetingTypeInput{
		Name:                   req.Name,
		Slug:                   req.Slug,
		Description:            req.Description,
		SummaryInstructions:    req.SummaryInstructions,
		EntityInstructions:     req.EntityInstructions,
		ActionItemInstructions: req.ActionItemInstructions,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingTypeResponse(meetingType))
}

// DeleteMeetingType handles DELETE /meeting-types/:id
func (h *Types) DeleteMeetingType(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.typeService.DeleteMeetingType(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, nil)
}
