package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lfnovo/ai-meeting-notes/errors"
	"github.com/lfnovo/ai-meeting-notes/internal/domain/entities"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging. Domain errors are
// translated into application errors first so every layer below the
// handlers can stay HTTP-agnostic.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	appErr, ok := toAppError(err)
	if !ok {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		body := errs{
			Code:    errors.ErrorCode_INTERNAL,
			Message: "Internal server error",
			Info:    err.Error(),
		}
		return c.JSON(http.StatusInternalServerError, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}
	return c.JSON(appErr.HTTPCode, body)
}

// toAppError resolves an error to an AppError. Explicit AppErrors pass
// through; known domain errors get their HTTP mapping here.
func toAppError(err error) (errors.AppError, bool) {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr, true
	}

	switch {
	case stdErrors.Is(err, entities.ErrEmptyTranscript):
		return errors.ErrInvalidTranscript(), true
	case stdErrors.Is(err, entities.ErrProcessingUnavailable):
		return errors.ErrProcessingUnavailable(err), true
	case stdErrors.Is(err, entities.ErrEntityNotFound):
		return errors.ErrEntityNotFound(""), true
	case stdErrors.Is(err, entities.ErrEntityTypeNotFound):
		return errors.ErrNotFound("Entity type"), true
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(""), true
	case stdErrors.Is(err, entities.ErrMeetingTypeNotFound):
		return errors.ErrNotFound("Meeting type"), true
	case stdErrors.Is(err, entities.ErrActionItemNotFound):
		return errors.ErrActionItemNotFound(""), true
	case stdErrors.Is(err, entities.ErrInvalidBatch):
		return errors.ErrInvalidBatch(err.Error()), true
	case stdErrors.Is(err, entities.ErrTypeProtected):
		return errors.ErrTypeProtected(""), true
	case stdErrors.Is(err, entities.ErrTypeInUse):
		return errors.ErrTypeInUse(""), true
	case stdErrors.Is(err, entities.ErrInvalidStatus):
		return errors.ErrInvalidStatus(""), true
	}
	return errors.AppError{}, false
}

// bindAndValidate decodes the request body into v and runs validation
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(v); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}

// normalizePaging applies defaults to page and page size
func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
