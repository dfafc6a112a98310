package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type carried across layers
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrAlreadyExists(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_ALREADY_EXISTS,
		Message:  fmt.Sprintf("%s already exists", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Processing Errors

// ErrInvalidTranscript indicates the caller supplied an empty or unusable transcript.
func ErrInvalidTranscript() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_TRANSCRIPT,
		Message:  "Transcript is required and must not be empty",
	}
}

// ErrProcessingUnavailable indicates every derivation call against the
// completion provider failed, so no usable result could be assembled.
func ErrProcessingUnavailable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_PROCESSING_UNAVAILABLE,
		Message:  "Meeting processing is temporarily unavailable",
	}
}

func ErrProcessingFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_PROCESSING_FAILED,
		Message:  "Processing failed",
	}
}

func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

// Entity Errors
func ErrEntityNotFound(entityID string) AppError {
	e := AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_ENTITY_NOT_FOUND,
		Message:  "Entity not found",
	}
	if entityID != "" {
		e = e.WithDetail("entity_id", entityID)
	}
	return e
}

// ErrInvalidBatch rejects a bulk operation whose id list is empty or
// exceeds the maximum batch size.
func ErrInvalidBatch(reason string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_BATCH,
		Message:  reason,
	}
}

func ErrTypeProtected(slug string) AppError {
	e := AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_TYPE_PROTECTED,
		Message:  "System types cannot be deleted",
	}
	if slug != "" {
		e = e.WithDetail("slug", slug)
	}
	return e
}

func ErrTypeInUse(slug string) AppError {
	e := AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_TYPE_IN_USE,
		Message:  "Type is still in use and cannot be deleted",
	}
	if slug != "" {
		e = e.WithDetail("slug", slug)
	}
	return e
}

// ErrIntegrityViolation flags a state that should be unreachable given the
// store's atomic operations; treated as a bug, not an expected condition.
func ErrIntegrityViolation(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRITY_VIOLATION,
		Message:  "Data integrity violation",
	}
}

// Meeting Errors
func ErrMeetingNotFound(meetingID string) AppError {
	e := AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "Meeting not found",
	}
	if meetingID != "" {
		e = e.WithDetail("meeting_id", meetingID)
	}
	return e
}

func ErrActionItemNotFound(actionItemID string) AppError {
	e := AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_ACTION_ITEM_NOT_FOUND,
		Message:  "Action item not found",
	}
	if actionItemID != "" {
		e = e.WithDetail("action_item_id", actionItemID)
	}
	return e
}

func ErrInvalidStatus(status string) AppError {
	e := AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_STATUS,
		Message:  "Invalid action item status",
	}
	if status != "" {
		e = e.WithDetail("status", status)
	}
	return e
}

// Database Errors
func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}

func ErrDBTransactionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_TRANSACTION_FAILED,
		Message:  "Database transaction failed",
	}
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}
