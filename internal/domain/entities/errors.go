package entities

import "errors"

// Domain errors
var (
	// Processing errors
	ErrEmptyTranscript       = errors.New("transcript is empty")
	ErrProcessingUnavailable = errors.New("all derivation calls failed")

	// Entity errors
	ErrEntityNotFound     = errors.New("entity not found")
	ErrEntityTypeNotFound = errors.New("entity type not found")
	ErrInvalidBatch       = errors.New("invalid bulk batch")
	ErrTypeProtected      = errors.New("system type cannot be deleted")
	ErrTypeInUse          = errors.New("type is in use")

	// Meeting errors
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrMeetingTypeNotFound = errors.New("meeting type not found")
	ErrActionItemNotFound  = errors.New("action item not found")
	ErrInvalidStatus       = errors.New("invalid action item status")
)
