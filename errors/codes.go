package errors

// ErrorCode is a machine-readable application error code
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General codes
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Processing codes
	ErrorCode_INVALID_TRANSCRIPT     ErrorCode = 2000
	ErrorCode_PROCESSING_UNAVAILABLE ErrorCode = 2001
	ErrorCode_PROCESSING_FAILED      ErrorCode = 2002
	ErrorCode_TRANSCRIPTION_FAILED   ErrorCode = 2003

	// Entity codes
	ErrorCode_ENTITY_NOT_FOUND    ErrorCode = 3000
	ErrorCode_INVALID_BATCH       ErrorCode = 3001
	ErrorCode_TYPE_PROTECTED      ErrorCode = 3002
	ErrorCode_TYPE_IN_USE         ErrorCode = 3003
	ErrorCode_INTEGRITY_VIOLATION ErrorCode = 3004

	// Meeting codes
	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 4000
	ErrorCode_ACTION_ITEM_NOT_FOUND ErrorCode = 4001
	ErrorCode_INVALID_STATUS        ErrorCode = 4002

	// Infrastructure codes
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 5000
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 5001
	ErrorCode_STORAGE_FAILED        ErrorCode = 5002
	ErrorCode_CACHE_FAILED          ErrorCode = 5003
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                "OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:         "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_INVALID_TRANSCRIPT:     "INVALID_TRANSCRIPT",
	ErrorCode_PROCESSING_UNAVAILABLE: "PROCESSING_UNAVAILABLE",
	ErrorCode_PROCESSING_FAILED:      "PROCESSING_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:   "TRANSCRIPTION_FAILED",
	ErrorCode_ENTITY_NOT_FOUND:       "ENTITY_NOT_FOUND",
	ErrorCode_INVALID_BATCH:          "INVALID_BATCH",
	ErrorCode_TYPE_PROTECTED:         "TYPE_PROTECTED",
	ErrorCode_TYPE_IN_USE:            "TYPE_IN_USE",
	ErrorCode_INTEGRITY_VIOLATION:    "INTEGRITY_VIOLATION",
	ErrorCode_MEETING_NOT_FOUND:      "MEETING_NOT_FOUND",
	ErrorCode_ACTION_ITEM_NOT_FOUND:  "ACTION_ITEM_NOT_FOUND",
	ErrorCode_INVALID_STATUS:         "INVALID_STATUS",
	ErrorCode_DB_QUERY_FAILED:        "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:  "DB_TRANSACTION_FAILED",
	ErrorCode_STORAGE_FAILED:         "STORAGE_FAILED",
	ErrorCode_CACHE_FAILED:           "CACHE_FAILED",
}

// String returns the symbolic name for the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
