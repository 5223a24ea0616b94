package contract

// ErrorCode classifies service-level failures for the CLI layer.
type ErrorCode string

const (
	ErrContentUnavailable ErrorCode = "CONTENT_UNAVAILABLE"
	ErrDialogueIncomplete ErrorCode = "DIALOGUE_INCOMPLETE"
	ErrPlanNotFound       ErrorCode = "PLAN_NOT_FOUND"
	ErrInvalidReorder     ErrorCode = "INVALID_REORDER"
	ErrInternalError      ErrorCode = "INTERNAL_ERROR"
)

// Error is a coded service error.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}
