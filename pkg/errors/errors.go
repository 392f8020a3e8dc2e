package errors

import "fmt"

// Error codes for the state mirror.
const (
	// Accessor precondition violations
	ErrCodeRemoveMissing = "REMOVE_MISSING"

	// Database errors
	ErrCodeDatabaseError = "DATABASE_ERROR"

	// Bootstrap errors
	ErrCodeBootstrapFailed = "BOOTSTRAP_FAILED"

	// Hook errors
	ErrCodeInvalidPayload    = "INVALID_PAYLOAD"
	ErrCodeUnsupportedAction = "UNSUPPORTED_ACTION"
	ErrCodeUnknownKind       = "UNKNOWN_KIND"
)

// StateError represents an error in the state mirror.
type StateError struct {
	Code    string
	Message string
	Err     error
}

func (e *StateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// NewStateError creates a new StateError.
func NewStateError(code, message string, err error) *StateError {
	return &StateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Domain-specific error constructors

// ErrRemoveMissing signals a strict remove of an entity that is not
// cached. This is a caller bug, not a recoverable runtime condition.
func ErrRemoveMissing(kind string, identity any) *StateError {
	return &StateError{
		Code:    ErrCodeRemoveMissing,
		Message: fmt.Sprintf("remove of absent %s: %v", kind, identity),
		Err:     nil,
	}
}

// ErrDatabaseError wraps database errors.
func ErrDatabaseError(operation string, err error) *StateError {
	return &StateError{
		Code:    ErrCodeDatabaseError,
		Message: fmt.Sprintf("database error during %s", operation),
		Err:     err,
	}
}

// ErrBootstrapFailed wraps the failure of one bulk read during bootstrap.
func ErrBootstrapFailed(kind string, err error) *StateError {
	return &StateError{
		Code:    ErrCodeBootstrapFailed,
		Message: fmt.Sprintf("bootstrap read failed for %s", kind),
		Err:     err,
	}
}

// ErrInvalidPayload signals a hook payload that could not be decoded or
// that is missing its identity field.
func ErrInvalidPayload(kind string, err error) *StateError {
	return &StateError{
		Code:    ErrCodeInvalidPayload,
		Message: fmt.Sprintf("invalid %s payload", kind),
		Err:     err,
	}
}

// ErrUnsupportedAction signals a hook action the kind does not support
// (for example a delete for the prices snapshot).
func ErrUnsupportedAction(kind, action string) *StateError {
	return &StateError{
		Code:    ErrCodeUnsupportedAction,
		Message: fmt.Sprintf("unsupported action %q for %s", action, kind),
		Err:     nil,
	}
}

// ErrUnknownKind signals a hook event for an entity kind the dispatcher
// does not handle.
func ErrUnknownKind(kind string) *StateError {
	return &StateError{
		Code:    ErrCodeUnknownKind,
		Message: fmt.Sprintf("unknown entity kind %q", kind),
		Err:     nil,
	}
}
