package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Event and team formation errors
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrTeamFull            = errors.New("team is full")
	ErrTeamNotJoinable     = errors.New("team does not accept members")
	ErrFormationLocked     = errors.New("team formation is locked for this event")
	ErrInvalidTransition   = errors.New("invalid team status transition")
	ErrAlreadyRegistered   = errors.New("already registered for this event")
	ErrAlreadyTeamMember   = errors.New("already a member of a team in this event")
	ErrDuplicateRequest    = errors.New("a pending join request already exists")
	ErrRequestNotFound     = errors.New("join request not found")
	ErrRequestDecided      = errors.New("join request already decided")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Feed errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Startup and internship errors
var (
	ErrStartupNotFound      = errors.New("startup not found")
	ErrStartupExists        = errors.New("an active startup profile already exists")
	ErrStartupNotApproved   = errors.New("startup is not approved")
	ErrReapplyWindow        = errors.New("reapply window has not elapsed")
	ErrInternshipNotFound   = errors.New("internship not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("already applied to this internship")
	ErrDeadlinePassed       = errors.New("application deadline has passed")
	ErrInvalidStatusChange  = errors.New("invalid application status change")
	ErrNotificationNotFound = errors.New("notification not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}
