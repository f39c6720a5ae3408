package errors

import (
	"fmt"
	"net/http"
	"strings"

	"natours/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Operational is implemented by errors that know whether their message is safe to expose.
// AppErrors that do not implement it are treated as operational.
type Operational interface {
	Operational() bool
}

// IsOperational reports whether err carries an AppError whose message may reach clients.
func IsOperational(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}
	if op, ok := appErr.(Operational); ok {
		return op.Operational()
	}

	return true
}

// StatusClass maps an HTTP status to the response status field: "fail" for 4xx, "error" otherwise.
func StatusClass(httpCode int) string {
	if httpCode >= 400 && httpCode < 500 {
		return "fail"
	}

	return "error"
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches predefined errors by code so that copies made by WithDetails still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// Predefined error types
var (
	// Authentication-related errors
	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"You are not logged in! Please log in to get access.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token. Please log in again!",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Your token has expired! Please login again.",
		"",
	)

	ErrTokenUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_USER_NOT_FOUND",
		"The user belonging to this token does not exist",
		"",
	)

	ErrPasswordChangedAfterToken = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_CHANGED",
		"User recently changed password! Please log in again.",
		"",
	)

	ErrUserNotConfirmed = NewBaseError(
		http.StatusUnauthorized,
		"USER_NOT_CONFIRMED",
		"User not confirmed! Please click the link in the email to confirm the account.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You don't have permission to perform this action",
		"",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Please provide email and password",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password!",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_PASSWORD",
		"Incorrect password!",
		"",
	)

	ErrConfirmTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"CONFIRM_TOKEN_INVALID",
		"Token is invalid.",
		"",
	)

	ErrUserAlreadyConfirmed = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_CONFIRMED",
		"User is already confirmed!",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Token is invalid or has expired.",
		"",
	)

	ErrNoUserWithEmail = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"There is no user with email address.",
		"",
	)

	ErrPasswordUpdateRoute = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_UPDATE_ROUTE",
		"This route is not for password updates. Please use /updateMyPassword.",
		"",
	)

	ErrUseSignup = NewBaseError(
		http.StatusInternalServerError,
		"USE_SIGNUP",
		"This route is not defined! Please use /signup instead",
		"",
	)

	// Dependency failures surfaced after compensation
	ErrEmailSendFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_SEND_FAILED",
		"There was an error sending the email. Try again later!",
		"",
	)

	ErrCheckoutFailed = NewBaseError(
		http.StatusInternalServerError,
		"CHECKOUT_FAILED",
		"There was an error creating the checkout session. Try again later!",
		"",
	)

	ErrWebhookSignature = NewBaseError(
		http.StatusBadRequest,
		"WEBHOOK_SIGNATURE_INVALID",
		"Webhook error: invalid signature",
		"",
	)

	// Resource-related errors
	ErrTourNotFoundBySlug = NewBaseError(
		http.StatusNotFound,
		"TOUR_NOT_FOUND",
		"There is no tour with that name.",
		"",
	)

	ErrNotAnImage = NewBaseError(
		http.StatusBadRequest,
		"NOT_AN_IMAGE",
		"Not an image! Please upload only images.",
		"",
	)

	ErrInvalidLatLng = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LATLNG",
		"Please provide latitude and longitude in the format lat,lng.",
		"",
	)

	ErrBookingNotOwned = NewBaseError(
		http.StatusForbidden,
		"BOOKING_NOT_OWNED",
		"You can only access your own bookings",
		"",
	)

	ErrReferenceNotFound = NewBaseError(
		http.StatusBadRequest,
		"REFERENCE_NOT_FOUND",
		"The referenced document does not exist",
		"",
	)

	ErrInvalidTicket = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TICKET",
		"This ticket is not valid.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input data.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error!!",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No document found",
		"",
	)
)

// NewDocumentNotFoundError reports a missing resource by identifier.
func NewDocumentNotFoundError(id any) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		ErrNotFound.errorCode,
		fmt.Sprintf("No document found with that ID(%v)", id),
		"",
	)
}

// NewRouteNotFoundError reports a request for a path no route serves.
func NewRouteNotFoundError(url string) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		fmt.Sprintf("Can't find %s on this server!", url),
		"",
	)
}

// NewCastError reports a value that cannot be converted to the type of path.
func NewCastError(path, value string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INVALID_FORMAT",
		fmt.Sprintf("Invalid %s with value %s", path, value),
		"",
	)
}

// NewDuplicateFieldError reports a uniqueness violation on field.
// Clients receive it as 404.
func NewDuplicateFieldError(field, value string) *BaseError {
	return NewBaseError(
		http.StatusNotFound,
		"DUPLICATE_FIELD",
		fmt.Sprintf("Duplicate field %s: %s. Please use another %s!", field, value, field),
		"",
	)
}

// NewTooManyRequestsError is returned once a client exhausts its request quota.
func NewTooManyRequestsError(windowMinutes int) *BaseError {
	return NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		fmt.Sprintf("Too many requests from this IP, please try again in %d minutes", windowMinutes),
		"",
	)
}

// ValidationError collects every failed field rule of a document.
type ValidationError struct {
	Fields map[string]string
	order  []string
}

// NewValidationError creates an empty ValidationError; add failures with Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records the first failure message for field.
func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = message
	e.order = append(e.order, field)
}

// Merge adds the failures of other that e does not have yet.
func (e *ValidationError) Merge(other *ValidationError) {
	for _, field := range other.order {
		e.Add(field, other.Fields[field])
	}
}

// Messages returns the failure messages in the order they were added.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.order))
	for _, field := range e.order {
		messages = append(messages, e.Fields[field])
	}

	return messages
}

// ErrOrNil returns e when it has failures.
func (e *ValidationError) ErrOrNil() error {
	if e == nil || len(e.order) == 0 {
		return nil
	}

	return e
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), ", ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.errorCode
}

// Message reads "<m1>. <m2>".
func (e *ValidationError) Message() string {
	return strings.Join(e.Messages(), ". ")
}

func (e *ValidationError) Details() string {
	return strings.Join(e.order, ",")
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Operational is false: driver failures are never shown to clients in production.
func (e *DatabaseExecuteError) Operational() bool {
	return false
}
