// Package errors provides custom error types for the Tripkit API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Date and range errors.
var (
	ErrInvalidDateFormat = &AppError{Code: "INVALID_DATE_FORMAT", Message: "Dates must be in YYYY-MM-DD format", StatusCode: http.StatusBadRequest}
	ErrEndBeforeStart    = &AppError{Code: "END_BEFORE_START", Message: "End date cannot be before start date", StatusCode: http.StatusBadRequest}
)

// Trip errors.
var (
	ErrTripNotFound = &AppError{Code: "TRIP_NOT_FOUND", Message: "Trip not found", StatusCode: http.StatusNotFound}
)

// Itinerary errors.
var (
	ErrDayNotFound = &AppError{Code: "DAY_NOT_FOUND", Message: "Itinerary day not found", StatusCode: http.StatusNotFound}
)

// Stop errors.
var (
	ErrStopOutOfRange = &AppError{Code: "STOP_OUT_OF_RANGE", Message: "Stop dates must fall within the overall trip dates", StatusCode: http.StatusBadRequest}
)

// Checklist errors.
var (
	ErrItemNotFound = &AppError{Code: "ITEM_NOT_FOUND", Message: "Checklist item not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetItemNotFound = &AppError{Code: "BUDGET_ITEM_NOT_FOUND", Message: "Budget item not found", StatusCode: http.StatusNotFound}
)

// Packing errors.
var (
	ErrPackingItemNotFound = &AppError{Code: "PACKING_ITEM_NOT_FOUND", Message: "Packing item not found", StatusCode: http.StatusNotFound}
)

// CSV import errors.
var (
	ErrNoValidCSVRows = &AppError{Code: "NO_VALID_CSV_ROWS", Message: "No valid rows found in CSV", StatusCode: http.StatusBadRequest}
	ErrCSVOutOfRange  = &AppError{Code: "CSV_OUT_OF_RANGE", Message: "CSV rows are all outside the current trip dates", StatusCode: http.StatusBadRequest}
)
