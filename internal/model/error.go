package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidArgument creates an InvalidArgument error with a formatted message.
func NewInvalidArgument(format string, args ...any) *DomainError {
	return NewDomainError(ErrCodeInvalidArgument, fmt.Sprintf(format, args...))
}

// Common domain errors
var (
	ErrOrderNotFound       = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrProductNotFound     = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrProductNameConflict = NewDomainError(ErrCodeConflict, "Product with this name already exists")
	ErrLengthMismatch      = NewDomainError(ErrCodeInvalidArgument, "Product IDs and amounts array lengths must match")
	ErrInvalidAmount       = NewDomainError(ErrCodeInvalidArgument, "Amount must be greater than zero")
)
