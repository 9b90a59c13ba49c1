package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeEmptyInput       = "EMPTY_INPUT"
	ErrCodeSpaceIncluded    = "SPACE_INCLUDED"
	ErrCodeNotInteger       = "NOT_INTEGER"
	ErrCodeOutOfLength      = "OUT_OF_LENGTH"
	ErrCodeDuplicatedNumber = "DUPLICATED_NUMBER"
	ErrCodeOutOfNumberRange = "OUT_OF_NUMBER_RANGE"

	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeInvalidQuery  = "INVALID_QUERY"
	ErrCodeInvalidID     = "INVALID_ID"
	ErrCodeDrawNotFound  = "DRAW_NOT_FOUND"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeInternalError = "INTERNAL_ERROR"
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

// Input validation errors. Each rejected input maps to exactly one of these.
var (
	ErrEmptyInput       = NewDomainError(ErrCodeEmptyInput, "Input must not be empty")
	ErrSpaceIncluded    = NewDomainError(ErrCodeSpaceIncluded, "Input must not contain spaces")
	ErrNotInteger       = NewDomainError(ErrCodeNotInteger, "Input must be an integer")
	ErrOutOfLength      = NewDomainError(ErrCodeOutOfLength, "Exactly 6 winning numbers separated by commas are required")
	ErrDuplicatedNumber = NewDomainError(ErrCodeDuplicatedNumber, "Lotto numbers must not be duplicated")
	ErrOutOfNumberRange = NewDomainError(ErrCodeOutOfNumberRange, "Lotto numbers must be between 1 and 45")
)

var validationErrors = []*DomainError{
	ErrEmptyInput,
	ErrSpaceIncluded,
	ErrNotInteger,
	ErrOutOfLength,
	ErrDuplicatedNumber,
	ErrOutOfNumberRange,
}

// CodeOf returns the domain error code carried by err, if any.
func CodeOf(err error) (string, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}

// IsValidationError reports whether err is one of the input validation errors.
func IsValidationError(err error) bool {
	for _, ve := range validationErrors {
		if errors.Is(err, ve) {
			return true
		}
	}
	return false
}
