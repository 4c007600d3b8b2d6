package errors

import (
	"encoding/json"
	"errors"
)

// ErrorCode represents a specific error code.
type ErrorCode string

// GenericErrorCode is used for errors that carry no code of their own.
const GenericErrorCode ErrorCode = "0"

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	errorJSON, _ := json.Marshal(e)
	return string(errorJSON)
}

// Is matches another ErrorResponse by code, so wrapped copies still compare equal.
func (e *ErrorResponse) Is(target error) bool {
	var other *ErrorResponse
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// CreateErrorResponseFromError creates an ErrorResponse from a generic error.
// Wrapped ErrorResponses are unwrapped and returned as is.
func CreateErrorResponseFromError(err error) error {
	if err == nil {
		return nil
	}
	var errResp *ErrorResponse
	if errors.As(err, &errResp) {
		return errResp
	}
	return &ErrorResponse{
		Code:    GenericErrorCode,
		Details: err.Error(),
	}
}
