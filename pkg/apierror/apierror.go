package apierror

import (
	"errors"
	"fmt"
)

// Error codes shared across resources. Handlers translate these into an
// HTTP status and a user-facing message.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicateID       = "DUPLICATE_ID"
	CodeAlreadyActive     = "ALREADY_ACTIVE"
	CodeNullResponse      = "NULL_RESPONSE"
	CodeEmptyResponse     = "EMPTY_RESPONSE"
	CodeNoResultsFound    = "NO_RESULTS_FOUND"
	CodeIncompleteData    = "INCOMPLETE_DATA"
	CodeDataFormatError   = "DATA_FORMAT_ERROR"
	CodeResourceNotFound  = "RESOURCE_NOT_FOUND"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeBadRequest        = "BAD_REQUEST"
	CodeEncodingError     = "ENCODING_ERROR"
	CodeProcessingError   = "PROCESSING_ERROR"
	CodeDownloadError     = "DOWNLOAD_ERROR"
	CodeTimeout           = "TIMEOUT"
	CodeInvalidVideoID    = "INVALID_VIDEO_ID"
	CodeInvalidQuality    = "INVALID_QUALITY"
)

// Error is a failure with a stable code and the resource it belongs to.
type Error struct {
	Resource string
	Code     string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.Resource, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Resource, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error without an underlying cause.
func New(resource, code, message string) *Error {
	return &Error{Resource: resource, Code: code, Message: message}
}

// Wrap builds an Error around an underlying cause.
func Wrap(resource, code, message string, err error) *Error {
	return &Error{Resource: resource, Code: code, Message: message, Err: err}
}

// CodeOf extracts the error code, or empty string if err is not an *Error.
func CodeOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// Is reports whether err is an *Error carrying the given code.
func Is(err error, code string) bool {
	return CodeOf(err) == code
}
