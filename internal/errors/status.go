package errors

import (
	"context"
	"errors"
	"net/http"
)

// Generic messages shown when the API gives no readable explanation.
const (
	MsgGeneric      = "Something went wrong. Please try again."
	MsgTimeout      = "The request timed out. Please try again."
	MsgCanceled     = "The request was canceled."
	MsgUnavailable  = "The academy service is unavailable. Please try again later."
	MsgUnauthorized = "Your session with the academy service has expired. Please sign in again."
	MsgForbidden    = "You do not have permission to perform this action."
	MsgNotFound     = "The requested record was not found."
)

// CodeForStatus maps an HTTP status returned by the academy API to an ErrorCode.
func CodeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return ErrCodeNotFound
	case status == http.StatusConflict:
		return ErrCodeConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case status == http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case status == http.StatusForbidden:
		return ErrCodeForbidden
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeUpstream
	}
}

// FallbackMessage returns the generic message for a status with no readable body.
func FallbackMessage(status int) string {
	switch CodeForStatus(status) {
	case ErrCodeNotFound:
		return MsgNotFound
	case ErrCodeUnauthorized:
		return MsgUnauthorized
	case ErrCodeForbidden:
		return MsgForbidden
	case ErrCodeTimeout:
		return MsgTimeout
	case ErrCodeUpstream:
		if status >= http.StatusInternalServerError {
			return MsgUnavailable
		}
		return MsgGeneric
	default:
		return MsgGeneric
	}
}

// FromStatus builds an AppError for a failed API call. An empty message falls back to
// the generic message for the status.
func FromStatus(status int, message string, cause error) *AppError {
	if message == "" {
		message = FallbackMessage(status)
	}
	return &AppError{Code: CodeForStatus(status), Message: message, Cause: cause}
}

// FromTransport maps a transport-level failure (no HTTP response) to an AppError.
func FromTransport(err error) *AppError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &AppError{Code: ErrCodeTimeout, Message: MsgTimeout, Cause: err}
	case errors.Is(err, context.Canceled):
		return &AppError{Code: ErrCodeCanceled, Message: MsgCanceled, Cause: err}
	default:
		return &AppError{Code: ErrCodeUpstream, Message: MsgUnavailable, Cause: err}
	}
}
