package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the backend's error envelope. Every non-2xx response decodes
// into one; when the backend sent no envelope, Message falls back to a
// generic per-status description.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	TraceID string `json:"traceId"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// fallbackMessage mirrors the generic descriptions the web client showed
// when the backend sent no envelope.
func fallbackMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid request, check the submitted data"
	case http.StatusUnauthorized:
		return "not authorized, please sign in again"
	case http.StatusForbidden:
		return "you do not have permission to perform this action"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusInternalServerError:
		return "internal server error, try again later"
	default:
		return "an unexpected error occurred"
	}
}

// IsUnauthorized reports whether err is a backend rejection of the
// credential (HTTP 401).
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
