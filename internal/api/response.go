package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zapponejosh/tredeco-api/internal/tredeco"
)

// Response represents a standard API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes returned alongside 400 responses for calendar input.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeInvalidDay      = "INVALID_DAY"
	CodeInvalidMonth    = "INVALID_MONTH"
	CodeNoBix           = "NO_BIX"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, "NOT_FOUND")
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, code ...string) error {
	if len(code) == 0 {
		code = []string{"BAD_REQUEST"}
	}
	return WriteError(w, http.StatusBadRequest, message, code...)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, "INTERNAL_ERROR")
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, "UNAUTHORIZED")
}

// calendarErrorCode maps a calendar engine error to its API code. The
// order matters: a day outside 1-28 matches both ErrInvalidDay and
// ErrOutOfRange and reports INVALID_DAY. ok is false for errors that are
// not caused by the caller's input.
func calendarErrorCode(err error) (code string, ok bool) {
	switch {
	case errors.Is(err, tredeco.ErrInvariant):
		return "", false
	case errors.Is(err, tredeco.ErrNoBix):
		return CodeNoBix, true
	case errors.Is(err, tredeco.ErrInvalidDay):
		return CodeInvalidDay, true
	case errors.Is(err, tredeco.ErrInvalidArgument):
		return CodeInvalidArgument, true
	case errors.Is(err, tredeco.ErrInvalidMonth):
		return CodeInvalidMonth, true
	case errors.Is(err, tredeco.ErrOutOfRange):
		return CodeOutOfRange, true
	}
	return "", false
}
