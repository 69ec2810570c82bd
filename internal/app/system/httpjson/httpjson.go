// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the small JSON response helpers shared by the
// feature handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/guildroster/internal/app/roster"
)

// Write encodes v as the JSON response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

// Error writes a JSON error body with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// WriteRosterError maps a roster package error to an HTTP status and
// writes it. Unknown errors become 500 with a generic message so store
// internals never leak to clients.
func WriteRosterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roster.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, roster.ErrGroupFull),
		errors.Is(err, roster.ErrPartyFull):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, roster.ErrPositionMismatch):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, roster.ErrInvalidSlotCount),
		errors.Is(err, roster.ErrInvalidSlotIndex),
		errors.Is(err, roster.ErrActivityMismatch):
		Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
