package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError maps the error taxonomy onto HTTP status codes. Errors outside
// the taxonomy are logged and answered with a generic 500 body; their text
// can carry store or driver detail that does not belong on the wire.
func WriteError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		status = http.StatusConflict
	default:
		log.Printf("internal error: %v", err)
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	WriteJSON(w, status, errorResponse{Error: err.Error()})
}
