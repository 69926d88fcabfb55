package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roach88/quickcart/internal/model"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a {"error": msg} body.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// respondErr maps controller errors onto HTTP statuses.
//
//	401 no session / bad credentials
//	403 role gate
//	404 unknown product or user
//	409 blocked by policy (self-delete, email taken)
//	422 validation failure (missing fields, empty cart, bad price)
func respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrLoggedOut), errors.Is(err, model.ErrBadCredentials):
		JSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, model.ErrNotAdmin):
		JSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, model.ErrProductNotFound), errors.Is(err, model.ErrUserNotFound):
		JSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrSelfDelete), errors.Is(err, model.ErrEmailTaken):
		JSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrMissingFields), errors.Is(err, model.ErrEmptyCart):
		JSONError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		JSONError(w, http.StatusInternalServerError, err.Error())
	}
}

// decode reads a JSON request body into v, capped at 1MB.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	if dec.More() {
		JSONError(w, http.StatusBadRequest, "invalid JSON (extra content)")
		return false
	}
	return true
}
