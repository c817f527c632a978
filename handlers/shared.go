package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"prode-go/database"
	"prode-go/logging"
	"prode-go/services"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logging.Errorf("Failed to encode response: %v", err)
		}
	}
}

// respondError maps a service error to an HTTP status and writes it as JSON
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, database.ErrUserNotFound),
		errors.Is(err, database.ErrGroupNotFound),
		errors.Is(err, database.ErrMatchNotFound),
		errors.Is(err, database.ErrPaymentNotFound),
		errors.Is(err, services.ErrJornadaNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNotGroupMember):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrAlreadyFinalized),
		errors.Is(err, services.ErrMatchNotFinished),
		errors.Is(err, services.ErrPredictionsLocked),
		errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPaymentNotPending),
		errors.Is(err, database.ErrMatchFinished):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidOutcome),
		errors.Is(err, services.ErrOutcomeRequired),
		errors.Is(err, services.ErrInvalidUpgradeRole):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logging.Errorf("Request failed: %v", err)
		respondJSON(w, status, map[string]string{"error": "internal server error"})
		return
	}

	respondJSON(w, status, map[string]string{"error": err.Error()})
}

// respondBadRequest writes a 400 with the given message
func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}

// decodeJSON parses the request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
