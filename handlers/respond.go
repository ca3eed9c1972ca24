package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskmanager/store"
	"taskmanager/utilities"
	"taskmanager/validators"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		utilities.LogError(err, "Failed to encode JSON response")
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondValidationErrors rejects the whole write with the field-level
// violation list.
func respondValidationErrors(w http.ResponseWriter, errs []validators.FieldError) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
}

// respondStoreError maps store failures onto the error taxonomy: absent
// documents become 404, everything else is a logged 500.
func respondStoreError(w http.ResponseWriter, err error, context, notFoundMessage string) {
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, notFoundMessage)
		return
	}
	utilities.LogError(err, context)
	respondMessage(w, http.StatusInternalServerError, "Server error")
}
