package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const defaultHistoryLimit = 100

// ListHistoryByTaskHandler returns the audit trail of one task, newest
// first. The trail survives task deletion.
func ListHistoryByTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.ParseInt(mux.Vars(r)["taskId"], 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}
	list, err := history.ListHistoryByTask(taskID)
	if err != nil {
		respondStoreError(w, err, "Failed to list task history", "")
		return
	}
	details, err := populateHistory(list)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve history references", "")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// ListHistoryHandler is the global audit feed capped at ?limit=
// (default 100).
func ListHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := history.ListHistory(limit)
	if err != nil {
		respondStoreError(w, err, "Failed to list history", "")
		return
	}
	details, err := populateHistory(list)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve history references", "")
		return
	}
	respondJSON(w, http.StatusOK, details)
}
