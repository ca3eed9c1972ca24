package handlers

import "net/http"

// HealthHandler is the unauthenticated liveness probe.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Task Manager API is running",
	})
}
