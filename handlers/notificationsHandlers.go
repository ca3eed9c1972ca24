package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const notificationsLimit = 100

// ListNotificationsHandler returns the caller's notifications, newest
// first, optionally filtered by ?read=true|false.
func ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var read *bool
	if raw := r.URL.Query().Get("read"); raw != "" {
		v := raw == "true"
		read = &v
	}

	list, err := notifications.ListNotificationsForUser(caller.ID, read, notificationsLimit)
	if err != nil {
		respondStoreError(w, err, "Failed to list notifications", "")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// MarkNotificationsReadHandler flips all of the caller's unread
// notifications in one bulk transition.
func MarkNotificationsReadHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := notifications.MarkAllRead(caller.ID); err != nil {
		respondStoreError(w, err, "Failed to mark notifications read", "")
		return
	}
	respondMessage(w, http.StatusOK, "Notifications marked as read")
}

// DeleteNotificationHandler removes one notification; only its
// recipient may do so.
func DeleteNotificationHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	notification, err := notifications.GetNotificationByID(id)
	if err != nil {
		respondStoreError(w, err, "Failed to fetch notification", "Notification not found")
		return
	}
	if notification.UserID != caller.ID {
		respondMessage(w, http.StatusForbidden, "Not authorized")
		return
	}

	if err := notifications.DeleteNotification(id); err != nil {
		respondStoreError(w, err, "Failed to delete notification", "Notification not found")
		return
	}
	respondMessage(w, http.StatusOK, "Notification deleted successfully")
}
