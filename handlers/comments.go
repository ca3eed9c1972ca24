package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"taskmanager/models"
	"taskmanager/utilities"
	"taskmanager/validators"

	"github.com/gorilla/mux"
)

// ListCommentsByTaskHandler returns a task's comments newest first with
// authors resolved. Works for deleted tasks too: comments are orphaned,
// not removed.
func ListCommentsByTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.ParseInt(mux.Vars(r)["taskId"], 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}
	list, err := comments.ListCommentsByTask(taskID)
	if err != nil {
		respondStoreError(w, err, "Failed to list comments", "")
		return
	}
	details, err := populateComments(list)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve comment authors", "")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// CreateCommentHandler stores a comment authored by the caller. The
// author is never taken from the request body.
func CreateCommentHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input models.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	defer r.Body.Close()

	if errs := validators.ValidateCommentInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	comment := models.Comment{
		TaskID:      input.TaskID,
		UserID:      caller.ID,
		CommentText: input.CommentText,
	}
	if err := comments.CreateComment(&comment); err != nil {
		respondStoreError(w, err, "Failed to create comment", "")
		return
	}

	author, err := lookupUserRef(comment.UserID)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve comment author", "")
		return
	}
	utilities.LogInfo("Comment created on task %d by %s", comment.TaskID, caller.Username)
	respondJSON(w, http.StatusCreated, models.CommentDetails{
		ID:          comment.ID,
		TaskID:      comment.TaskID,
		User:        author,
		CommentText: comment.CommentText,
		CreatedAt:   comment.CreatedAt,
		UpdatedAt:   comment.UpdatedAt,
	})
}

// DeleteCommentHandler removes one comment; only its author may do so.
func DeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	comment, err := comments.GetCommentByID(id)
	if err != nil {
		respondStoreError(w, err, "Failed to fetch comment", "Comment not found")
		return
	}
	if comment.UserID != caller.ID {
		respondMessage(w, http.StatusForbidden, "Not authorized to delete this comment")
		return
	}

	if err := comments.DeleteComment(id); err != nil {
		respondStoreError(w, err, "Failed to delete comment", "Comment not found")
		return
	}
	respondMessage(w, http.StatusOK, "Comment deleted successfully")
}
