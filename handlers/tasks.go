package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"taskmanager/audit"
	"taskmanager/models"
	"taskmanager/reports"
	"taskmanager/utilities"
	"taskmanager/validators"

	"github.com/gorilla/mux"
)

var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDueDate normalizes the client-supplied due date string. A nil
// input means "not supplied".
func parseDueDate(raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func taskIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// ListTasksHandler returns every task, reference-resolved, newest first.
func ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	list, err := tasks.ListTasks()
	if err != nil {
		respondStoreError(w, err, "Failed to list tasks", "")
		return
	}
	details, err := populateTasks(list)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve task references", "")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// GetTaskHandler returns one task in its populated form.
func GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDFromPath(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}
	task, err := tasks.GetTaskByID(id)
	if err != nil {
		respondStoreError(w, err, "Failed to fetch task", "Task not found")
		return
	}
	details, err := populateTask(*task)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve task references", "")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// CreateTaskHandler persists a new task, appends its CREATED history
// entry and notifies the assignee when someone else assigned it.
func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input models.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	defer r.Body.Close()

	if errs := validators.ValidateTaskInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}
	dueDate, ok := parseDueDate(input.DueDate)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid due date format")
		return
	}

	task := models.Task{
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		Priority:       input.Priority,
		ProjectID:      input.ProjectID,
		AssignedTo:     input.AssignedTo,
		DueDate:        dueDate,
		EstimatedHours: input.EstimatedHours,
		ActualHours:    input.ActualHours,
		CreatedBy:      caller.ID,
	}
	if err := tasks.CreateTask(&task); err != nil {
		respondStoreError(w, err, "Failed to create task", "")
		return
	}

	entry := audit.CreationEntry(task, caller)
	if err := history.AppendHistory(&entry); err != nil {
		respondStoreError(w, err, "Failed to append creation history", "")
		return
	}

	if n := audit.AssignmentNotification(task, caller, true); n != nil {
		if err := notifications.CreateNotification(n); err != nil {
			respondStoreError(w, err, "Failed to create assignment notification", "")
			return
		}
	}

	details, err := populateTask(task)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve task references", "")
		return
	}
	utilities.LogInfo("Task created: %s (id %d)", task.Title, task.ID)
	respondJSON(w, http.StatusCreated, details)
}

// UpdateTaskHandler merges the payload onto the stored task. History
// entries for the tracked fields are written from the pre-update
// snapshot before the task row changes; the assignee is notified on
// every update made by someone else.
func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := taskIDFromPath(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	existing, err := tasks.GetTaskByID(id)
	if err != nil {
		respondStoreError(w, err, "Failed to fetch task", "Task not found")
		return
	}

	var input models.UpdateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	defer r.Body.Close()

	if errs := validators.ValidateTaskUpdate(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}
	dueDate, ok := parseDueDate(input.DueDate)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid due date format")
		return
	}

	entries := audit.TrackChanges(*existing, input, caller)
	for i := range entries {
		if err := history.AppendHistory(&entries[i]); err != nil {
			respondStoreError(w, err, "Failed to append history entry", "")
			return
		}
	}

	task := mergeTaskUpdate(*existing, input, dueDate)
	if err := tasks.UpdateTask(&task); err != nil {
		respondStoreError(w, err, "Failed to update task", "Task not found")
		return
	}

	if n := audit.AssignmentNotification(task, caller, false); n != nil {
		if err := notifications.CreateNotification(n); err != nil {
			respondStoreError(w, err, "Failed to create update notification", "")
			return
		}
	}

	details, err := populateTask(task)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve task references", "")
		return
	}
	utilities.LogInfo("Task updated: %s (id %d)", task.Title, task.ID)
	respondJSON(w, http.StatusOK, details)
}

// mergeTaskUpdate overlays the supplied fields onto the stored task;
// unsupplied keys keep their prior values.
func mergeTaskUpdate(t models.Task, in models.UpdateTaskInput, dueDate *time.Time) models.Task {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.ProjectID != nil {
		t.ProjectID = in.ProjectID
	}
	if in.AssignedTo != nil {
		t.AssignedTo = in.AssignedTo
	}
	if dueDate != nil {
		t.DueDate = dueDate
	}
	if in.EstimatedHours != nil {
		t.EstimatedHours = *in.EstimatedHours
	}
	if in.ActualHours != nil {
		t.ActualHours = *in.ActualHours
	}
	return t
}

// DeleteTaskHandler removes a task after recording its DELETED history
// entry. Any authenticated caller may delete any task; comments and
// history referencing it are left in place.
func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := taskIDFromPath(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := tasks.GetTaskByID(id)
	if err != nil {
		respondStoreError(w, err, "Failed to fetch task", "Task not found")
		return
	}

	entry := audit.DeletionEntry(*task, caller)
	if err := history.AppendHistory(&entry); err != nil {
		respondStoreError(w, err, "Failed to append deletion history", "")
		return
	}
	if err := tasks.DeleteTask(id); err != nil {
		respondStoreError(w, err, "Failed to delete task", "Task not found")
		return
	}

	utilities.LogInfo("Task deleted: %s (id %d)", task.Title, task.ID)
	respondMessage(w, http.StatusOK, "Task deleted successfully")
}

// SearchTasksHandler filters tasks by free text, status, priority and
// project.
func SearchTasksHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.TaskFilter{
		SearchText: q.Get("searchText"),
		Status:     q.Get("status"),
		Priority:   q.Get("priority"),
		ProjectID:  q.Get("projectId"),
	}

	list, err := tasks.SearchTasks(filter)
	if err != nil {
		respondStoreError(w, err, "Failed to search tasks", "")
		return
	}
	details, err := populateTasks(list)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve task references", "")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// TaskStatsHandler folds the whole task collection into the dashboard
// counters.
func TaskStatsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := tasks.ListTasks()
	if err != nil {
		respondStoreError(w, err, "Failed to list tasks", "")
		return
	}
	respondJSON(w, http.StatusOK, reports.TaskStats(list, time.Now()))
}
