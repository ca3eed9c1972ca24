package handlers

import (
	"net/http"

	"taskmanager/reports"
	"taskmanager/utilities"
)

// TasksReportHandler counts tasks per status over the whole collection.
func TasksReportHandler(w http.ResponseWriter, r *http.Request) {
	list, err := tasks.ListTasks()
	if err != nil {
		respondStoreError(w, err, "Failed to list tasks for report", "")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"type":  "tasks",
		"data":  reports.StatusHistogram(list),
		"total": len(list),
	})
}

// ProjectsReportHandler counts tasks per project.
func ProjectsReportHandler(w http.ResponseWriter, r *http.Request) {
	projectList, err := projects.ListProjects()
	if err != nil {
		respondStoreError(w, err, "Failed to list projects for report", "")
		return
	}
	taskList, err := tasks.ListTasks()
	if err != nil {
		respondStoreError(w, err, "Failed to list tasks for report", "")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"type":  "projects",
		"data":  reports.ProjectTaskCounts(projectList, taskList),
		"total": len(projectList),
	})
}

// UsersReportHandler counts tasks per assignee.
func UsersReportHandler(w http.ResponseWriter, r *http.Request) {
	userList, err := users.ListUsers()
	if err != nil {
		respondStoreError(w, err, "Failed to list users for report", "")
		return
	}
	taskList, err := tasks.ListTasks()
	if err != nil {
		respondStoreError(w, err, "Failed to list tasks for report", "")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"type":  "users",
		"data":  reports.UserTaskCounts(userList, taskList),
		"total": len(userList),
	})
}

// ExportTasksCSVHandler streams the populated task list as CSV.
func ExportTasksCSVHandler(w http.ResponseWriter, r *http.Request) {
	list, err := tasks.ListTasks()
	if err != nil {
		respondStoreError(w, err, "Failed to list tasks for export", "")
		return
	}
	details, err := populateTasks(list)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve task references", "")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=export_tasks.csv")
	if err := reports.WriteTasksCSV(w, details); err != nil {
		utilities.LogError(err, "Failed to write CSV export")
	}
}
