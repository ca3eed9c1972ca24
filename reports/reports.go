// Package reports computes the aggregate views by folding whole
// collections in memory. None of these scans paginate; cost grows
// linearly with collection size.
package reports

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"taskmanager/models"
)

// Stats is the dashboard summary returned by GET /api/tasks/stats.
type Stats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Pending      int `json:"pending"`
	HighPriority int `json:"highPriority"`
	Overdue      int `json:"overdue"`
}

// TaskStats folds the full task list into the dashboard counters.
// Pending means any status other than Completada; overdue requires a
// due date in the past on a task that is not Completada.
func TaskStats(tasks []models.Task, now time.Time) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == models.StatusCompletada {
			s.Completed++
		} else {
			s.Pending++
		}
		if t.Priority == models.PriorityAlta || t.Priority == models.PriorityCritica {
			s.HighPriority++
		}
		if t.DueDate != nil && t.Status != models.StatusCompletada && t.DueDate.Before(now) {
			s.Overdue++
		}
	}
	return s
}

// StatusHistogram counts tasks per status. An unset status counts as
// Pendiente.
func StatusHistogram(tasks []models.Task) map[string]int {
	counts := map[string]int{}
	for _, t := range tasks {
		status := t.Status
		if status == "" {
			status = models.StatusPendiente
		}
		counts[status]++
	}
	return counts
}

// ProjectTaskCount pairs a project with the number of tasks pointing at it.
type ProjectTaskCount struct {
	ProjectName string `json:"projectName"`
	TaskCount   int    `json:"taskCount"`
}

// ProjectTaskCounts counts, for every project, the tasks whose projectId
// references it. Plain nested scan; fine at this collection size.
func ProjectTaskCounts(projects []models.Project, tasks []models.Task) []ProjectTaskCount {
	report := make([]ProjectTaskCount, 0, len(projects))
	for _, p := range projects {
		count := 0
		for _, t := range tasks {
			if t.ProjectID != nil && *t.ProjectID == p.ID {
				count++
			}
		}
		report = append(report, ProjectTaskCount{ProjectName: p.Name, TaskCount: count})
	}
	return report
}

// UserTaskCount pairs a user with the number of tasks assigned to them.
type UserTaskCount struct {
	Username  string `json:"username"`
	TaskCount int    `json:"taskCount"`
}

// UserTaskCounts counts tasks per assignee.
func UserTaskCounts(users []models.User, tasks []models.Task) []UserTaskCount {
	report := make([]UserTaskCount, 0, len(users))
	for _, u := range users {
		count := 0
		for _, t := range tasks {
			if t.AssignedTo != nil && *t.AssignedTo == u.ID {
				count++
			}
		}
		report = append(report, UserTaskCount{Username: u.Username, TaskCount: count})
	}
	return report
}

// CSV export placeholders for unresolved references.
const (
	csvNoProject  = "Sin proyecto"
	csvUnassigned = "Sin asignar"
)

// WriteTasksCSV renders the populated task list as CSV. encoding/csv
// handles quoting, so titles containing quotes or commas survive intact.
func WriteTasksCSV(w io.Writer, tasks []models.TaskDetails) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Título", "Estado", "Prioridad", "Proyecto", "Asignado a"}); err != nil {
		return err
	}
	for _, t := range tasks {
		projectName := csvNoProject
		if t.Project != nil {
			projectName = t.Project.Name
		}
		assignee := csvUnassigned
		if t.AssignedTo != nil {
			assignee = t.AssignedTo.Username
		}
		status := t.Status
		if status == "" {
			status = models.StatusPendiente
		}
		priority := t.Priority
		if priority == "" {
			priority = models.PriorityMedia
		}
		row := []string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			status,
			priority,
			projectName,
			assignee,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
