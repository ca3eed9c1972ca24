package models

import "time"

// Task statuses and priorities keep the values the web client renders.
const (
	StatusPendiente  = "Pendiente"
	StatusEnProgreso = "En Progreso"
	StatusCompletada = "Completada"
	StatusBloqueada  = "Bloqueada"
	StatusCancelada  = "Cancelada"

	PriorityBaja    = "Baja"
	PriorityMedia   = "Media"
	PriorityAlta    = "Alta"
	PriorityCritica = "Crítica"
)

// ValidStatuses and ValidPriorities are the accepted enum values.
var (
	ValidStatuses = map[string]bool{
		StatusPendiente:  true,
		StatusEnProgreso: true,
		StatusCompletada: true,
		StatusBloqueada:  true,
		StatusCancelada:  true,
	}
	ValidPriorities = map[string]bool{
		PriorityBaja:    true,
		PriorityMedia:   true,
		PriorityAlta:    true,
		PriorityCritica: true,
	}
)

// Task is the stored form: references are plain identifiers, resolved
// only at read time.
type Task struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	ProjectID      *int64     `json:"projectId"`
	AssignedTo     *int64     `json:"assignedTo"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours float64    `json:"estimatedHours"`
	ActualHours    float64    `json:"actualHours"`
	CreatedBy      int64      `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// TaskDetails is the populated read form returned by the API: foreign
// identifiers replaced by display references, nil when the referenced
// document is gone.
type TaskDetails struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Status         string      `json:"status"`
	Priority       string      `json:"priority"`
	Project        *ProjectRef `json:"projectId"`
	AssignedTo     *UserRef    `json:"assignedTo"`
	DueDate        *time.Time  `json:"dueDate"`
	EstimatedHours float64     `json:"estimatedHours"`
	ActualHours    float64     `json:"actualHours"`
	CreatedBy      *UserRef    `json:"createdBy"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// CreateTaskInput carries a task creation payload. DueDate arrives as a
// string and is normalized by the handler before persistence.
type CreateTaskInput struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	ProjectID      *int64  `json:"projectId"`
	AssignedTo     *int64  `json:"assignedTo"`
	DueDate        *string `json:"dueDate"`
	EstimatedHours float64 `json:"estimatedHours"`
	ActualHours    float64 `json:"actualHours"`
}

// UpdateTaskInput uses pointers so unsupplied keys keep their stored
// values when merged onto the existing task.
type UpdateTaskInput struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Status         *string  `json:"status"`
	Priority       *string  `json:"priority"`
	ProjectID      *int64   `json:"projectId"`
	AssignedTo     *int64   `json:"assignedTo"`
	DueDate        *string  `json:"dueDate"`
	EstimatedHours *float64 `json:"estimatedHours"`
	ActualHours    *float64 `json:"actualHours"`
}

// TaskFilter holds the conjunctive search filters. Empty string (or the
// "0" sentinel for ProjectID) means the filter is not applied.
type TaskFilter struct {
	SearchText string
	Status     string
	Priority   string
	ProjectID  string
}
