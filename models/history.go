package models

import "time"

// History actions. Entries are append-only and never modified after the
// initial insert.
const (
	ActionCreated         = "CREATED"
	ActionUpdated         = "UPDATED"
	ActionDeleted         = "DELETED"
	ActionStatusChanged   = "STATUS_CHANGED"
	ActionTitleChanged    = "TITLE_CHANGED"
	ActionPriorityChanged = "PRIORITY_CHANGED"
	ActionAssigned        = "ASSIGNED"
)

type History struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"taskId"`
	UserID    int64     `json:"userId"`
	Action    string    `json:"action"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryDetails is the populated read form. Task is nil for entries
// whose task has since been deleted.
type HistoryDetails struct {
	ID        int64     `json:"id"`
	Task      *TaskRef  `json:"taskId"`
	User      *UserRef  `json:"userId"`
	Action    string    `json:"action"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskRef is the projected form of a task reference.
type TaskRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
