package models

import "time"

// Notification types.
const (
	NotificationTaskAssigned  = "task_assigned"
	NotificationTaskUpdated   = "task_updated"
	NotificationTaskCompleted = "task_completed"
	NotificationCommentAdded  = "comment_added"
	NotificationSystem        = "system"
)

var ValidNotificationTypes = map[string]bool{
	NotificationTaskAssigned:  true,
	NotificationTaskUpdated:   true,
	NotificationTaskCompleted: true,
	NotificationCommentAdded:  true,
	NotificationSystem:        true,
}

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
