package store

import "taskmanager/models"

// Repository interfaces consumed by the handlers. Storage implements all
// of them; tests substitute in-memory fakes.

type UserRepository interface {
	CreateUser(u *models.User) error
	GetUserByID(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	ListUsers() ([]models.User, error)
}

type ProjectRepository interface {
	CreateProject(p *models.Project) error
	GetProjectByID(id int64) (*models.Project, error)
	ListProjects() ([]models.Project, error)
	UpdateProject(p *models.Project) error
	DeleteProject(id int64) error
}

type TaskRepository interface {
	CreateTask(t *models.Task) error
	GetTaskByID(id int64) (*models.Task, error)
	ListTasks() ([]models.Task, error)
	SearchTasks(f models.TaskFilter) ([]models.Task, error)
	UpdateTask(t *models.Task) error
	DeleteTask(id int64) error
}

type CommentRepository interface {
	CreateComment(c *models.Comment) error
	GetCommentByID(id int64) (*models.Comment, error)
	ListCommentsByTask(taskID int64) ([]models.Comment, error)
	DeleteComment(id int64) error
}

type HistoryRepository interface {
	AppendHistory(h *models.History) error
	ListHistoryByTask(taskID int64) ([]models.History, error)
	ListHistory(limit int) ([]models.History, error)
}

type NotificationRepository interface {
	CreateNotification(n *models.Notification) error
	GetNotificationByID(id int64) (*models.Notification, error)
	ListNotificationsForUser(userID int64, read *bool, limit int) ([]models.Notification, error)
	MarkAllRead(userID int64) error
	DeleteNotification(id int64) error
}
