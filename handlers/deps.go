package handlers

import "taskmanager/store"

// Package-level repositories, installed once at startup. Tests swap in
// in-memory fakes.
var (
	users         store.UserRepository
	projects      store.ProjectRepository
	tasks         store.TaskRepository
	comments      store.CommentRepository
	history       store.HistoryRepository
	notifications store.NotificationRepository
)

// Init installs the storage behind every handler.
func Init(s *store.Storage) {
	users = s
	projects = s
	tasks = s
	comments = s
	history = s
	notifications = s
}
