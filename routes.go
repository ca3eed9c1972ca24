package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"taskmanager/handlers"
	"taskmanager/utilities"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// LoadRoutes wires the REST surface and serves it.
func LoadRoutes() {
	r := mux.NewRouter()
	r.Use(handlers.LoggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Health and auth
	api.HandleFunc("/health", handlers.HealthHandler).Methods("GET")
	api.HandleFunc("/auth/login", handlers.LoginHandler).Methods("POST")
	api.HandleFunc("/auth/me", handlers.AuthMiddleware(handlers.CurrentUserHandler)).Methods("GET")
	api.HandleFunc("/auth/users", handlers.AuthMiddleware(handlers.ListUsersHandler)).Methods("GET")

	// Tasks: fixed paths registered before the {id} routes
	api.HandleFunc("/tasks", handlers.AuthMiddleware(handlers.ListTasksHandler)).Methods("GET")
	api.HandleFunc("/tasks", handlers.AuthMiddleware(handlers.CreateTaskHandler)).Methods("POST")
	api.HandleFunc("/tasks/stats", handlers.AuthMiddleware(handlers.TaskStatsHandler)).Methods("GET")
	api.HandleFunc("/tasks/search", handlers.AuthMiddleware(handlers.SearchTasksHandler)).Methods("GET")
	api.HandleFunc("/tasks/{id}", handlers.AuthMiddleware(handlers.GetTaskHandler)).Methods("GET")
	api.HandleFunc("/tasks/{id}", handlers.AuthMiddleware(handlers.UpdateTaskHandler)).Methods("PUT")
	api.HandleFunc("/tasks/{id}", handlers.AuthMiddleware(handlers.DeleteTaskHandler)).Methods("DELETE")

	// Projects
	api.HandleFunc("/projects", handlers.AuthMiddleware(handlers.ListProjectsHandler)).Methods("GET")
	api.HandleFunc("/projects", handlers.AuthMiddleware(handlers.CreateProjectHandler)).Methods("POST")
	api.HandleFunc("/projects/{id}", handlers.AuthMiddleware(handlers.GetProjectHandler)).Methods("GET")
	api.HandleFunc("/projects/{id}", handlers.AuthMiddleware(handlers.UpdateProjectHandler)).Methods("PUT")
	api.HandleFunc("/projects/{id}", handlers.AuthMiddleware(handlers.DeleteProjectHandler)).Methods("DELETE")

	// Comments
	api.HandleFunc("/comments/task/{taskId}", handlers.AuthMiddleware(handlers.ListCommentsByTaskHandler)).Methods("GET")
	api.HandleFunc("/comments", handlers.AuthMiddleware(handlers.CreateCommentHandler)).Methods("POST")
	api.HandleFunc("/comments/{id}", handlers.AuthMiddleware(handlers.DeleteCommentHandler)).Methods("DELETE")

	// History (read-only audit trail)
	api.HandleFunc("/history/task/{taskId}", handlers.AuthMiddleware(handlers.ListHistoryByTaskHandler)).Methods("GET")
	api.HandleFunc("/history", handlers.AuthMiddleware(handlers.ListHistoryHandler)).Methods("GET")

	// Notifications
	api.HandleFunc("/notifications", handlers.AuthMiddleware(handlers.ListNotificationsHandler)).Methods("GET")
	api.HandleFunc("/notifications/mark-read", handlers.AuthMiddleware(handlers.MarkNotificationsReadHandler)).Methods("PUT")
	api.HandleFunc("/notifications/{id}", handlers.AuthMiddleware(handlers.DeleteNotificationHandler)).Methods("DELETE")

	// Reports
	api.HandleFunc("/reports/tasks", handlers.AuthMiddleware(handlers.TasksReportHandler)).Methods("GET")
	api.HandleFunc("/reports/projects", handlers.AuthMiddleware(handlers.ProjectsReportHandler)).Methods("GET")
	api.HandleFunc("/reports/users", handlers.AuthMiddleware(handlers.UsersReportHandler)).Methods("GET")
	api.HandleFunc("/reports/export/csv", handlers.AuthMiddleware(handlers.ExportTasksCSVHandler)).Methods("GET")

	// CORS
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ALLOWED_ORIGINS not set, allowing all origins ('*')")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins)(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Server listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
