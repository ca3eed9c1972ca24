package main

import (
	"database/sql"

	"taskmanager/database"
	"taskmanager/handlers"
	"taskmanager/models"
	"taskmanager/store"
	"taskmanager/utilities"
)

// seedData wipes every collection and loads the demo users and
// projects. This is the bulk reset path: the only operation allowed to
// discard history entries.
func seedData(db *sql.DB, storage *store.Storage) error {
	if err := database.Reset(db); err != nil {
		return err
	}

	seedUsers := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin", "admin"},
		{"user1", "user1", "user"},
		{"user2", "user2", "user"},
	}

	var admin *models.User
	for _, su := range seedUsers {
		hash, err := handlers.HashPassword(su.password)
		if err != nil {
			return err
		}
		u := &models.User{Username: su.username, PasswordHash: hash, Role: su.role}
		if err := storage.CreateUser(u); err != nil {
			return err
		}
		if su.username == "admin" {
			admin = u
		}
	}
	utilities.LogInfo("Users created: %d", len(seedUsers))

	seedProjects := []models.Project{
		{Name: "Proyecto Demo", Description: "Proyecto de ejemplo", CreatedBy: admin.ID},
		{Name: "Proyecto Alpha", Description: "Proyecto importante", CreatedBy: admin.ID},
		{Name: "Proyecto Beta", Description: "Proyecto secundario", CreatedBy: admin.ID},
	}
	for i := range seedProjects {
		if err := storage.CreateProject(&seedProjects[i]); err != nil {
			return err
		}
	}
	utilities.LogInfo("Projects created: %d", len(seedProjects))

	return nil
}
