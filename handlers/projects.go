package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"taskmanager/models"
	"taskmanager/utilities"
	"taskmanager/validators"

	"github.com/gorilla/mux"
)

func projectIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func populateProject(p models.Project) (models.ProjectDetails, error) {
	createdBy, err := lookupUserRef(p.CreatedBy)
	if err != nil {
		return models.ProjectDetails{}, err
	}
	return models.ProjectDetails{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   createdBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

// ListProjectsHandler returns all projects, newest first, with the
// creator resolved.
func ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := projects.ListProjects()
	if err != nil {
		respondStoreError(w, err, "Failed to list projects", "")
		return
	}
	userRefs, err := userRefMap()
	if err != nil {
		respondStoreError(w, err, "Failed to resolve project creators", "")
		return
	}
	out := make([]models.ProjectDetails, 0, len(list))
	for _, p := range list {
		out = append(out, models.ProjectDetails{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CreatedBy:   userRefs[p.CreatedBy],
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// GetProjectHandler returns one project.
func GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromPath(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid project id")
		return
	}
	project, err := projects.GetProjectByID(id)
	if err != nil {
		respondStoreError(w, err, "Failed to fetch project", "Project not found")
		return
	}
	details, err := populateProject(*project)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve project creator", "")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// CreateProjectHandler persists a new project owned by the caller.
func CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := CallerFromContext(r)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input models.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	defer r.Body.Close()

	if errs := validators.ValidateProjectInput(input); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   caller.ID,
	}
	if err := projects.CreateProject(&project); err != nil {
		respondStoreError(w, err, "Failed to create project", "")
		return
	}

	details, err := populateProject(project)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve project creator", "")
		return
	}
	utilities.LogInfo("Project created: %s (id %d)", project.Name, project.ID)
	respondJSON(w, http.StatusCreated, details)
}

// UpdateProjectHandler overwrites name/description of a project.
func UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromPath(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	existing, err := projects.GetProjectByID(id)
	if err != nil {
		respondStoreError(w, err, "Failed to fetch project", "Project not found")
		return
	}

	var input models.UpdateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	defer r.Body.Close()

	project := *existing
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if errs := validators.ValidateProjectInput(models.ProjectInput{Name: project.Name, Description: project.Description}); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	if err := projects.UpdateProject(&project); err != nil {
		respondStoreError(w, err, "Failed to update project", "Project not found")
		return
	}

	details, err := populateProject(project)
	if err != nil {
		respondStoreError(w, err, "Failed to resolve project creator", "")
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// DeleteProjectHandler removes a project. Tasks keep their projectId and
// resolve to a null reference afterwards.
func DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDFromPath(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid project id")
		return
	}
	if err := projects.DeleteProject(id); err != nil {
		respondStoreError(w, err, "Failed to delete project", "Project not found")
		return
	}
	respondMessage(w, http.StatusOK, "Project deleted successfully")
}
