package handlers

import (
	"errors"

	"taskmanager/models"
	"taskmanager/store"
)

// Reference resolution happens at read time: stored identifiers are
// swapped for display references against the current user/project/task
// collections. A dangling identifier resolves to nil rather than an
// error, so orphaned references stay readable.

func lookupUserRef(id int64) (*models.UserRef, error) {
	u, err := users.GetUserByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.UserRef{ID: u.ID, Username: u.Username}, nil
}

func lookupProjectRef(id int64) (*models.ProjectRef, error) {
	p, err := projects.GetProjectByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.ProjectRef{ID: p.ID, Name: p.Name}, nil
}

func userRefMap() (map[int64]*models.UserRef, error) {
	list, err := users.ListUsers()
	if err != nil {
		return nil, err
	}
	refs := make(map[int64]*models.UserRef, len(list))
	for _, u := range list {
		refs[u.ID] = &models.UserRef{ID: u.ID, Username: u.Username}
	}
	return refs, nil
}

func projectRefMap() (map[int64]*models.ProjectRef, error) {
	list, err := projects.ListProjects()
	if err != nil {
		return nil, err
	}
	refs := make(map[int64]*models.ProjectRef, len(list))
	for _, p := range list {
		refs[p.ID] = &models.ProjectRef{ID: p.ID, Name: p.Name}
	}
	return refs, nil
}

func toTaskDetails(t models.Task, userRefs map[int64]*models.UserRef, projectRefs map[int64]*models.ProjectRef) models.TaskDetails {
	d := models.TaskDetails{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if t.ProjectID != nil {
		d.Project = projectRefs[*t.ProjectID]
	}
	if t.AssignedTo != nil {
		d.AssignedTo = userRefs[*t.AssignedTo]
	}
	d.CreatedBy = userRefs[t.CreatedBy]
	return d
}

func populateTasks(list []models.Task) ([]models.TaskDetails, error) {
	userRefs, err := userRefMap()
	if err != nil {
		return nil, err
	}
	projectRefs, err := projectRefMap()
	if err != nil {
		return nil, err
	}
	out := make([]models.TaskDetails, 0, len(list))
	for _, t := range list {
		out = append(out, toTaskDetails(t, userRefs, projectRefs))
	}
	return out, nil
}

func populateTask(t models.Task) (models.TaskDetails, error) {
	d := models.TaskDetails{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	var err error
	if t.ProjectID != nil {
		if d.Project, err = lookupProjectRef(*t.ProjectID); err != nil {
			return d, err
		}
	}
	if t.AssignedTo != nil {
		if d.AssignedTo, err = lookupUserRef(*t.AssignedTo); err != nil {
			return d, err
		}
	}
	if d.CreatedBy, err = lookupUserRef(t.CreatedBy); err != nil {
		return d, err
	}
	return d, nil
}

func populateComments(list []models.Comment) ([]models.CommentDetails, error) {
	userRefs, err := userRefMap()
	if err != nil {
		return nil, err
	}
	out := make([]models.CommentDetails, 0, len(list))
	for _, c := range list {
		out = append(out, models.CommentDetails{
			ID:          c.ID,
			TaskID:      c.TaskID,
			User:        userRefs[c.UserID],
			CommentText: c.CommentText,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	return out, nil
}

// populateHistory resolves usernames and task titles. Entries whose
// task has since been deleted keep a nil task reference; the audit
// trail itself is never touched.
func populateHistory(list []models.History) ([]models.HistoryDetails, error) {
	userRefs, err := userRefMap()
	if err != nil {
		return nil, err
	}
	all, err := tasks.ListTasks()
	if err != nil {
		return nil, err
	}
	taskRefs := make(map[int64]*models.TaskRef, len(all))
	for _, t := range all {
		taskRefs[t.ID] = &models.TaskRef{ID: t.ID, Title: t.Title}
	}

	out := make([]models.HistoryDetails, 0, len(list))
	for _, h := range list {
		out = append(out, models.HistoryDetails{
			ID:        h.ID,
			Task:      taskRefs[h.TaskID],
			User:      userRefs[h.UserID],
			Action:    h.Action,
			OldValue:  h.OldValue,
			NewValue:  h.NewValue,
			CreatedAt: h.CreatedAt,
		})
	}
	return out, nil
}
