package store

import (
	"fmt"
	"time"

	"taskmanager/models"
)

const taskColumns = `id, title, description, status, priority, project_id, assigned_to,
	due_date, estimated_hours, actual_hours, created_by, created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }, t *models.Task) error {
	return row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.ProjectID, &t.AssignedTo, &t.DueDate, &t.EstimatedHours, &t.ActualHours,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
}

func (s *Storage) CreateTask(t *models.Task) error {
	now := time.Now().UTC()
	if t.Status == "" {
		t.Status = models.StatusPendiente
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedia
	}
	err := s.db.QueryRow(`INSERT INTO tasks(title, description, status, priority, project_id,
		assigned_to, due_date, estimated_hours, actual_hours, created_by, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`,
		t.Title, t.Description, t.Status, t.Priority, t.ProjectID,
		t.AssignedTo, t.DueDate, t.EstimatedHours, t.ActualHours, t.CreatedBy, now, now).Scan(&t.ID)
	if err != nil {
		return err
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	return nil
}

func (s *Storage) GetTaskByID(id int64) (*models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id=$1`, id)
	var t models.Task
	if err := scanTask(row, &t); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (s *Storage) ListTasks() ([]models.Task, error) {
	return s.queryTasks(`SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`)
}

// SearchTasks applies the conjunctive filter set, newest first.
func (s *Storage) SearchTasks(f models.TaskFilter) ([]models.Task, error) {
	where, params := BuildTaskSearch(f)
	query := `SELECT ` + taskColumns + ` FROM tasks` + where + ` ORDER BY created_at DESC`
	return s.queryTasks(query, params...)
}

// BuildTaskSearch turns the filter set into a WHERE clause plus its
// positional parameters. The "" and "0" projectId values mean no
// project filter.
func BuildTaskSearch(f models.TaskFilter) (string, []interface{}) {
	clauses := []string{}
	params := []interface{}{}
	n := 1

	if f.SearchText != "" {
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
		params = append(params, "%"+f.SearchText+"%")
		n++
	}
	if f.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = $%d", n))
		params = append(params, f.Status)
		n++
	}
	if f.Priority != "" {
		clauses = append(clauses, fmt.Sprintf("priority = $%d", n))
		params = append(params, f.Priority)
		n++
	}
	if f.ProjectID != "" && f.ProjectID != "0" {
		clauses = append(clauses, fmt.Sprintf("project_id = $%d", n))
		params = append(params, f.ProjectID)
		n++
	}

	if len(clauses) == 0 {
		return "", nil
	}
	where := " WHERE " + clauses[0]
	for _, c := range clauses[1:] {
		where += " AND " + c
	}
	return where, params
}

func (s *Storage) queryTasks(query string, params ...interface{}) ([]models.Task, error) {
	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Storage) UpdateTask(t *models.Task) error {
	now := time.Now().UTC()
	res, err := s.db.Exec(`UPDATE tasks SET title=$1, description=$2, status=$3, priority=$4,
		project_id=$5, assigned_to=$6, due_date=$7, estimated_hours=$8, actual_hours=$9, updated_at=$10
		WHERE id=$11`,
		t.Title, t.Description, t.Status, t.Priority,
		t.ProjectID, t.AssignedTo, t.DueDate, t.EstimatedHours, t.ActualHours, now, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	t.UpdatedAt = now
	return nil
}

func (s *Storage) DeleteTask(id int64) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
