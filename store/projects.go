package store

import (
	"time"

	"taskmanager/models"
)

func (s *Storage) CreateProject(p *models.Project) error {
	now := time.Now().UTC()
	err := s.db.QueryRow(`INSERT INTO projects(name, description, created_by, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5) RETURNING id`,
		p.Name, p.Description, p.CreatedBy, now, now).Scan(&p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (s *Storage) GetProjectByID(id int64) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT id, name, description, created_by, created_at, updated_at
		FROM projects WHERE id=$1`, id)
	var p models.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (s *Storage) ListProjects() ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT id, name, description, created_by, created_at, updated_at
		FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *Storage) UpdateProject(p *models.Project) error {
	now := time.Now().UTC()
	res, err := s.db.Exec(`UPDATE projects SET name=$1, description=$2, updated_at=$3 WHERE id=$4`,
		p.Name, p.Description, now, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	p.UpdatedAt = now
	return nil
}

func (s *Storage) DeleteProject(id int64) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
