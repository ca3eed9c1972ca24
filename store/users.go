package store

import (
	"time"

	"taskmanager/models"
)

func (s *Storage) CreateUser(u *models.User) error {
	now := time.Now().UTC()
	err := s.db.QueryRow(`INSERT INTO users(username, password_hash, role, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5) RETURNING id`,
		u.Username, u.PasswordHash, u.Role, now, now).Scan(&u.ID)
	if err != nil {
		return err
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (s *Storage) GetUserByID(id int64) (*models.User, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, role, created_at, updated_at
		FROM users WHERE id=$1`, id)
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *Storage) GetUserByUsername(username string) (*models.User, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, role, created_at, updated_at
		FROM users WHERE username=$1`, username)
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *Storage) ListUsers() ([]models.User, error) {
	rows, err := s.db.Query(`SELECT id, username, password_hash, role, created_at, updated_at
		FROM users ORDER BY username ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
