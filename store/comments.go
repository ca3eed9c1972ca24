package store

import (
	"time"

	"taskmanager/models"
)

func (s *Storage) CreateComment(c *models.Comment) error {
	now := time.Now().UTC()
	err := s.db.QueryRow(`INSERT INTO comments(task_id, user_id, comment_text, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5) RETURNING id`,
		c.TaskID, c.UserID, c.CommentText, now, now).Scan(&c.ID)
	if err != nil {
		return err
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

func (s *Storage) GetCommentByID(id int64) (*models.Comment, error) {
	row := s.db.QueryRow(`SELECT id, task_id, user_id, comment_text, created_at, updated_at
		FROM comments WHERE id=$1`, id)
	var c models.Comment
	if err := row.Scan(&c.ID, &c.TaskID, &c.UserID, &c.CommentText, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (s *Storage) ListCommentsByTask(taskID int64) ([]models.Comment, error) {
	rows, err := s.db.Query(`SELECT id, task_id, user_id, comment_text, created_at, updated_at
		FROM comments WHERE task_id=$1 ORDER BY created_at DESC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.CommentText, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *Storage) DeleteComment(id int64) error {
	res, err := s.db.Exec(`DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
