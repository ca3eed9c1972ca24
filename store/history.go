package store

import (
	"time"

	"taskmanager/models"
)

// AppendHistory inserts one immutable audit entry. There is no update or
// single-row delete path for history anywhere in the store.
func (s *Storage) AppendHistory(h *models.History) error {
	now := time.Now().UTC()
	err := s.db.QueryRow(`INSERT INTO history(task_id, user_id, action, old_value, new_value, created_at)
		VALUES($1,$2,$3,$4,$5,$6) RETURNING id`,
		h.TaskID, h.UserID, h.Action, h.OldValue, h.NewValue, now).Scan(&h.ID)
	if err != nil {
		return err
	}
	h.CreatedAt = now
	return nil
}

func (s *Storage) ListHistoryByTask(taskID int64) ([]models.History, error) {
	return s.queryHistory(`SELECT id, task_id, user_id, action, old_value, new_value, created_at
		FROM history WHERE task_id=$1 ORDER BY created_at DESC`, taskID)
}

func (s *Storage) ListHistory(limit int) ([]models.History, error) {
	return s.queryHistory(`SELECT id, task_id, user_id, action, old_value, new_value, created_at
		FROM history ORDER BY created_at DESC LIMIT $1`, limit)
}

func (s *Storage) queryHistory(query string, params ...interface{}) ([]models.History, error) {
	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.History
	for rows.Next() {
		var h models.History
		if err := rows.Scan(&h.ID, &h.TaskID, &h.UserID, &h.Action, &h.OldValue, &h.NewValue, &h.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}
	return entries, rows.Err()
}
