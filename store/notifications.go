package store

import (
	"fmt"
	"time"

	"taskmanager/models"
)

func (s *Storage) CreateNotification(n *models.Notification) error {
	now := time.Now().UTC()
	if n.Type == "" {
		n.Type = models.NotificationSystem
	}
	err := s.db.QueryRow(`INSERT INTO notifications(user_id, message, type, read, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6) RETURNING id`,
		n.UserID, n.Message, n.Type, n.Read, now, now).Scan(&n.ID)
	if err != nil {
		return err
	}
	n.CreatedAt = now
	n.UpdatedAt = now
	return nil
}

func (s *Storage) GetNotificationByID(id int64) (*models.Notification, error) {
	row := s.db.QueryRow(`SELECT id, user_id, message, type, read, created_at, updated_at
		FROM notifications WHERE id=$1`, id)
	var n models.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	return &n, nil
}

// ListNotificationsForUser returns the recipient's notifications, newest
// first, optionally filtered by read state.
func (s *Storage) ListNotificationsForUser(userID int64, read *bool, limit int) ([]models.Notification, error) {
	query := `SELECT id, user_id, message, type, read, created_at, updated_at
		FROM notifications WHERE user_id=$1`
	params := []interface{}{userID}
	n := 2
	if read != nil {
		query += fmt.Sprintf(" AND read=$%d", n)
		params = append(params, *read)
		n++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", n)
	params = append(params, limit)

	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Notification
	for rows.Next() {
		var note models.Notification
		if err := rows.Scan(&note.ID, &note.UserID, &note.Message, &note.Type, &note.Read, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// MarkAllRead flips every unread notification of one recipient in a
// single statement.
func (s *Storage) MarkAllRead(userID int64) error {
	_, err := s.db.Exec(`UPDATE notifications SET read=TRUE, updated_at=$1
		WHERE user_id=$2 AND read=FALSE`, time.Now().UTC(), userID)
	return err
}

func (s *Storage) DeleteNotification(id int64) error {
	res, err := s.db.Exec(`DELETE FROM notifications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
