// Package store persists the six entity collections in PostgreSQL.
// Queries are plain SQL over database/sql; no cross-document
// transactions are offered, so multi-write sequences (task + history +
// notification) are independent statements.
package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a referenced document is absent.
var ErrNotFound = errors.New("not found")

type Storage struct {
	db *sql.DB
}

var (
	_ UserRepository         = (*Storage)(nil)
	_ ProjectRepository      = (*Storage)(nil)
	_ TaskRepository         = (*Storage)(nil)
	_ CommentRepository      = (*Storage)(nil)
	_ HistoryRepository      = (*Storage)(nil)
	_ NotificationRepository = (*Storage)(nil)
)

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
