package models

import "time"

type Comment struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"taskId"`
	UserID      int64     `json:"userId"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CommentDetails resolves the author for the read path. TaskID stays a
// plain identifier: the task may have been deleted and the comment must
// still be readable.
type CommentDetails struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"taskId"`
	User        *UserRef  `json:"userId"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CommentInput carries the client payload. The author is always the
// authenticated caller, never taken from the body.
type CommentInput struct {
	TaskID      int64  `json:"taskId"`
	CommentText string `json:"commentText"`
}
