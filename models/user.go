package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserRef is the projected form of a user reference embedded in
// populated responses. A nil *UserRef means the referenced user no
// longer exists (orphaned reference).
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Caller identifies the authenticated user performing a request. It is
// resolved once by the auth middleware and passed explicitly into every
// operation that needs an identity or an ownership check.
type Caller struct {
	ID       int64
	Username string
}
