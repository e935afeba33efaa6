package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned at creation.
	UserID uuid.UUID `json:"id"`

	// Email is the unique user email used during authentication.
	Email string `json:"email"`

	// Name is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Plaintext passwords are never persisted, and the hash is never
	// serialised to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
