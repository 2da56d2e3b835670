package models

import "time"

// User represents an account entity used for authentication and for
// stamping ownership on feedbacks, comments and notations.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier. Immutable after registration.
	Username string `json:"username"`

	// Password carries the plaintext password supplied by the client during
	// register/login requests. It is transient: never persisted, never
	// serialised back to the client.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
