// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can record visits.
type User struct {
	ID           int64     // Store-assigned identifier.
	Username     string    // Unique login name.
	PasswordHash string    // bcrypt hash of the password, never the password itself.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// Identity is the authenticated principal attached to a request.
// A nil *Identity means the request carries no valid credential.
type Identity struct {
	UserID   int64
	Username string
}
