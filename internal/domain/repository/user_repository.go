// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"arches/internal/domain/entity"
	"arches/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when a username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// FindByID retrieves a user by ID. Returns ErrUserNotFound if absent.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a user by username. Returns ErrUserNotFound if absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and fills in its ID and CreatedAt.
	// Returns ErrUsernameTaken on a duplicate username.
	Create(ctx context.Context, user *entity.User) error
}
