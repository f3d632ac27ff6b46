// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByUsernameOrEmail retrieves the first user matching either value.
	// Used to enforce uniqueness before creation.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user entity to the storage. The plaintext password
	// on the entity is replaced with its hash exactly once, at the point of
	// persistence, before the record is written.
	Create(ctx context.Context, user *entity.User) error
}
