// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when the store's unique constraint on email
// rejects an insert. Detection happens at the store, never via a
// check-then-insert, so concurrent registrations cannot race past it.
var ErrDuplicateEmail = errors.New("email already registered")

// AddressPatch carries a full address update. All fields are written
// together; there is no per-field patch for addresses.
type AddressPatch struct {
	Phone      string
	Street     string
	City       string
	State      string
	PostalCode string
}

// UserRepository defines the standard operations for user persistence.
// Every operation is a single atomic statement against the relational
// store; no operation spans multiple rows.
type UserRepository interface {
	// Create persists a new user. A unique-constraint violation on email
	// surfaces as ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their (lowercased) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateAddress replaces the user's phone and shipping address fields
	// in one statement and returns the updated record.
	UpdateAddress(ctx context.Context, id string, patch AddressPatch) (*entity.User, error)
}
