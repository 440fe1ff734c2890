// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account in the user directory. It lives in the relational
// store, which enforces email uniqueness with a native unique constraint.
type User struct {
	ID           string    `json:"user_id"` // Prefixed, unguessable identifier ("USER-...").
	Email        string    `json:"email"`   // Stored lowercase; the login identifier.
	PasswordHash string    `json:"-"`       // bcrypt hash; never serialized.
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Address      Address   `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Address is the user's shipping address. All fields are optional until the
// user saves one during checkout.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}
