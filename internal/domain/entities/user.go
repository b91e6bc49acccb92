// Package entities defines the core domain models for the taxi service: User,
// Driver, Car, Ride and Payment. They live in the innermost layer of the
// architecture and have no dependencies on databases, HTTP, or external services.
package entities

import "time"

// User is an authenticated account that owns rides and payments.
// PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
