// Package models contains the persistent domain entities of the notes
// server.
package models

import "time"

// User is a registered account. PasswordHash is the opaque encoded string
// produced by the passhash package. Users are never mutated after creation.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
