package models

import "time"

// Note is a text note owned by exactly one user. UserID is set at creation
// and never changes. UpdatedAt starts equal to CreatedAt and is refreshed
// on every successful edit.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
