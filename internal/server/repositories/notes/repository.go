package notes

import (
	"context"
	"time"

	"github.com/sergeyvolkov/notesvc/internal/server/models"
)

// ListFilter describes the optional note-list predicates. Any combination
// of fields may be set; present predicates are combined with OR, matching
// the upstream query semantics.
type ListFilter struct {
	CreatedFrom *time.Time // created_at >= CreatedFrom
	CreatedTo   *time.Time // created_at <= CreatedTo
	UserID      *int64     // user_id = UserID
}

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	Update(ctx context.Context, id int64, title, text string) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
	// List returns the page slice [offset, offset+limit) ordered by
	// creation time descending, plus the total count of matching notes.
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*models.Note, int, error)
}
