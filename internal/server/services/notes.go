package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sergeyvolkov/notesvc/internal/common"
	"github.com/sergeyvolkov/notesvc/internal/dbx"
	"github.com/sergeyvolkov/notesvc/internal/server/config"
	"github.com/sergeyvolkov/notesvc/internal/server/models"
	"github.com/sergeyvolkov/notesvc/internal/server/repositories/notes"
	"github.com/sergeyvolkov/notesvc/internal/server/repositories/repomanager"
	"github.com/sergeyvolkov/notesvc/internal/server/validation"
)

// dateLayout is the fixed format accepted by the list date filters.
const dateLayout = "2006.01.02"

type NoteService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	editWindow     time.Duration
	maxTitleLength int
	maxTextLength  int
	defaultPerPage int

	// now is a clock seam for edit-window tests.
	now func() time.Time
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *NoteService {
	return &NoteService{
		db:             db,
		repomanager:    m,
		editWindow:     cfg.EditWindow,
		maxTitleLength: cfg.MaxTitleLength,
		maxTextLength:  cfg.MaxTextLength,
		defaultPerPage: cfg.DefaultPerPage,
		now:            time.Now,
	}
}

// Create persists a new note owned by userID with both timestamps set to
// now.
func (s *NoteService) Create(ctx context.Context, userID int64, title, text string) (*models.Note, error) {

	if title == "" || text == "" {
		return nil, common.ErrMissingNoteParams
	}
	if len(title) > s.maxTitleLength {
		return nil, common.ErrInvalidTitle
	}
	if len(text) > s.maxTextLength {
		return nil, common.ErrInvalidText
	}

	repo := s.repomanager.Notes(s.db)

	note := &models.Note{UserID: userID, Title: title, Text: text}
	return repo.Create(ctx, note)
}

// Edit updates a note's title and text. Only the owner may edit, and only
// once the note has aged past the edit window since its last update. An
// empty new field keeps its prior value; both columns are written and
// updated_at is refreshed. No version checks are made: concurrent edits
// resolve last-writer-wins.
func (s *NoteService) Edit(ctx context.Context, noteID, userID int64, newTitle, newText string) (*models.Note, error) {

	var updated *models.Note

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)

		note, err := repo.GetByID(ctx, noteID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrNoteDoesNotExist
			}
			return err
		}

		if note.UserID != userID {
			return common.ErrAccessDenied
		}

		if s.now().Sub(note.UpdatedAt) <= s.editWindow {
			return common.ErrNoteOutdated
		}

		if newTitle == "" && newText == "" {
			return common.ErrMissingNoteParams
		}

		title := newTitle
		if title == "" {
			title = note.Title
		}
		text := newText
		if text == "" {
			text = note.Text
		}

		updated, err = repo.Update(ctx, noteID, title, text)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete permanently removes a note. Only the owner may delete. The
// removed note's last-known fields are returned.
func (s *NoteService) Delete(ctx context.Context, noteID, userID int64) (*models.Note, error) {

	var deleted *models.Note

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)

		note, err := repo.GetByID(ctx, noteID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrNoteDoesNotExist
			}
			return err
		}

		if note.UserID != userID {
			return common.ErrAccessDenied
		}

		if err := repo.Delete(ctx, noteID); err != nil {
			return err
		}

		deleted = note
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// ListParams carries the raw listing inputs. Zero values mean "absent":
// Page and PerPage fall back to defaults, UserID 0 disables the owner
// filter. TokenUserID is the verified caller identity, nil when the
// request carried no valid token.
type ListParams struct {
	StartDate   string
	EndDate     string
	Page        int
	PerPage     int
	UserID      int64
	TokenUserID *int64
}

// NoteView is a listed note annotated with the caller's ownership.
type NoteView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	IsOwner   bool      `json:"is_you_owner"`
}

// ListResult is one page of matching notes plus the total matching count.
type ListResult struct {
	Notes   []NoteView `json:"notes"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

// List returns the requested page of notes, newest first.
//
// Supplied date and owner predicates are combined with OR, and a date that
// does not match the YYYY.MM.DD pattern is silently dropped from the
// filter; both behaviors deliberately mirror the upstream service. An
// unauthenticated caller gets the same listing with every note reporting
// is_you_owner=false.
func (s *NoteService) List(ctx context.Context, p ListParams) (*ListResult, error) {

	page := p.Page
	if page == 0 {
		page = 1
	}
	perPage := p.PerPage
	if perPage == 0 {
		perPage = s.defaultPerPage
	}

	if page < 1 || perPage < 1 {
		return nil, common.ErrInvalidPageParams
	}

	startIndex := (page - 1) * perPage

	// Dates are YYYY.MM.DD, so the string comparison is chronological.
	if p.StartDate != "" && p.EndDate != "" && p.StartDate > p.EndDate {
		return nil, common.ErrInvalidDateGap
	}

	var filter notes.ListFilter
	if t, ok := parseFilterDate(p.StartDate); ok {
		filter.CreatedFrom = &t
	}
	if t, ok := parseFilterDate(p.EndDate); ok {
		filter.CreatedTo = &t
	}
	if p.UserID != 0 {
		filter.UserID = &p.UserID
	}

	repo := s.repomanager.Notes(s.db)

	result, total, err := repo.List(ctx, filter, startIndex, perPage)
	if err != nil {
		return nil, err
	}

	if startIndex >= total {
		return nil, common.ErrNoData
	}

	views := make([]NoteView, 0, len(result))
	for _, note := range result {
		views = append(views, NoteView{
			ID:        note.ID,
			Title:     note.Title,
			Text:      note.Text,
			UserID:    note.UserID,
			CreatedAt: note.CreatedAt,
			IsOwner:   p.TokenUserID != nil && note.UserID == *p.TokenUserID,
		})
	}

	return &ListResult{Notes: views, Total: total, Page: page, PerPage: perPage}, nil
}

func parseFilterDate(s string) (time.Time, bool) {
	if s == "" || !validation.ValidDateFormat(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
