package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/sergeyvolkov/notesvc/internal/common"
	"github.com/sergeyvolkov/notesvc/internal/dbx"
	"github.com/sergeyvolkov/notesvc/internal/server/config"
	"github.com/sergeyvolkov/notesvc/internal/server/models"
	notesrepo "github.com/sergeyvolkov/notesvc/internal/server/repositories/notes"
	usersrepo "github.com/sergeyvolkov/notesvc/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	return cfg
}

// fakeRepoManager hands out the fixed fake repositories regardless of the
// db handle, so services can be exercised without Postgres.
type fakeRepoManager struct {
	users usersrepo.Repository
	notes notesrepo.Repository
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository { return f.users }

func (f *fakeRepoManager) Notes(dbx.DBTX) notesrepo.Repository { return f.notes }

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	created *models.User // captures the last Create argument
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeNotesRepo struct {
	getOut *models.Note
	getErr error

	updateOut *models.Note
	updateErr error

	deleteErr error

	listOut   []*models.Note
	listTotal int
	listErr   error

	// captured call arguments
	created    *models.Note
	updatedTo  [2]string
	listFilter *notesrepo.ListFilter
	listPaging [2]int
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	f.created = n
	n.ID = 1
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	return n, nil
}

func (f *fakeNotesRepo) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return nil, common.ErrorNotFound
	}
	return f.getOut, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, id int64, title, text string) (*models.Note, error) {
	f.updatedTo = [2]string{title, text}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	out := *f.getOut
	out.Title = title
	out.Text = text
	out.UpdatedAt = time.Now()
	return &out, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

func (f *fakeNotesRepo) List(ctx context.Context, filter notesrepo.ListFilter, offset, limit int) ([]*models.Note, int, error) {
	f.listFilter = &filter
	f.listPaging = [2]int{offset, limit}
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listOut, f.listTotal, nil
}
