// Package repomanager wires repository implementations to a database
// handle. Services hold the *sql.DB and ask the manager for repositories
// bound either to the connection or to an in-flight transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/sergeyvolkov/notesvc/internal/dbx"
	"github.com/sergeyvolkov/notesvc/internal/server/repositories/notes"
	"github.com/sergeyvolkov/notesvc/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
}
