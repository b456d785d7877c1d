// Package httpapi exposes the notes service over JSON HTTP endpoints and
// maps domain errors to responses.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sergeyvolkov/notesvc/internal/common"
	"github.com/sergeyvolkov/notesvc/internal/logging"
	"github.com/sergeyvolkov/notesvc/internal/server/services"
)

type Router struct {
	users     *services.UserService
	notes     *services.NoteService
	logger    logging.Logger
	jwtSecret []byte
}

func NewRouter(us *services.UserService, ns *services.NoteService, logger logging.Logger, secretKey string) http.Handler {
	r := &Router{
		users:     us,
		notes:     ns,
		logger:    logger.With("module", "httpapi"),
		jwtSecret: []byte(secretKey),
	}

	mux := chi.NewRouter()
	mux.Use(r.loggingMiddleware)
	mux.Use(r.recoveryMiddleware)

	mux.Post("/register", r.handleRegister)
	mux.Post("/login", r.handleLogin)
	mux.Post("/show_notes", r.handleShowNotes)

	mux.Group(func(pr chi.Router) {
		pr.Use(r.authMiddleware)
		pr.Post("/create_note", r.handleCreateNote)
		pr.Post("/edit_note", r.handleEditNote)
		pr.Post("/delete_note", r.handleDeleteNote)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError surfaces domain failures verbatim and flattens everything
// else to a generic 500 with no internal detail leaked.
func (r *Router) writeError(w http.ResponseWriter, req *http.Request, err error) {
	if e := common.AsDomain(err); e != nil {
		writeJSON(w, e.Status, map[string]string{"error": e.Message})
		return
	}
	r.logger.Error(req.Context(), "internal error", "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
}
