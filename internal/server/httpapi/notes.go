package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/sergeyvolkov/notesvc/internal/common"
	"github.com/sergeyvolkov/notesvc/internal/server/models"
	"github.com/sergeyvolkov/notesvc/internal/server/services"
)

type createNoteRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type editNoteRequest struct {
	NoteID   int64  `json:"note_id"`
	NewTitle string `json:"new_title"`
	NewText  string `json:"new_text"`
}

type deleteNoteRequest struct {
	NoteID int64 `json:"note_id"`
}

type showNotesRequest struct {
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	UserID    int64  `json:"user_id"`
}

type noteResponse struct {
	Message string `json:"message"`
	NoteID  int64  `json:"note_id"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	Status  bool   `json:"status"`
}

func newNoteResponse(message string, note *models.Note) noteResponse {
	return noteResponse{
		Message: message,
		NoteID:  note.ID,
		Title:   note.Title,
		Text:    note.Text,
		Status:  true,
	}
}

func (r *Router) handleCreateNote(w http.ResponseWriter, req *http.Request) {
	userID := getUserID(req.Context())

	var body createNoteRequest
	_ = json.NewDecoder(req.Body).Decode(&body)

	note, err := r.notes.Create(req.Context(), userID, body.Title, body.Text)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	writeJSON(w, http.StatusCreated, newNoteResponse("Note created successfully", note))
}

func (r *Router) handleEditNote(w http.ResponseWriter, req *http.Request) {
	userID := getUserID(req.Context())

	var body editNoteRequest
	_ = json.NewDecoder(req.Body).Decode(&body)

	if body.NoteID <= 0 {
		r.writeError(w, req, common.ErrInvalidNoteID)
		return
	}

	note, err := r.notes.Edit(req.Context(), body.NoteID, userID, body.NewTitle, body.NewText)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	writeJSON(w, http.StatusCreated, newNoteResponse("Note edited successfully", note))
}

func (r *Router) handleDeleteNote(w http.ResponseWriter, req *http.Request) {
	userID := getUserID(req.Context())

	var body deleteNoteRequest
	_ = json.NewDecoder(req.Body).Decode(&body)

	if body.NoteID <= 0 {
		r.writeError(w, req, common.ErrInvalidNoteID)
		return
	}

	note, err := r.notes.Delete(req.Context(), body.NoteID, userID)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	writeJSON(w, http.StatusCreated, newNoteResponse("Note deleted successfully", note))
}

func (r *Router) handleShowNotes(w http.ResponseWriter, req *http.Request) {
	var body showNotesRequest
	_ = json.NewDecoder(req.Body).Decode(&body)

	if body.UserID < 0 {
		r.writeError(w, req, common.ErrInvalidUserID)
		return
	}

	result, err := r.notes.List(req.Context(), services.ListParams{
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		Page:        body.Page,
		PerPage:     body.PerPage,
		UserID:      body.UserID,
		TokenUserID: r.optionalUserID(req),
	})
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
