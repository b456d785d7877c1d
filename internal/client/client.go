// Package client implements a small HTTP client for the notes API, used by
// the notesctl command.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches a bearer credential to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// NoteSummary mirrors the note payload of the mutation endpoints.
type NoteSummary struct {
	Message string `json:"message"`
	NoteID  int64  `json:"note_id"`
	Title   string `json:"title"`
	Text    string `json:"text"`
}

// NoteItem is one listed note.
type NoteItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
	IsOwner   bool   `json:"is_you_owner"`
}

// NotesPage is one page of the listing endpoint.
type NotesPage struct {
	Notes   []NoteItem `json:"notes"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e apiError
		_ = json.NewDecoder(resp.Body).Decode(&e)
		msg := e.Error
		if msg == "" {
			msg = e.Message
		}
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("server: %s", msg)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	in := map[string]string{"username": username, "password": password}
	return c.post(ctx, "/register", in, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	in := map[string]string{"username": username, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/login", in, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

func (c *Client) CreateNote(ctx context.Context, title, text string) (*NoteSummary, error) {
	in := map[string]string{"title": title, "text": text}
	out := &NoteSummary{}
	if err := c.post(ctx, "/create_note", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EditNote(ctx context.Context, noteID int64, newTitle, newText string) (*NoteSummary, error) {
	in := map[string]any{"note_id": noteID, "new_title": newTitle, "new_text": newText}
	out := &NoteSummary{}
	if err := c.post(ctx, "/edit_note", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteNote(ctx context.Context, noteID int64) (*NoteSummary, error) {
	in := map[string]int64{"note_id": noteID}
	out := &NoteSummary{}
	if err := c.post(ctx, "/delete_note", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ShowNotes(ctx context.Context, page, perPage int) (*NotesPage, error) {
	in := map[string]int{"page": page, "per_page": perPage}
	out := &NotesPage{}
	if err := c.post(ctx, "/show_notes", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
