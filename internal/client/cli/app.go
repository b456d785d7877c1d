// Package cli implements the interactive commands of notesctl.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sergeyvolkov/notesvc/internal/client"
)

type App struct {
	client *client.Client
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(c *client.Client, in io.Reader, out io.Writer) *App {
	return &App{client: c, in: bufio.NewReader(in), out: out}
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.in, "Enter user name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, username, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prints the issued token so it can be passed to later invocations
// via -token or NOTESVC_TOKEN.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.in, "Enter user name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.in, "Enter note title", a.out)
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.in, "Enter note text", a.out)
	if err != nil {
		return err
	}

	note, err := a.client.CreateNote(ctx, title, text)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created note %d\n", note.NoteID)
	return nil
}

// Edit prompts for replacement fields; a field left empty keeps its
// current value.
func (a *App) Edit(ctx context.Context, noteID int64) error {
	title, err := GetSimpleText(a.in, "Enter new title (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.in, "Enter new text (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}

	note, err := a.client.EditNote(ctx, noteID, title, text)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Edited note %d\n", note.NoteID)
	return nil
}

func (a *App) Delete(ctx context.Context, noteID int64) error {
	note, err := a.client.DeleteNote(ctx, noteID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted note %d (%s)\n", note.NoteID, note.Title)
	return nil
}

func (a *App) List(ctx context.Context, page, perPage int) error {
	result, err := a.client.ShowNotes(ctx, page, perPage)
	if err != nil {
		return err
	}

	for _, n := range result.Notes {
		owner := ""
		if n.IsOwner {
			owner = " (yours)"
		}
		fmt.Fprintf(a.out, "#%d %s%s\n%s\n\n", n.ID, n.Title, owner, n.Text)
	}
	fmt.Fprintf(a.out, "page %d/%d, %d notes total\n",
		result.Page, (result.Total+result.PerPage-1)/result.PerPage, result.Total)
	return nil
}
