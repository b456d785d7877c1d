package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sergeyvolkov/notesvc/internal/client"
	"github.com/sergeyvolkov/notesvc/internal/client/cli"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: notesctl [-addr url] [-token token] register|login|add|edit|delete|list")
	os.Exit(2)
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	token := flag.String("token", os.Getenv("NOTESVC_TOKEN"), "access token (defaults to NOTESVC_TOKEN)")
	page := flag.Int("page", 1, "list: page number")
	perPage := flag.Int("per-page", 10, "list: page size")
	noteID := flag.Int64("note", 0, "edit/delete: note id")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	c := client.New(*addr)
	if *token != "" {
		c.SetToken(*token)
	}

	app := cli.NewApp(c, os.Stdin, os.Stdout)
	ctx := context.Background()

	var err error
	switch flag.Arg(0) {
	case "register":
		err = app.Register(ctx)
	case "login":
		err = app.Login(ctx)
	case "add":
		err = app.Add(ctx)
	case "edit":
		err = app.Edit(ctx, *noteID)
	case "delete":
		err = app.Delete(ctx, *noteID)
	case "list":
		err = app.List(ctx, *page, *perPage)
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
