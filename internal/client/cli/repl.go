package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ListNKOs(ctx context.Context, args []string) error
	ShowNKO(ctx context.Context, args []string) error
	ListEvents(ctx context.Context, args []string) error
	ShowEvent(ctx context.Context, args []string) error
	ListNews(ctx context.Context, args []string) error
	ListCities(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string, favorite bool) error
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help                    — show available commands
//	  - nko [filters]           — list NKOs (city=<name>, cat=<c1,c2>, q=<regex>, fav)
//	  - nko <id>                — show one NKO
//	  - events [filters]        — list events
//	  - event <id>              — show one event
//	  - news [filters]          — list news
//	  - cities [q=<regex>]      — list cities
//	  - exit | quit             — leave the program
//
//	Not logged in:
//	  - register                — create an account
//	  - login                   — authenticate
//
//	Logged in:
//	  - whoami                  — show the current account
//	  - fav <nko|event|news> <id>    — mark a favorite
//	  - unfav <nko|event|news> <id>  — unmark a favorite
//	  - logout                  — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dd> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Catalog: nko [id|filters], events, event <id>, news, cities, exit")
			if a.isLoggedIn() {
				printlnFn("Account: whoami, fav <nko|event|news> <id>, unfav <nko|event|news> <id>, logout")
			} else {
				printlnFn("Account: register, login")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "nko":
			// A single numeric argument selects one NKO, anything else filters.
			if len(args) == 1 && isID(args[0]) {
				_ = a.ShowNKO(ctx, args)
			} else {
				_ = a.ListNKOs(ctx, args)
			}

		case "events":
			_ = a.ListEvents(ctx, args)

		case "event":
			if len(args) == 0 {
				printlnFn("Usage: event <id>")
				continue
			}
			_ = a.ShowEvent(ctx, args)

		case "news":
			_ = a.ListNews(ctx, args)

		case "cities":
			_ = a.ListCities(ctx, args)

		case "fav":
			if len(args) < 2 {
				printlnFn("Usage: fav <nko|event|news> <id>")
				continue
			}
			_ = a.Favorite(ctx, args, true)

		case "unfav":
			if len(args) < 2 {
				printlnFn("Usage: unfav <nko|event|news> <id>")
				continue
			}
			_ = a.Favorite(ctx, args, false)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isID(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
