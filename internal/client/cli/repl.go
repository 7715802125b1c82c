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
	GoTab(target string)
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Page(ctx context.Context, page string) error
	Vote(ctx context.Context, id, direction string) error
	Comments(ctx context.Context, id string) error
	Comment(ctx context.Context, id string) error
	NewIdea(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the idea-bank CLI.
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
//   - help                 — show available commands
//   - home | submit | bank | contacts — switch section
//   - l | list             — show the current page of ideas
//   - search [text]        — filter ideas by content or author
//   - page <n>             — jump to page n
//   - vote <id> up|down    — vote on an idea
//   - comments <id>        — show an idea's comments
//   - comment <id>         — post a comment (interactive)
//   - new                  — submit a new idea (interactive form)
//   - refresh              — reload the idea list from the server
//   - exit | quit          — leave the program
//
// Any errors returned by command handlers are ignored here; handlers show
// their own notifications. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ideas %s> ", statusFn()))
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
			printlnFn("Available commands: home, submit, bank, contacts, (l)ist, search, page, vote, comments, comment, new, refresh, exit")

		case "home", "submit", "bank", "contacts":
			a.GoTab(cmd)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.Page(ctx, args[0])

		case "vote":
			if len(args) < 2 {
				printlnFn("Usage: vote <id> up|down")
				continue
			}
			_ = a.Vote(ctx, args[0], args[1])

		case "comments":
			if len(args) == 0 {
				printlnFn("Usage: comments <id>")
				continue
			}
			_ = a.Comments(ctx, args[0])

		case "comment":
			if len(args) == 0 {
				printlnFn("Usage: comment <id>")
				continue
			}
			_ = a.Comment(ctx, args[0])

		case "new":
			_ = a.NewIdea(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
