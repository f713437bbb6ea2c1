package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	SetStatus(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Suggest(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (l)ist [all|pending|completed], show <task>, add [title], edit <task>, " +
		"status <task> <status>, toggle <task>, delete <task>, suggest [title], whoami, logout, exit"
)

// runREPL reads commands from reader until EOF, "exit"/"quit" or ctx is
// done. Command errors are printed and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprintf(out, "tb %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(out, "Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args, out); err != nil {
			fmt.Fprintln(out, "Error:", describe(err))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(out, helpLoggedIn)
		} else {
			fmt.Fprintln(out, helpLoggedOut)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	commands := map[string]func(context.Context, []string) error{
		"l":       a.List,
		"list":    a.List,
		"show":    a.Show,
		"add":     a.Add,
		"edit":    a.Edit,
		"status":  a.SetStatus,
		"toggle":  a.Toggle,
		"delete":  a.Delete,
		"rm":      a.Delete,
		"suggest": a.Suggest,
		"whoami":  func(ctx context.Context, _ []string) error { return a.Whoami(ctx) },
		"logout":  func(ctx context.Context, _ []string) error { return a.Logout(ctx) },
	}

	fn, ok := commands[cmd]
	if !ok {
		fmt.Fprintln(out, "Unknown command:", cmd)
		return nil
	}
	if !a.isLoggedIn() {
		fmt.Fprintln(out, "Please login first")
		return nil
	}
	return fn(ctx, args)
}

// describe turns contract errors into short user-facing text.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrUnavailable):
		return "server is unreachable, try again later"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, common.ErrDuplicateUsername):
		return "this username is already taken"
	case errors.Is(err, common.ErrVersionConflict):
		return "the task was changed elsewhere, list and try again"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	}
	return err.Error()
}
