package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	fail     error

	calls []string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.fail
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Whoami(ctx context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.record("list", args)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) Add(ctx context.Context, args []string) error {
	return f.record("add", args)
}
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	return f.record("edit", args)
}
func (f *fakeExec) SetStatus(ctx context.Context, args []string) error {
	return f.record("status", args)
}
func (f *fakeExec) Toggle(ctx context.Context, args []string) error {
	return f.record("toggle", args)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args)
}
func (f *fakeExec) Suggest(ctx context.Context, args []string) error {
	return f.record("suggest", args)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"list",
		"login",
		"help",
		"l pending",
		"add Buy milk",
		"show #1",
		"edit 1",
		"STATUS 1 done",
		"toggle 2",
		"rm 3",
		"suggest Plan trip",
		"whoami",
		"foobar",
		"logout",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "(status)" }, rdr(input), &out)

	assert.Equal(t, []string{
		"login", "list pending", "add Buy milk", "show #1", "edit 1", "status 1 done",
		"toggle 2", "delete 3", "suggest Plan trip", "whoami", "logout",
	}, exec.calls)

	s := out.String()
	assert.Contains(t, s, "tb (status)> ")
	assert.Contains(t, s, helpLoggedOut)
	assert.Contains(t, s, helpLoggedIn)
	assert.Contains(t, s, "Please login first")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.True(t, strings.HasSuffix(s, "Bye!\n"))
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{loggedIn: true, fail: fmt.Errorf("login: %w", common.ErrInvalidCredentials)}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, rdr("list\nadd x\n"), &out)

	assert.Equal(t, []string{"list", "add x"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out.String(), "Error: invalid username or password"))
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{loggedIn: true}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, rdr("list\n"), &out)

	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("x: %w", common.ErrUnavailable), "server is unreachable, try again later"},
		{common.ErrDuplicateUsername, "this username is already taken"},
		{fmt.Errorf("%w: task 1 is at revision 3", common.ErrVersionConflict), "the task was changed elsewhere, list and try again"},
		{context.DeadlineExceeded, "request timed out"},
		{errors.New("plain"), "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describe(tt.err))
	}
}
