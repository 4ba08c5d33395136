package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
	errs  map[string]error
}

func (f *fakeExec) record(cmd, arg string) error {
	f.calls = append(f.calls, cmd)
	f.args = append(f.args, arg)
	return f.errs[cmd]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", "")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", "")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", "")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami", "") }
func (f *fakeExec) List(ctx context.Context) error   { return f.record("list", "") }
func (f *fakeExec) Filter(ctx context.Context, arg string) error {
	return f.record("filter", arg)
}
func (f *fakeExec) Search(ctx context.Context, arg string) error {
	return f.record("search", arg)
}
func (f *fakeExec) Add(ctx context.Context) error { return f.record("add", "") }
func (f *fakeExec) Edit(ctx context.Context, arg string) error {
	return f.record("edit", arg)
}
func (f *fakeExec) Start(ctx context.Context, arg string) error {
	return f.record("start", arg)
}
func (f *fakeExec) Done(ctx context.Context, arg string) error {
	return f.record("done", arg)
}
func (f *fakeExec) Remove(ctx context.Context, arg string) error {
	return f.record("rm", arg)
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	return f.record("delete-account", "")
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchAndArgs(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"list",
		"filter COMPLETED",
		"search buy milk",
		"start 3",
		"done 4",
		"rm 5",
		"whoami",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(strings.NewReader(input)))

	require.Equal(t, []string{"login", "list", "filter", "search", "start", "done", "rm", "whoami", "logout"}, exec.calls)
	assert.Equal(t, "COMPLETED", exec.args[2])
	assert.Equal(t, "buy milk", exec.args[3], "multi-word arguments are joined")
	assert.Equal(t, "3", exec.args[4])
}

func TestRunREPL_UnknownAndBlankLines(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("\n   \nfoobar\nquit\n")))

	assert.Empty(t, exec.calls)
	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Unknown command") {
			found = true
		}
	}
	assert.True(t, found, "unknown commands must be reported")
}

func TestRunREPL_HandlerErrorsAreReported(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{loggedIn: true, errs: map[string]error{"rm": errors.New("Task not found")}}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("rm 99\nexit\n")))

	found := false
	for _, l := range *lines {
		if strings.Contains(l, "Task not found") {
			found = true
		}
	}
	assert.True(t, found, "handler errors must be printed, not swallowed")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("list\n")))

	assert.Equal(t, []string{"list"}, exec.calls)
}
