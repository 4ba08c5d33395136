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
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Filter(ctx context.Context, arg string) error
	Search(ctx context.Context, arg string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	Start(ctx context.Context, arg string) error
	Done(ctx context.Context, arg string) error
	Remove(ctx context.Context, arg string) error
	DeleteAccount(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop. It reads a line from the
// provided scanner, parses the first token as the command, and dispatches
// to methods on 'a'. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Command handlers print their own errors; the loop only reports the ones
// they return, keeping itself focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("todocli (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("todo %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, filter <ALL|TODO|IN_PROGRESS|COMPLETED>, search <text>, add, edit <id>, start <id>, done <id>, rm <id>, whoami, logout, delete-account, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "filter":
			err = a.Filter(ctx, arg)

		case "search":
			err = a.Search(ctx, arg)

		case "add":
			err = a.Add(ctx)

		case "edit":
			err = a.Edit(ctx, arg)

		case "start":
			err = a.Start(ctx, arg)

		case "done":
			err = a.Done(ctx, arg)

		case "rm", "delete":
			err = a.Remove(ctx, arg)

		case "delete-account":
			err = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
