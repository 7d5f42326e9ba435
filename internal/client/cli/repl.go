package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it;
// tests use a stub.
type execIface interface {
	view() router.View
	Login(ctx context.Context) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// The commands offered follow the routed view:
//
//	Login view:
//	  - help             show available commands
//	  - login            sign in
//	  - status           server and session status
//	  - exit | quit      leave the program
//
//	Profile view:
//	  - help             show available commands
//	  - profile          show the signed-in user
//	  - logout           sign out
//	  - status           server and session status
//	  - exit | quit      leave the program
//
// Errors returned by command handlers are reported and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sf %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Input error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		v := a.view()

		switch {
		case cmd == "exit" || cmd == "quit":
			printlnFn("Bye!")
			return

		case cmd == "help":
			printlnFn(helpText(v))

		case cmd == "status":
			report(a.Status(ctx))

		case cmd == "login" && v == router.ViewLogin:
			report(a.Login(ctx))

		case cmd == "profile" && v == router.ViewProfile:
			report(a.Profile(ctx))

		case cmd == "logout" && v == router.ViewProfile:
			report(a.Logout(ctx))

		case v == router.ViewLoading:
			printlnFn("Please wait, an operation is in progress")

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func helpText(v router.View) string {
	switch v {
	case router.ViewProfile:
		return "Available commands: profile, logout, status, exit"
	case router.ViewLoading:
		return "Available commands: status, exit"
	default:
		return "Available commands: login, status, exit"
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
