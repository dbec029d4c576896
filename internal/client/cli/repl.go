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
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Events(ctx context.Context) error
	Opportunities(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SaveEvent(ctx context.Context) error
	SaveOpportunity(ctx context.Context) error
	Like(ctx context.Context) error
	Apply(ctx context.Context) error
	Admin(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the techfolio CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands available to everyone: help, events, opportunities, login,
// register, exit. Logged-in users additionally get profile, editprofile,
// save, saveopp, like, apply, logout; admins get admin.
//
// Any errors returned by command handlers are reported here as a transient
// message and the loop keeps running; no failure is fatal to the process.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("techfolio> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			err = a.Login(ctx)

		case "register":
			err = a.Register(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "e", "events":
			err = a.Events(ctx)

		case "o", "opportunities", "opps":
			err = a.Opportunities(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "editprofile":
			err = a.EditProfile(ctx)

		case "save":
			err = a.SaveEvent(ctx)

		case "saveopp":
			err = a.SaveOpportunity(ctx)

		case "like":
			err = a.Like(ctx)

		case "apply":
			err = a.Apply(ctx)

		case "admin":
			err = a.Admin(ctx)

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

func printHelp(a execIface) {
	printlnFn("Available commands: (e)vents, (o)pportunities, help, exit")
	if !a.isLoggedIn() {
		printlnFn("Account: login, register")
		return
	}
	printlnFn("Account: profile, editprofile, save, saveopp, like, apply, logout")
	if a.isAdmin() {
		printlnFn("Admin: admin")
	}
}
