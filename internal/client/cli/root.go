package cli

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/justdoit/internal/client/routeguard"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// commander is the minimal surface the REPL loop needs. The real App
// satisfies it; tests provide a stub.
type commander interface {
	status() string
	dispatch(ctx context.Context, cmd string, args []string) bool
}

// runREPL reads a line, parses the first token as the command and dispatches
// it. The loop exits on EOF or when dispatch returns false.
func runREPL(ctx context.Context, c commander, scanner *bufio.Scanner) {
	for {
		fmt.Printf("justdoit %s> ", c.status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if !c.dispatch(ctx, parts[0], parts[1:]) {
			return
		}
	}
}

func (a *App) status() string {
	s := a.path
	if acc := a.guard.Account(); acc != nil {
		s = acc.Email + " " + s
	}
	return "(" + s + ")"
}

// navigate runs the requested path through the route guard. On a redirect the
// target of the redirect becomes the current screen and, for the sign-in
// redirect, the originally requested path is remembered so a successful
// sign-in can resume it.
func (a *App) navigate(path string) bool {
	d := routeguard.Evaluate(path, a.isAuthenticated())
	if d.Allow {
		a.path = path
		return true
	}

	printlnFn("redirected to", d.RedirectTo)

	target, err := url.Parse(d.RedirectTo)
	if err == nil {
		a.path = target.Path
		if from := target.Query().Get(routeguard.RedirectedFromParam); from != "" {
			a.resumePath = from
		}
	}
	return false
}

// resume navigates back to the path a sign-in redirect interrupted, if any.
func (a *App) resume() {
	if a.resumePath == "" {
		return
	}
	path := a.resumePath
	a.resumePath = ""
	if a.navigate(path) {
		printlnFn("resuming", path)
	}
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to JustDoIt (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(a.reader))
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		a.printHelp()

	case "register":
		if a.navigate("/register") {
			a.register(ctx)
		}
	case "login":
		if a.navigate("/login") {
			a.login(ctx)
		}
	case "logout":
		a.logout(ctx)
	case "recover":
		a.recoverPassword(ctx)
	case "whoami":
		a.whoami()
	case "profile":
		if a.navigate("/dashboard/profile") {
			a.editProfile(ctx)
		}

	case "todos":
		if a.navigate("/dashboard/todos") {
			a.listTodos(ctx)
		}
	case "add":
		if a.navigate("/dashboard/todos") {
			a.addTodo(ctx)
		}
	case "toggle":
		if a.navigate("/dashboard/todos") {
			a.toggleTodo(ctx, args)
		}
	case "del":
		if a.navigate("/dashboard/todos") {
			a.deleteTodo(ctx, args)
		}

	case "priorities":
		if a.navigate("/dashboard/priorities") {
			a.listPriorities(ctx)
		}
	case "addp":
		if a.navigate("/dashboard/priorities") {
			a.addPriority(ctx)
		}
	case "delp":
		if a.navigate("/dashboard/priorities") {
			a.deletePriority(ctx, args)
		}

	case "contacts":
		if a.navigate("/dashboard/contacts") {
			a.listContacts(ctx)
		}
	case "addc":
		if a.navigate("/dashboard/contacts") {
			a.addContact(ctx)
		}

	case "settings":
		if a.navigate("/dashboard/settings") {
			a.showSettings(ctx)
		}
	case "setmail":
		if a.navigate("/dashboard/settings") {
			a.editSettings(ctx)
		}

	case "exit", "quit":
		printlnFn("Bye!")
		return false

	default:
		printlnFn("Unknown command:", cmd)
	}
	return true
}

func (a *App) printHelp() {
	if a.isAuthenticated() {
		printlnFn("Available commands: todos, add, toggle <n>, del <n>, priorities, addp, delp <n>, contacts, addc, settings, setmail, profile, whoami, logout, exit")
	} else {
		printlnFn("Available commands: register, login, recover, exit")
	}
}
