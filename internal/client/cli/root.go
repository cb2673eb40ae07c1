package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	register(ctx context.Context)
	login(ctx context.Context)
	logout(ctx context.Context)
	list(ctx context.Context)
	search(ctx context.Context, term string)
	region(ctx context.Context, name string)
	language(ctx context.Context, name string)
	favoritesOnly(ctx context.Context, mode string)
	toggleFavorite(ctx context.Context, code string)
	clearFilters(ctx context.Context)
	show(ctx context.Context, code string)
	compare(ctx context.Context, codes []string)
	expand(ctx context.Context, key string)
	showMap(ctx context.Context, args []string)
	refresh(ctx context.Context)
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, search <term>, region <name|->, " +
		"language <name|->, favorites on|off, fav <code>, show <code>, " +
		"compare <codes...>, expand <category>, map [lat lng name], refresh, " +
		"clear, logout, exit"
)

// runREPL starts a read–eval–print loop for the WorldQuery CLI.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Command handlers report their own errors; the loop itself never
// fails on one.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "wq %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			a.register(ctx)

		case "login":
			a.login(ctx)

		case "logout":
			a.logout(ctx)

		case "l", "list":
			a.list(ctx)

		case "search":
			a.search(ctx, strings.Join(args, " "))

		case "region":
			a.region(ctx, strings.Join(args, " "))

		case "language":
			a.language(ctx, strings.Join(args, " "))

		case "favorites":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: favorites on|off")
				continue
			}
			a.favoritesOnly(ctx, args[0])

		case "fav":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: fav <code>")
				continue
			}
			a.toggleFavorite(ctx, args[0])

		case "clear":
			a.clearFilters(ctx)

		case "show":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: show <code>")
				continue
			}
			a.show(ctx, args[0])

		case "compare":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: compare <code> [code] [code]")
				continue
			}
			a.compare(ctx, args)

		case "expand":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: expand <category>")
				continue
			}
			a.expand(ctx, args[0])

		case "map":
			a.showMap(ctx, args)

		case "refresh":
			a.refresh(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to WorldQuery CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}
