package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Root runs the command loop until "exit" or end of input.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to gophauth CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "gauth %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		var cmdErr error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, ping, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, ping, exit")
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "ping":
			cmdErr = a.Ping(ctx)
		case "logout":
			a.Logout()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(a.out, "Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
