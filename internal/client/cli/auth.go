package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

var (
	promptLine     = PromptLine
	promptPassword = PromptPassword
)

// Register prompts for name, email and password and creates an account.
// The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := promptLine(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := promptLine(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	account, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id %s)\n", account.Email, account.ID)
	return nil
}

// Login prompts for credentials; on success later commands run as that
// account until logout.
func (a *App) Login(ctx context.Context) error {
	email, err := promptLine(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		return err
	}

	a.userName = email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// WhoAmI prints the identity the server reads from the session token.
func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := a.api.Current(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id:     %s\nname:   %s\navatar: %s\n", id.ID, id.Name, id.Avatar)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

// Logout forgets the session token.
func (a *App) Logout() {
	a.api.Logout()
	a.userName = ""
}
