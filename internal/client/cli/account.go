package cli

import (
	"context"
	"os"

	"github.com/undefineddevelopers/skillexchange/internal/client/services"
)

// EditAccount updates the account's name and/or email. Empty input keeps the
// current value; the cached snapshot is refreshed afterwards so the prompt
// and 'whoami' stay consistent.
func (a *App) EditAccount(ctx context.Context) error {
	current, err := a.session.CurrentUser(ctx)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name (empty to keep \""+current.Name+"\")", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}

	email, err := getSimpleText(a.reader, "Enter email (empty to keep \""+current.Email+"\")", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = current.Email
	}
	if err := services.ValidateEmail(email); err != nil {
		return err
	}

	if _, err := a.client.UpdateCurrentUser(ctx, name, email); err != nil {
		return err
	}

	// Re-fetch so the local snapshot reflects the server's view.
	if user, err := a.session.CurrentUser(ctx); err == nil {
		a.userName = user.Name
	}

	printlnFn("Account updated.")
	return nil
}
