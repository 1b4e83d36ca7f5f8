package cli

import (
	"context"
	"os"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
)

// UpdateRole changes a user's role by their mobile number. Admin only; the
// server rejects the call for regular accounts.
func (a *App) UpdateRole(ctx context.Context) error {
	mobile, err := getSimpleText(a.reader, "Enter user's mobile number", os.Stdout)
	if err != nil {
		return err
	}
	raw, err := getSimpleText(a.reader, "Enter role (student/superadmin)", os.Stdout)
	if err != nil {
		return err
	}

	role := api.ParseRole(raw)
	if err := a.client.UpdateRole(ctx, mobile, role); err != nil {
		return err
	}

	printlnFn("Role updated to", string(role))
	return nil
}
