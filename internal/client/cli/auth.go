package cli

import (
	"context"
	"errors"
	"os"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
	"github.com/undefineddevelopers/skillexchange/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Signup prompts for the account fields and attempts to create a new account.
// A fresh account still needs a login afterwards; the server does not issue
// tokens on signup.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	mobile, err := getSimpleText(a.reader, "Enter mobile number (10 digits)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.session.Signup(ctx, name, mobile, email, string(password), string(confirm)); err != nil {
		return err
	}

	printlnFn("Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// tokens are already persisted by the pipeline; here we only refresh the
// prompt state and cache the account snapshot.
func (a *App) Login(ctx context.Context) error {
	mobile, err := getSimpleText(a.reader, "Enter mobile number", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, mobile, string(password)); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Server unavailable, try again later.")
			return nil
		}
		return err
	}

	a.loggedIn = true
	if user, err := a.session.CurrentUser(ctx); err == nil {
		a.userName = user.Name
		a.admin = user.Role() == api.RoleSuperAdmin
	}

	printlnFn("Logged in.")
	return nil
}

// Logout clears the locally persisted session. Purely client-side: the
// server keeps no session state to invalidate.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.loggedIn = false
	a.userName = ""
	a.admin = false
	printlnFn("Logged out.")
	return nil
}

// Whoami shows the current account. It prefers a fresh fetch and falls back
// to the cached snapshot when the server is unreachable.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.session.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return err
		}
		printlnFn("Server unavailable, showing cached account.")
		user, err = a.session.CachedUser(ctx)
		if err != nil {
			return err
		}
		if user == nil {
			printlnFn("No cached account. Log in first.")
			return nil
		}
	}

	printlnFn("Name:  ", user.Name)
	printlnFn("Mobile:", user.MobileNumber)
	printlnFn("Email: ", user.Email)
	printlnFn("Role:  ", string(user.Role()))

	if info, err := a.session.TokenInfo(ctx); err == nil {
		if info.Expired {
			printlnFn("Session: token expired, will refresh on next request")
		} else if !info.ExpiresAt.IsZero() {
			printlnFn("Session: token valid until", info.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}

// ResetPassword drives the two-step forgotten-password flow: request a reset
// code for a mobile number, then submit the code with the new password.
func (a *App) ResetPassword(ctx context.Context) error {
	mobile, err := getSimpleText(a.reader, "Enter mobile number", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.RequestPasswordReset(ctx, map[string]string{"mobileNumber": mobile}); err != nil {
		return err
	}
	printlnFn("Reset code sent.")

	code, err := getSimpleText(a.reader, "Enter reset code", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.client.ResetPassword(ctx, map[string]string{
		"mobileNumber": mobile,
		"otp":          code,
		"newPassword":  string(password),
	})
	if err != nil {
		return err
	}

	printlnFn("Password updated. Use 'login' to sign in.")
	return nil
}
