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
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditAccount(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	UploadPhoto(ctx context.Context) error
	ViewUser(ctx context.Context) error
	Skills(ctx context.Context) error
	AddSkill(ctx context.Context) error
	RemoveSkill(ctx context.Context) error
	NewSkill(ctx context.Context) error
	AssignSkill(ctx context.Context) error
	Search(ctx context.Context) error
	Theme(ctx context.Context) error
	UpdateRole(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the SkillExchange CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - resetpw        — reset a forgotten password
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - whoami         — show the current account
//	  - editaccount    — change the account's name or email
//	  - profile        — show my profile
//	  - editprofile    — create or update my profile
//	  - photo          — upload a profile photo
//	  - view           — show another user's profile by id
//	  - skills         — browse the skill catalog
//	  - addskill       — attach a catalog skill to me
//	  - rmskill        — detach a skill from me
//	  - newskill       — add a skill to the catalog
//	  - search         — search users by skill and/or name
//	  - theme          — show or change the color theme
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
//	Admins additionally get:
//	  - role           — change a user's role by mobile number
//	  - assign         — attach a skill to another user
//
// Errors returned by command handlers are printed and the loop continues;
// a failed command never terminates the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("se %s> ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, editaccount, profile, editprofile, photo, view, skills, addskill, rmskill, newskill, search, theme, logout, exit")
				if a.isAdmin() {
					printlnFn("Admin commands: role, assign")
				}
			} else {
				printlnFn("Available commands: signup, login, resetpw, exit")
			}

		case "signup":
			err = a.Signup(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "editaccount":
			err = a.EditAccount(ctx)

		case "resetpw":
			err = a.ResetPassword(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "editprofile":
			err = a.EditProfile(ctx)

		case "photo":
			err = a.UploadPhoto(ctx)

		case "view":
			err = a.ViewUser(ctx)

		case "skills":
			err = a.Skills(ctx)

		case "addskill":
			err = a.AddSkill(ctx)

		case "rmskill":
			err = a.RemoveSkill(ctx)

		case "newskill":
			err = a.NewSkill(ctx)

		case "assign":
			err = a.AssignSkill(ctx)

		case "search":
			err = a.Search(ctx)

		case "theme":
			err = a.Theme(ctx)

		case "role":
			err = a.UpdateRole(ctx)

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
