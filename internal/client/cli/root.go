package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if !a.loggedIn {
		return ""
	}
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	return "(signed in)"
}

// Root restores the persisted session and runs the REPL until exit.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to SkillExchange CLI (type 'help' for commands)")

	a.restoreSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
