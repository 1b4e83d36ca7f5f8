package cli

import (
	"context"
	"os"

	"github.com/undefineddevelopers/skillexchange/internal/client/repositories/preferences"
)

// Theme shows the stored color theme and optionally changes it. The value is
// a local preference only and survives logout.
func (a *App) Theme(ctx context.Context) error {
	current, err := a.prefs.Theme(ctx)
	if err != nil {
		return err
	}
	printlnFn("Current theme:", string(current))

	input, err := getSimpleText(a.reader, "New theme (light/dark/auto, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if input == "" {
		return nil
	}

	theme, err := preferences.ParseTheme(input)
	if err != nil {
		return err
	}
	if err := a.prefs.SetTheme(ctx, theme); err != nil {
		return err
	}

	printlnFn("Theme set to", string(theme))
	return nil
}
