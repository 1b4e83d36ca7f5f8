package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/undefineddevelopers/skillexchange/internal/client/services"
)

// Search prompts for filters and pages through matching users. Both filters
// are optional; an empty input means no constraint on that field.
func (a *App) Search(ctx context.Context) error {
	skill, err := getSimpleText(a.reader, "Filter by skill (empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Filter by name (empty for any)", os.Stdout)
	if err != nil {
		return err
	}

	for page := 0; ; page++ {
		res, err := a.search.Search(ctx, skill, name, page, services.DefaultPageSize)
		if err != nil {
			// A search superseded by a newer one just stops paging quietly.
			if errors.Is(err, services.ErrStaleResult) {
				return nil
			}
			return err
		}

		if res.TotalElements == 0 {
			printlnFn("No users found.")
			return nil
		}

		for _, p := range res.Content {
			line := fmt.Sprintf("%6d  %s", p.UserID, p.Name)
			if len(p.Skills) > 0 {
				line += "  [" + strings.Join(p.Skills, ", ") + "]"
			}
			printlnFn(line)
		}
		printlnFn(fmt.Sprintf("Page %d of %d (%d users)", res.Page+1, res.TotalPages, res.TotalElements))

		if res.Last {
			return nil
		}
		more, err := getSimpleText(a.reader, "Next page? (y/n)", os.Stdout)
		if err != nil {
			return err
		}
		if !strings.EqualFold(more, "y") {
			return nil
		}
	}
}
