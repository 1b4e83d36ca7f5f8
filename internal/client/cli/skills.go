package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/undefineddevelopers/skillexchange/internal/client/services"
)

// Skills prints the global skill catalog with ids, so the user can pick one
// for 'addskill' or 'rmskill'.
func (a *App) Skills(ctx context.Context) error {
	skills, err := a.client.GetAllSkills(ctx)
	if err != nil {
		return err
	}
	if len(skills) == 0 {
		printlnFn("The catalog is empty. Use 'newskill' to add the first entry.")
		return nil
	}
	for _, s := range skills {
		printlnFn(fmt.Sprintf("%6d  %s", s.ID, s.Name))
	}
	return nil
}

func (a *App) promptSkillID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid skill id %q", raw)
	}
	return id, nil
}

// AddSkill attaches a catalog skill to the current user.
func (a *App) AddSkill(ctx context.Context) error {
	id, err := a.promptSkillID("Enter skill id (see 'skills')")
	if err != nil {
		return err
	}
	if err := a.client.AddSkillToMe(ctx, id); err != nil {
		return err
	}
	printlnFn("Skill added.")
	return nil
}

// RemoveSkill detaches a skill from the current user.
func (a *App) RemoveSkill(ctx context.Context) error {
	id, err := a.promptSkillID("Enter skill id to remove")
	if err != nil {
		return err
	}
	if err := a.client.RemoveSkillFromMe(ctx, id); err != nil {
		return err
	}
	printlnFn("Skill removed.")
	return nil
}

// NewSkill creates a new entry in the shared skill catalog.
func (a *App) NewSkill(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter new skill name", os.Stdout)
	if err != nil {
		return err
	}
	if err := services.ValidateSkillName(name); err != nil {
		return err
	}

	skill, err := a.client.CreateSkill(ctx, name)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Created skill %q with id %d.", skill.Name, skill.ID))
	return nil
}

// AssignSkill attaches a skill to another user by id. Admin only; the server
// rejects the call for regular accounts.
func (a *App) AssignSkill(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", raw)
	}

	name, err := getSimpleText(a.reader, "Enter skill name", os.Stdout)
	if err != nil {
		return err
	}
	if err := services.ValidateSkillName(name); err != nil {
		return err
	}

	if err := a.client.AssignSkill(ctx, userID, name); err != nil {
		return err
	}
	printlnFn("Skill assigned.")
	return nil
}
