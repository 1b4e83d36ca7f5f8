package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
	"github.com/undefineddevelopers/skillexchange/internal/client/services"
	"github.com/undefineddevelopers/skillexchange/internal/filex"
)

func printProfile(p *api.Profile) {
	printlnFn("Name:      ", p.Name)
	if p.Bio != "" {
		printlnFn("Bio:       ", p.Bio)
	}
	printlnFn("College:   ", p.CollegeName)
	printlnFn("Department:", p.Department)
	printlnFn("Year:      ", p.YearOfStudy)
	printlnFn("Location:  ", p.Location)
	if len(p.Skills) > 0 {
		printlnFn("Skills:    ", strings.Join(p.Skills, ", "))
	}
	if p.ProfileImageURL != "" {
		printlnFn("Photo:     ", p.ProfileImageURL)
	}
}

// Profile shows the current user's profile. A missing profile is a normal
// state for a fresh account, not an error.
func (a *App) Profile(ctx context.Context) error {
	profile, err := a.client.GetMyProfile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrProfileNotFound) {
			printlnFn("No profile yet. Use 'editprofile' to create one.")
			return nil
		}
		return err
	}
	printProfile(profile)
	return nil
}

// EditProfile collects the profile fields and submits them as one upsert.
// The same call creates a missing profile and replaces an existing one.
func (a *App) EditProfile(ctx context.Context) error {
	bio, err := getMultiline(a.reader, "Enter bio:", os.Stdout)
	if err != nil {
		return err
	}
	college, err := getSimpleText(a.reader, "Enter college name", os.Stdout)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Enter department", os.Stdout)
	if err != nil {
		return err
	}
	year, err := getSimpleText(a.reader, "Enter year of study", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Enter location", os.Stdout)
	if err != nil {
		return err
	}

	req := api.ProfileRequest{
		Bio:         bio,
		CollegeName: college,
		Department:  department,
		YearOfStudy: year,
		Location:    location,
	}
	if err := services.ValidateProfile(req); err != nil {
		return err
	}

	profile, err := a.client.CreateProfile(ctx, req)
	if err != nil {
		return err
	}

	printlnFn("Profile saved.")
	printProfile(profile)
	return nil
}

// UploadPhoto sends a local image file as the new profile photo.
func (a *App) UploadPhoto(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image path (.jpg or .png)", os.Stdout)
	if err != nil {
		return err
	}

	content, err := filex.ReadImage(path)
	if err != nil {
		return err
	}

	profile, err := a.client.UploadProfilePhoto(ctx, filepath.Base(path), content)
	if err != nil {
		return err
	}

	printlnFn("Photo uploaded.")
	if profile.ProfileImageURL != "" {
		printlnFn("URL:", profile.ProfileImageURL)
	}
	return nil
}

// ViewUser shows another user's profile by their numeric id.
func (a *App) ViewUser(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", raw)
	}

	profile, err := a.client.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrProfileNotFound) {
			printlnFn("This user has not created a profile yet.")
			return nil
		}
		return err
	}
	printProfile(profile)
	return nil
}
