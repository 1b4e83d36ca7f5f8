package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
)

type fakeAPI struct {
	api.Client

	profile *api.Profile
	err     error

	requestedUserID int64
}

func (f *fakeAPI) GetMyProfile(context.Context) (*api.Profile, error) {
	return f.profile, f.err
}

func (f *fakeAPI) GetProfileByID(_ context.Context, userID int64) (*api.Profile, error) {
	f.requestedUserID = userID
	return f.profile, f.err
}

func capturingOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var printed []string
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestProfile_MissingProfileIsNormalState(t *testing.T) {
	printed := capturingOutput(t)
	a := &App{client: &fakeAPI{err: api.ErrProfileNotFound}}

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("missing profile must not be an error: %v", err)
	}

	found := false
	for _, line := range *printed {
		if strings.Contains(line, "No profile yet") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing-profile hint not printed: %+v", *printed)
	}
}

func TestProfile_PrintsFields(t *testing.T) {
	printed := capturingOutput(t)
	a := &App{client: &fakeAPI{profile: &api.Profile{
		UserID:      7,
		Name:        "Asha",
		CollegeName: "IIT Delhi",
		Department:  "CS",
		YearOfStudy: "3",
		Location:    "Delhi",
		Skills:      []string{"python", "go"},
	}}}

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	joined := strings.Join(*printed, "\n")
	for _, want := range []string{"Asha", "IIT Delhi", "python, go"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("output missing %q:\n%s", want, joined)
		}
	}
}

func TestViewUser_InvalidIDRejectedLocally(t *testing.T) {
	muteOutput(t)
	fake := &fakeAPI{}
	a := &App{client: fake}
	stubInputs(t, []string{"not-a-number"}, nil)

	if err := a.ViewUser(context.Background()); err == nil {
		t.Fatal("want error for non-numeric id")
	}
	if fake.requestedUserID != 0 {
		t.Fatal("invalid id must not reach the API")
	}
}

func TestViewUser_FetchesRequestedID(t *testing.T) {
	muteOutput(t)
	fake := &fakeAPI{profile: &api.Profile{UserID: 42, Name: "Ravi"}}
	a := &App{client: fake}
	stubInputs(t, []string{"42"}, nil)

	if err := a.ViewUser(context.Background()); err != nil {
		t.Fatalf("ViewUser err: %v", err)
	}
	if fake.requestedUserID != 42 {
		t.Fatalf("requested id = %d, want 42", fake.requestedUserID)
	}
}
