package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
)

// Login authenticates with a mobile number and password. On success the
// returned token pair has already been persisted in the credential store.
func (c *HTTPClient) Login(ctx context.Context, mobileNumber, password string) (*TokenPair, error) {
	var pair TokenPair
	in := loginRequest{MobileNumber: mobileNumber, Password: password}
	if err := c.call(ctx, http.MethodPost, EndpointLogin, nil, in, &pair); err != nil {
		return nil, err
	}
	if err := c.creds.SaveTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, fmt.Errorf("persist tokens: %w", err)
	}
	return &pair, nil
}

// Signup creates a new account. It does not log the user in.
func (c *HTTPClient) Signup(ctx context.Context, name, mobileNumber, email, password string) error {
	in := signupRequest{Name: name, MobileNumber: mobileNumber, Email: email, Password: password}
	return c.call(ctx, http.MethodPost, EndpointSignup, nil, in, nil)
}

// RequestPasswordReset starts the password-reset flow. The server defines
// the field set, so it is passed through as-is.
func (c *HTTPClient) RequestPasswordReset(ctx context.Context, fields map[string]string) error {
	return c.call(ctx, http.MethodPost, EndpointRequestPasswordReset, nil, fields, nil)
}

// ResetPassword completes the password-reset flow.
func (c *HTTPClient) ResetPassword(ctx context.Context, fields map[string]string) error {
	return c.call(ctx, http.MethodPost, EndpointResetPassword, nil, fields, nil)
}

// UpdateRole changes the role of the account identified by mobile number.
// Requires an admin session.
func (c *HTTPClient) UpdateRole(ctx context.Context, mobileNumber string, role Role) error {
	in := updateRoleRequest{MobileNumber: mobileNumber, Roles: role.String()}
	return c.call(ctx, http.MethodPost, EndpointUpdateRole, nil, in, nil)
}

// GetCurrentUser fetches the authenticated account.
func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.call(ctx, http.MethodGet, EndpointCurrentUser, nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateCurrentUser changes the account's name and email.
func (c *HTTPClient) UpdateCurrentUser(ctx context.Context, name, email string) (*User, error) {
	var u User
	in := updateUserRequest{Name: name, Email: email}
	if err := c.call(ctx, http.MethodPut, EndpointCurrentUser, nil, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAllSkills lists the shared skill catalog.
func (c *HTTPClient) GetAllSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	if err := c.call(ctx, http.MethodGet, EndpointSkills, nil, nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSkill adds an entry to the shared catalog. The mutation is global,
// not per-user.
func (c *HTTPClient) CreateSkill(ctx context.Context, name string) (*Skill, error) {
	var s Skill
	if err := c.call(ctx, http.MethodPost, EndpointSkills, nil, createSkillRequest{Name: name}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// AddSkillToMe attaches a catalog skill to the current user.
func (c *HTTPClient) AddSkillToMe(ctx context.Context, skillID int64) error {
	return c.call(ctx, http.MethodPost, EndpointMySkill(skillID), nil, nil, nil)
}

// RemoveSkillFromMe detaches a catalog skill from the current user.
func (c *HTTPClient) RemoveSkillFromMe(ctx context.Context, skillID int64) error {
	return c.call(ctx, http.MethodDelete, EndpointMySkill(skillID), nil, nil, nil)
}

// AssignSkill attaches a skill, by name, to another user. Requires an admin
// session.
func (c *HTTPClient) AssignSkill(ctx context.Context, userID int64, skillName string) error {
	in := assignSkillRequest{UserID: userID, SkillName: skillName}
	return c.call(ctx, http.MethodPost, EndpointAssignSkill, nil, in, nil)
}

// CreateProfile upserts the current user's profile.
func (c *HTTPClient) CreateProfile(ctx context.Context, req ProfileRequest) (*Profile, error) {
	var p Profile
	if err := c.call(ctx, http.MethodPost, EndpointProfiles, nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UploadProfilePhoto replaces the stored photo with content, sent as the
// multipart field "file".
func (c *HTTPClient) UploadProfilePhoto(ctx context.Context, filename string, content []byte) (*Profile, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	var p Profile
	r := request{
		method:      http.MethodPost,
		path:        EndpointProfilePhoto,
		body:        buf.Bytes(),
		contentType: w.FormDataContentType(),
	}
	if err := c.send(ctx, r, &p, 0); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfileByID fetches another user's profile. A missing profile is
// reported as ErrProfileNotFound.
func (c *HTTPClient) GetProfileByID(ctx context.Context, userID int64) (*Profile, error) {
	var p Profile
	if err := c.call(ctx, http.MethodGet, EndpointProfileByID(userID), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetMyProfile fetches the current user's profile. A missing profile is
// reported as ErrProfileNotFound, a valid state for accounts that have not
// filled theirs in yet.
func (c *HTTPClient) GetMyProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.call(ctx, http.MethodGet, EndpointMyProfile, nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchUsers queries profiles by optional skill and/or name filter with
// pagination.
func (c *HTTPClient) SearchUsers(ctx context.Context, skill, name string, page, size int) (*SearchResult, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if skill != "" {
		q.Set("skill", skill)
	}
	if name != "" {
		q.Set("name", name)
	}

	var res SearchResult
	if err := c.call(ctx, http.MethodGet, EndpointSearchUsers, q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
