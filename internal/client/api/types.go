package api

import "encoding/json"

// Envelope is the uniform response wrapper used by every endpoint,
// regardless of HTTP status. Data is present only when Success is true.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// TokenPair is the credential pair issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// User is the authenticated account as reported by /users/me.
type User struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MobileNumber    string `json:"mobileNumber"`
	Email           string `json:"email"`
	Roles           string `json:"roles"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// Role maps the free-form roles field onto the closed Role set.
func (u *User) Role() Role {
	return ParseRole(u.Roles)
}

// Profile holds a user's extended attributes. Skills are referenced by name,
// not id, so a catalog rename can desynchronize them from the Skill entries.
type Profile struct {
	UserID          int64    `json:"userId"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio,omitempty"`
	CollegeName     string   `json:"collegeName,omitempty"`
	Department      string   `json:"department,omitempty"`
	YearOfStudy     string   `json:"yearOfStudy,omitempty"`
	Location        string   `json:"location,omitempty"`
	ProfileImageURL string   `json:"profileImageUrl,omitempty"`
	Skills          []string `json:"skills,omitempty"`
}

// Skill is one entry of the globally shared skill catalog.
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SearchResult is one page of a user search.
type SearchResult struct {
	Content       []Profile `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Last          bool      `json:"last"`
}

// ProfileRequest carries the five fields of a profile upsert. All of them
// are required; validation happens before the request is issued.
type ProfileRequest struct {
	Bio         string `json:"bio"`
	CollegeName string `json:"collegeName"`
	Department  string `json:"department"`
	YearOfStudy string `json:"yearOfStudy"`
	Location    string `json:"location"`
}

type loginRequest struct {
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

type signupRequest struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Password     string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type updateRoleRequest struct {
	MobileNumber string `json:"mobileNumber"`
	Roles        string `json:"roles"`
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createSkillRequest struct {
	Name string `json:"name"`
}

type assignSkillRequest struct {
	UserID    int64  `json:"userId"`
	SkillName string `json:"skillName"`
}
