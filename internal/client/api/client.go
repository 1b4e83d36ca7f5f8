package api

import "context"

// CredentialStore is the persistence surface the pipeline needs for the
// session tokens. Reads of a missing key return "" with a nil error.
type CredentialStore interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SaveTokens(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}

// Client lists the typed operations of the SkillExchange API.
//
// All methods honor context cancellation and timeouts. Methods requiring an
// authenticated session rely on the pipeline to attach and refresh tokens;
// callers never handle tokens directly.
type Client interface {
	Login(ctx context.Context, mobileNumber, password string) (*TokenPair, error)
	Signup(ctx context.Context, name, mobileNumber, email, password string) error
	RequestPasswordReset(ctx context.Context, fields map[string]string) error
	ResetPassword(ctx context.Context, fields map[string]string) error
	UpdateRole(ctx context.Context, mobileNumber string, role Role) error

	GetCurrentUser(ctx context.Context) (*User, error)
	UpdateCurrentUser(ctx context.Context, name, email string) (*User, error)

	GetAllSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, name string) (*Skill, error)
	AddSkillToMe(ctx context.Context, skillID int64) error
	RemoveSkillFromMe(ctx context.Context, skillID int64) error
	AssignSkill(ctx context.Context, userID int64, skillName string) error

	CreateProfile(ctx context.Context, req ProfileRequest) (*Profile, error)
	UploadProfilePhoto(ctx context.Context, filename string, content []byte) (*Profile, error)
	GetProfileByID(ctx context.Context, userID int64) (*Profile, error)
	GetMyProfile(ctx context.Context) (*Profile, error)

	SearchUsers(ctx context.Context, skill, name string, page, size int) (*SearchResult, error)
}
