package api

import "fmt"

// DefaultBaseURL is the address of the hosted SkillExchange API.
const DefaultBaseURL = "https://app.undefineddevelopers.online/skillexchange/api"

// Logical endpoints, relative to the base URL.
const (
	EndpointLogin                = "/auth/login"
	EndpointSignup               = "/auth/signup"
	EndpointRefresh              = "/auth/refresh"
	EndpointRequestPasswordReset = "/auth/request-password-reset"
	EndpointResetPassword        = "/auth/reset-password"
	EndpointUpdateRole           = "/auth/update-role"

	EndpointCurrentUser = "/users/me"

	EndpointSkills      = "/skills"
	EndpointMySkills    = "/skills/me"
	EndpointAssignSkill = "/skills/assign"

	EndpointProfiles     = "/profiles"
	EndpointProfilePhoto = "/profiles/photo"
	EndpointMyProfile    = "/profiles/me"

	EndpointSearchUsers = "/search/users"
)

// EndpointMySkill is the path adding or removing one skill from the current
// user's set.
func EndpointMySkill(skillID int64) string {
	return fmt.Sprintf("%s/%d", EndpointMySkills, skillID)
}

// EndpointProfileByID is the path of another user's profile.
func EndpointProfileByID(userID int64) string {
	return fmt.Sprintf("%s/%d", EndpointProfiles, userID)
}

// isProfileLookup reports whether path reads a profile, where a 404 means
// "no profile yet" rather than a failed request.
func isProfileLookup(path string) bool {
	if path == EndpointMyProfile {
		return true
	}
	if path == EndpointProfilePhoto {
		return false
	}
	return len(path) > len(EndpointProfiles)+1 && path[:len(EndpointProfiles)+1] == EndpointProfiles+"/"
}
