package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/undefineddevelopers/skillexchange/internal/client/api"
	"github.com/undefineddevelopers/skillexchange/internal/common"
)

var (
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// minPasswordLen is the signup password policy.
const minPasswordLen = 6

// ValidateLogin checks login input before any network call is made.
func ValidateLogin(mobileNumber, password string) error {
	if !mobileRe.MatchString(mobileNumber) {
		return common.ErrInvalidMobile
	}
	if password == "" {
		return fmt.Errorf("%w: password", common.ErrFieldRequired)
	}
	return nil
}

// ValidateSignup checks signup input, including the password confirmation,
// before any network call is made.
func ValidateSignup(name, mobileNumber, email, password, confirm string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name", common.ErrFieldRequired)
	}
	if !mobileRe.MatchString(mobileNumber) {
		return common.ErrInvalidMobile
	}
	if !emailRe.MatchString(email) {
		return common.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return common.ErrPasswordTooShort
	}
	if password != confirm {
		return common.ErrPasswordMismatch
	}
	return nil
}

// ValidateEmail checks the email shape on its own, for account updates.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// ValidateProfile requires all five profile fields to be present.
func ValidateProfile(req api.ProfileRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"bio", req.Bio},
		{"college name", req.CollegeName},
		{"department", req.Department},
		{"year of study", req.YearOfStudy},
		{"location", req.Location},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", common.ErrFieldRequired, f.name)
		}
	}
	return nil
}

// ValidateSkillName requires a non-empty skill name.
func ValidateSkillName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: skill name", common.ErrFieldRequired)
	}
	return nil
}
