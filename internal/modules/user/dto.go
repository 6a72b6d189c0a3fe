package user

import (
	"regexp"
	"time"

	"filmorate/internal/domain"
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// UserRequest is the payload for both create and update. Optional fields are
// pointers so an absent field can be told apart from a zero value during
// merge-on-update.
type UserRequest struct {
	ID       *int64       `json:"id"`
	Email    string       `json:"email" validate:"required,email"`
	Login    string       `json:"login" validate:"required"`
	Name     *string      `json:"name"`
	Birthday *domain.Date `json:"birthday"`
}

// Validate applies the field rules shared by create and update: email syntax,
// login charset, birthday not in the future. Returns nil when valid.
func (r *UserRequest) Validate(structErrs map[string]string) map[string]string {
	errs := map[string]string{}
	for k, v := range structErrs {
		errs[k] = v
	}
	if r.Login != "" && !loginPattern.MatchString(r.Login) {
		errs["Login"] = "must contain only letters, digits and underscores"
	}
	if r.Birthday != nil && r.Birthday.After(time.Now()) {
		errs["Birthday"] = "must not be in the future"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
