package auth

import (
	"strings"

	"github.com/officetrack/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterRequest carries the office's account registration rules: ASCII-only
// gmail.com addresses with a local part of at least 6 characters, and
// alphanumeric ASCII passwords of at least 6 characters.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case validator.IsEmpty(r.Email):
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	case validator.ContainsThai(r.Email):
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not contain Thai characters",
		})
	case !strings.HasSuffix(r.Email, "@gmail.com"):
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must end with @gmail.com",
		})
	case len(strings.SplitN(r.Email, "@", 2)[0]) < 6:
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email name must be at least 6 characters",
		})
	}

	switch {
	case validator.IsEmpty(r.Password):
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	case validator.ContainsThai(r.Password):
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not contain Thai characters",
		})
	case !validator.IsAlphanumericASCII(r.Password):
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password may only contain English letters and digits",
		})
	case len(r.Password) < 6:
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}
