package auth

import (
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	UserType        string  `json:"user_type"`
	InvitationToken *string `json:"invitation_token,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}
	if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "passwords do not match",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	// user_type is ignored (pinned to employee) when registering with an
	// invitation token, so only validate it for plain registrations.
	if r.InvitationToken == nil {
		if validator.IsEmpty(r.UserType) {
			errs = append(errs, validator.ValidationError{
				Field:   "user_type",
				Message: "user_type is required",
			})
		} else if !validator.IsInSlice(r.UserType, []string{"business", "contractor", "employee"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "user_type",
				Message: "user_type must be business, contractor, or employee",
			})
		}
	} else if !validator.IsValidUUID(*r.InvitationToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "invitation_token",
			Message: "invitation_token must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

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

// SessionTrackingRequest captures client metadata stored with refresh tokens
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"-"` // delivered via HttpOnly cookie
	RefreshTokenExpiresIn int64  `json:"-"`
}

// RegisterResponse returns the created account plus tokens
type RegisterResponse struct {
	UserID    string `json:"user_id"`
	ProfileID string `json:"profile_id"`
	UserType  string `json:"user_type"`
	Approved  bool   `json:"approved"`
	TokenResponse
}
