package invitation

import (
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/validator"
)

// CreateRequest issues an invitation to a prospective employee
type CreateRequest struct {
	Email string `json:"email"`
}

func (r *CreateRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateResponse returns the shareable registration URL. The URL is usable
// regardless of whether the convenience email was delivered.
type CreateResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Token     string  `json:"token"`
	URL       string  `json:"url"`
	ExpiresAt *string `json:"expires_at,omitempty"`
	EmailSent bool    `json:"email_sent"`
}

// ValidateResponse pre-fills the registration form. UserType is always
// "employee"; the registration form pins the type selector.
type ValidateResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	UserType    string `json:"user_type"`
	InviterName string `json:"inviter_name"`
}
