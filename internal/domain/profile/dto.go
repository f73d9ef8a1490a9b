package profile

import (
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/validator"
)

// UpdateRequest carries the owner-editable profile fields. Approval fields
// are never writable through this path.
type UpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if len(r.FirstName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not exceed 100 characters",
		})
	}
	if len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListQuery narrows the approval review list
type ListQuery struct {
	UserType       *UserType // contractor or employee; nil means both
	UnapprovedOnly bool
}

// Response is the profile shape returned to clients
type Response struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	UserType     string     `json:"user_type"`
	IsApproved   bool       `json:"is_approved"`
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
	ApprovedBy   *string    `json:"approved_by,omitempty"`
	IsRejected   bool       `json:"is_rejected"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToResponse converts a Profile entity to its API shape
func ToResponse(p Profile) Response {
	return Response{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		UserType:     string(p.UserType),
		IsApproved:   p.IsApproved,
		ApprovalDate: p.ApprovalDate,
		ApprovedBy:   p.ApprovedBy,
		IsRejected:   p.IsRejected(),
		CreatedAt:    p.CreatedAt,
	}
}
