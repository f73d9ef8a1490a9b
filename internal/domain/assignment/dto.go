package assignment

import (
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/validator"
)

// AssignRequest associates a contractor, referenced by directory name, with a
// site.
type AssignRequest struct {
	ContractorName string `json:"contractor_name"`
	AccessLevel    string `json:"access_level"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContractorName) {
		errs = append(errs, validator.ValidationError{
			Field:   "contractor_name",
			Message: "contractor_name is required",
		})
	}
	if validator.IsEmpty(r.AccessLevel) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_level",
			Message: "access_level is required",
		})
	} else if !ValidAccessLevel(r.AccessLevel) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_level",
			Message: "access_level must be standard, restricted, or full",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest edits an existing assignment
type UpdateRequest struct {
	AccessLevel string `json:"access_level"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidAccessLevel(r.AccessLevel) {
		errs = append(errs, validator.ValidationError{
			Field:   "access_level",
			Message: "access_level must be standard, restricted, or full",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AssignResult reports the outcome of an Assign call. A duplicate pair is
// not an error: the call succeeds with AlreadyAssigned set and no new row.
type AssignResult struct {
	Assignment      Response `json:"assignment"`
	AlreadyAssigned bool     `json:"already_assigned"`
	Warning         string   `json:"warning,omitempty"`
}

type Response struct {
	ID           string    `json:"id"`
	SiteID       string    `json:"site_id"`
	ContractorID string    `json:"contractor_id"`
	AccessLevel  string    `json:"access_level"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToResponse(a Assignment) Response {
	return Response{
		ID:           a.ID,
		SiteID:       a.SiteID,
		ContractorID: a.ContractorID,
		AccessLevel:  string(a.AccessLevel),
		CreatedAt:    a.CreatedAt,
	}
}

// SiteContractorResponse is one entry of the merged per-site contractor view
type SiteContractorResponse struct {
	ContractorID   string  `json:"contractor_id"`
	ContractorName string  `json:"contractor_name"`
	AssignmentID   *string `json:"assignment_id,omitempty"`
	AccessLevel    *string `json:"access_level,omitempty"`
	Source         string  `json:"source"`
}
