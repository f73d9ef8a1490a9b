package site

import (
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	ComplianceStatus *string `json:"compliance_status,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}
	if r.ComplianceStatus != nil && !validator.IsInSlice(*r.ComplianceStatus,
		[]string{string(ComplianceCompliant), string(ComplianceNonCompliant), string(CompliancePending)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "compliance_status",
			Message: "compliance_status must be compliant, non_compliant, or pending_review",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequirementRequest flips a compliance item's state
type UpdateRequirementRequest struct {
	Status      string  `json:"status"`
	DocumentURL *string `json:"document_url,omitempty"`
}

func (r *UpdateRequirementRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status,
		[]string{string(RequirementOutstanding), string(RequirementSatisfied), string(RequirementWaived)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be outstanding, satisfied, or waived",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	ComplianceStatus string    `json:"compliance_status"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToResponse(s Site) Response {
	return Response{
		ID:               s.ID,
		Name:             s.Name,
		Address:          s.Address,
		ComplianceStatus: string(s.ComplianceStatus),
		CreatedAt:        s.CreatedAt,
	}
}

type RequirementResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	DocumentURL *string `json:"document_url,omitempty"`
}

func ToRequirementResponse(r Requirement) RequirementResponse {
	return RequirementResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      string(r.Status),
		DocumentURL: r.DocumentURL,
	}
}
