package job

import (
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	SiteID         string  `json:"site_id"`
	ContractorName *string `json:"contractor_name,omitempty"`
	ServiceType    string  `json:"service_type"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	Priority       string  `json:"priority"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.ServiceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_type",
			Message: "service_type is required",
		})
	}
	if validator.IsEmpty(r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority is required",
		})
	} else if !ValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be low, medium, or high",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	ServiceType   string  `json:"service_type"`
	Priority      string  `json:"priority"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.ServiceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_type",
			Message: "service_type is required",
		})
	}
	if !ValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be low, medium, or high",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TransitionRequest moves a job to a new status
type TransitionRequest struct {
	Status string `json:"status"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending, in_progress, completed, or cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID            string    `json:"id"`
	SiteID        string    `json:"site_id"`
	ContractorID  *string   `json:"contractor_id,omitempty"`
	ServiceType   string    `json:"service_type"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	AttachmentURL *string   `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToResponse(j Job) Response {
	return Response{
		ID:            j.ID,
		SiteID:        j.SiteID,
		ContractorID:  j.ContractorID,
		ServiceType:   j.ServiceType,
		Title:         j.Title,
		Description:   j.Description,
		Status:        string(j.Status),
		Priority:      string(j.Priority),
		AttachmentURL: j.AttachmentURL,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}
