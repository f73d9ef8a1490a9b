package contractor

import (
	"time"

	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/validator"
)

// UpdateRequest carries the contractor-editable directory fields
type UpdateRequest struct {
	CompanyName string  `json:"company_name"`
	ServiceType string  `json:"service_type"`
	Location    string  `json:"location"`
	Phone       *string `json:"phone,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
		})
	}
	if len(r.CompanyName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.ServiceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_type",
			Message: "service_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListQuery filters the contractor directory
type ListQuery struct {
	ServiceType *string
	Location    *string
	Search      *string // matches company name
	ActiveOnly  bool
}

// CreateServiceAreaRequest adds a region to a contractor
type CreateServiceAreaRequest struct {
	City       string  `json:"city"`
	PostalCode *string `json:"postal_code,omitempty"`
}

func (r *CreateServiceAreaRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.City) {
		errs = append(errs, validator.ValidationError{
			Field:   "city",
			Message: "city is required",
		})
	}
	if r.PostalCode != nil && !validator.IsValidPostalCode(*r.PostalCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "postal_code",
			Message: "postal_code format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateLicenseRequest records a trade license
type CreateLicenseRequest struct {
	Name          string  `json:"name"`
	LicenseNumber string  `json:"license_number"`
	ExpiresAt     *string `json:"expires_at,omitempty"` // YYYY-MM-DD
	DocumentURL   *string `json:"document_url,omitempty"`
}

func (r *CreateLicenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.LicenseNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "license_number",
			Message: "license_number is required",
		})
	}
	if r.ExpiresAt != nil {
		if _, ok := validator.IsValidDate(*r.ExpiresAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expires_at",
				Message: "expires_at must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Response is the contractor directory shape
type Response struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	ServiceType string    `json:"service_type"`
	Location    string    `json:"location"`
	Rating      float64   `json:"rating"`
	Phone       *string   `json:"phone,omitempty"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts a Contractor entity to its API shape
func ToResponse(c Contractor) Response {
	return Response{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		ServiceType: c.ServiceType,
		Location:    c.Location,
		Rating:      c.Rating,
		Phone:       c.Phone,
		Email:       c.Email,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}
