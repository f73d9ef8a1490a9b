package profile

import "time"

// UserType determines which portal a profile belongs to
type UserType string

const (
	TypeBusiness   UserType = "business"
	TypeContractor UserType = "contractor"
	TypeEmployee   UserType = "employee"
)

// ValidUserType reports whether s is a known user type
func ValidUserType(s string) bool {
	switch UserType(s) {
	case TypeBusiness, TypeContractor, TypeEmployee:
		return true
	}
	return false
}

// Profile represents an account profile. Business profiles are approved on
// creation; contractor and employee profiles stay unapproved until a business
// approver acts.
type Profile struct {
	ID            string
	UserID        string
	FirstName     string
	LastName      string
	Email         string
	UserType      UserType
	IsApproved    bool
	ApprovalDate  *time.Time
	ApprovedBy    *string
	RejectionDate *time.Time
	RejectedBy    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsBusiness checks if the profile belongs to the business portal
func (p *Profile) IsBusiness() bool {
	return p.UserType == TypeBusiness
}

// CanApprove checks if the profile may approve contractor/employee accounts
func (p *Profile) CanApprove() bool {
	return p.UserType == TypeBusiness && p.IsApproved
}

// NeedsApproval checks if portal access is gated on an approval decision
func (p *Profile) NeedsApproval() bool {
	return p.UserType != TypeBusiness && !p.IsApproved
}

// IsRejected checks if an approver explicitly rejected the profile
func (p *Profile) IsRejected() bool {
	return !p.IsApproved && p.RejectionDate != nil
}

// FullName returns the display name
func (p *Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
