package contractor

import "time"

// Status of a contractor in the directory
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Contractor is a service-provider entity, one per contractor profile.
// Created lazily on the first profile save when none exists.
type Contractor struct {
	ID          string
	ProfileID   string
	CompanyName string
	ServiceType string
	Location    string
	Rating      float64
	Phone       *string
	Email       string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceArea is a region a contractor serves
type ServiceArea struct {
	ID           string
	ContractorID string
	City         string
	PostalCode   *string
	CreatedAt    time.Time
}

// License is a trade license held by a contractor
type License struct {
	ID            string
	ContractorID  string
	Name          string
	LicenseNumber string
	ExpiresAt     *time.Time
	DocumentURL   *string
	CreatedAt     time.Time
}

// IsExpired reports whether the license is past its expiry
func (l *License) IsExpired() bool {
	return l.ExpiresAt != nil && time.Now().After(*l.ExpiresAt)
}
