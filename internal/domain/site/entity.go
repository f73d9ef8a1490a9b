package site

import "time"

// ComplianceStatus of a site against its requirements
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "compliant"
	ComplianceNonCompliant ComplianceStatus = "non_compliant"
	CompliancePending      ComplianceStatus = "pending_review"
)

// Site is a physical location owned by a business profile
type Site struct {
	ID               string
	BusinessID       string
	Name             string
	Address          string
	ComplianceStatus ComplianceStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RequirementStatus tracks a single compliance item on a site
type RequirementStatus string

const (
	RequirementOutstanding RequirementStatus = "outstanding"
	RequirementSatisfied   RequirementStatus = "satisfied"
	RequirementWaived      RequirementStatus = "waived"
)

// Requirement is a compliance/safety item attached to a site
type Requirement struct {
	ID          string
	SiteID      string
	Name        string
	Description *string
	Status      RequirementStatus
	DocumentURL *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
