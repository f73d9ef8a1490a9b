package site

import "context"

// SiteRepository defines the interface for site data access
type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Site, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Site, error)
	Delete(ctx context.Context, id string) error

	// Requirements
	CreateRequirements(ctx context.Context, reqs []Requirement) error
	ListRequirements(ctx context.Context, siteID string) ([]Requirement, error)
	UpdateRequirement(ctx context.Context, id, siteID string, req UpdateRequirementRequest) (Requirement, error)
}
