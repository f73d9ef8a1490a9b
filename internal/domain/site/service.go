package site

import "context"

// SiteService defines the business-site management logic
type SiteService interface {
	// Create creates a site for the business and seeds its default
	// compliance requirements.
	Create(ctx context.Context, businessID string, req CreateRequest) (Response, error)

	Get(ctx context.Context, businessID, siteID string) (Response, error)
	List(ctx context.Context, businessID string) ([]Response, error)
	Update(ctx context.Context, businessID, siteID string, req UpdateRequest) (Response, error)
	Delete(ctx context.Context, businessID, siteID string) error

	ListRequirements(ctx context.Context, businessID, siteID string) ([]RequirementResponse, error)
	UpdateRequirement(ctx context.Context, businessID, siteID, requirementID string, req UpdateRequirementRequest) (RequirementResponse, error)
}
