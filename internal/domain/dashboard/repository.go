package dashboard

import "context"

// DashboardRepository defines the interface for dashboard aggregates
type DashboardRepository interface {
	// GetBusinessOverview aggregates site, job, and approval counts for a
	// business in a handful of single queries.
	GetBusinessOverview(ctx context.Context, businessID string) (*BusinessOverview, error)

	// GetContractorOverview aggregates job and assignment counts for a
	// contractor.
	GetContractorOverview(ctx context.Context, contractorID string) (*ContractorOverview, error)
}
