package dashboard

import "context"

// DashboardService defines the dashboard business logic interface
type DashboardService interface {
	BusinessOverview(ctx context.Context, businessProfileID string) (*BusinessOverview, error)
	ContractorOverview(ctx context.Context, contractorProfileID string) (*ContractorOverview, error)
}
