package job

import "context"

// JobRepository defines the interface for job data access
type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	ListBySite(ctx context.Context, siteID string) ([]Job, error)
	ListByContractor(ctx context.Context, contractorID string) ([]Job, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Job, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Job, error)
	Delete(ctx context.Context, id string) error

	// ContractorRefsBySiteIDs returns the distinct contractor references
	// embedded in job rows for the given sites; the second source of the
	// site-contractor merge.
	ContractorRefsBySiteIDs(ctx context.Context, siteIDs []string) ([]ContractorRef, error)
}
