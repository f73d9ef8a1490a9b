package contractor

import "context"

// ContractorRepository defines the interface for contractor data access
type ContractorRepository interface {
	Create(ctx context.Context, c Contractor) (Contractor, error)
	GetByID(ctx context.Context, id string) (Contractor, error)
	GetByProfileID(ctx context.Context, profileID string) (Contractor, error)

	// GetByCompanyName resolves a directory name to a contractor. Names are
	// matched case-insensitively; assignment flows de-duplicate by name.
	GetByCompanyName(ctx context.Context, name string) (Contractor, error)

	// ExistsByID re-checks a contractor id server-side before writes that
	// reference it (guards against stale client lists).
	ExistsByID(ctx context.Context, id string) (bool, error)

	List(ctx context.Context, q ListQuery) ([]Contractor, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Contractor, error)

	// Service areas
	CreateServiceArea(ctx context.Context, area ServiceArea) (ServiceArea, error)
	ListServiceAreas(ctx context.Context, contractorID string) ([]ServiceArea, error)
	DeleteServiceArea(ctx context.Context, id, contractorID string) error

	// Licenses
	CreateLicense(ctx context.Context, lic License) (License, error)
	ListLicenses(ctx context.Context, contractorID string) ([]License, error)
	DeleteLicense(ctx context.Context, id, contractorID string) error
}
