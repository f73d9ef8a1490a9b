package contractor

import "context"

// ContractorService defines the contractor directory business logic
type ContractorService interface {
	// List returns the contractor directory, filtered and active-only for
	// non-business callers.
	List(ctx context.Context, q ListQuery) ([]Response, error)

	Get(ctx context.Context, id string) (Response, error)

	// GetMine returns the caller's own contractor record.
	GetMine(ctx context.Context, profileID string) (Response, error)

	// UpdateMine edits the caller's directory entry.
	UpdateMine(ctx context.Context, profileID string, req UpdateRequest) (Response, error)

	// Service areas, owned by the calling contractor
	AddServiceArea(ctx context.Context, profileID string, req CreateServiceAreaRequest) (ServiceArea, error)
	ListServiceAreas(ctx context.Context, contractorID string) ([]ServiceArea, error)
	RemoveServiceArea(ctx context.Context, profileID, areaID string) error

	// Licenses, owned by the calling contractor
	AddLicense(ctx context.Context, profileID string, req CreateLicenseRequest) (License, error)
	ListLicenses(ctx context.Context, contractorID string) ([]License, error)
	RemoveLicense(ctx context.Context, profileID, licenseID string) error
}
