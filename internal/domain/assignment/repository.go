package assignment

import "context"

// AssignmentRepository defines the interface for site-contractor assignment
// data access
type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)

	// GetBySiteAndContractor returns the existing assignment for the pair,
	// or ErrAssignmentNotFound. Used for the write-time duplicate check.
	GetBySiteAndContractor(ctx context.Context, siteID, contractorID string) (Assignment, error)

	// ListBySiteIDs returns explicit assignments joined with contractor
	// names for the merged view.
	ListBySiteIDs(ctx context.Context, siteIDs []string) ([]AssignmentWithName, error)

	UpdateAccessLevel(ctx context.Context, id string, level AccessLevel) (Assignment, error)
	Delete(ctx context.Context, id string) error
}

// AssignmentWithName carries an assignment with its contractor's directory
// name for merging
type AssignmentWithName struct {
	Assignment
	ContractorName string
}
