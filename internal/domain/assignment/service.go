package assignment

import "context"

// AssignmentService orchestrates the contractor-site assignment workflow
type AssignmentService interface {
	// SiteContractors builds the merged per-site contractor view from the
	// explicit assignment table and contractor references embedded in job
	// rows, de-duplicated by contractor name. When both sources contain the
	// same pair the explicit assignment's identifier wins.
	SiteContractors(ctx context.Context, siteIDs []string) (map[string][]SiteContractorResponse, error)

	// Assign resolves the contractor name, re-checks the contractor still
	// exists, and creates the assignment unless the pair already has one
	// (duplicate: success with a no-op warning).
	Assign(ctx context.Context, siteID string, actorProfileID string, req AssignRequest) (AssignResult, error)

	// Update edits an existing assignment's access level.
	Update(ctx context.Context, assignmentID string, actorProfileID string, req UpdateRequest) (Response, error)

	// Delete removes an assignment by primary key. Jobs referencing the
	// contractor are left untouched.
	Delete(ctx context.Context, assignmentID string, actorProfileID string) error
}
