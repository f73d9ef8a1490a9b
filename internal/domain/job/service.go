package job

import "context"

// JobService defines the job tracking business logic
type JobService interface {
	// Create creates a job on one of the caller's sites. A contractor name,
	// when given, is resolved against the directory and embedded as a
	// contractor reference.
	Create(ctx context.Context, businessID string, req CreateRequest) (Response, error)

	// Get reads a job. The actor must be the site's business or the
	// contractor assigned to the job.
	Get(ctx context.Context, actorProfileID, id string) (Response, error)
	ListBySite(ctx context.Context, businessID, siteID string) ([]Response, error)

	// ListMine lists jobs assigned to the calling contractor.
	ListMine(ctx context.Context, contractorProfileID string) ([]Response, error)

	Update(ctx context.Context, businessID, id string, req UpdateRequest) (Response, error)

	// Transition moves a job along the status state machine and notifies the
	// other party. Terminal states reject further transitions.
	Transition(ctx context.Context, actorProfileID, id string, req TransitionRequest) (Response, error)

	Delete(ctx context.Context, businessID, id string) error
}
