package profile

import "context"

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// Create creates a profile; IsApproved/ApprovalDate are written as given
	// so business profiles can be approved in the same statement.
	Create(ctx context.Context, p Profile) (Profile, error)

	GetByID(ctx context.Context, id string) (Profile, error)
	GetByUserID(ctx context.Context, userID string) (Profile, error)

	// List returns contractor/employee profiles for the review screen,
	// unapproved first, then newest first. The full set is loaded; the
	// review population is small by design.
	List(ctx context.Context, q ListQuery) ([]Profile, error)

	// Update writes the owner-editable fields only.
	Update(ctx context.Context, id string, req UpdateRequest) (Profile, error)

	// SetApproved records an approval decision.
	SetApproved(ctx context.Context, id, approverID string) (Profile, error)

	// SetRejected records an explicit rejection.
	SetRejected(ctx context.Context, id, approverID string) (Profile, error)
}
