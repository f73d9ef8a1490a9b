package profile

import "context"

// ProfileService handles profile reads and owner updates
type ProfileService interface {
	// GetMe returns the caller's profile.
	GetMe(ctx context.Context, userID string) (Response, error)

	// UpdateMe updates the caller's non-approval fields. For contractor
	// profiles, the first save lazily creates the contractor record if one
	// does not exist yet.
	UpdateMe(ctx context.Context, userID string, req UpdateRequest) (Response, error)
}

// ApprovalService gates portal access for contractor/employee accounts
type ApprovalService interface {
	// ListPendingAndAll returns contractor/employee profiles for review,
	// unapproved first, newest first.
	ListPendingAndAll(ctx context.Context, q ListQuery) ([]Response, error)

	// Approve marks a profile approved. The approver must itself be an
	// approved business profile.
	Approve(ctx context.Context, profileID, approverID string) (Response, error)

	// Reject records an explicit rejection.
	Reject(ctx context.Context, profileID, approverID string) (Response, error)

	// IsApproved answers the access-gate question for a profile. Decisions
	// are cached briefly and invalidated by Approve/Reject.
	IsApproved(ctx context.Context, profileID string) (bool, error)
}
