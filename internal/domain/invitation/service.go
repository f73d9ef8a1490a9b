package invitation

import "context"

// InvitationService defines the interface for invitation business logic
type InvitationService interface {
	// Create generates a token, writes a pending invitation, and returns
	// the shareable registration URL. Email delivery is attempted but its
	// failure never blocks creation.
	Create(ctx context.Context, inviterProfileID string, req CreateRequest) (CreateResponse, error)

	// Validate looks up a pending invitation by exact (token, email) match
	// and rejects expired ones.
	Validate(ctx context.Context, token, email string) (ValidateResponse, error)

	// Accept consumes a pending invitation. A second acceptance of the
	// same invitation fails with ErrInvitationAlreadyUsed.
	Accept(ctx context.Context, id string) error

	// ListMine lists invitations issued by the caller.
	ListMine(ctx context.Context, inviterProfileID string) ([]Invitation, error)

	// Delete hard-deletes an invitation (admin path).
	Delete(ctx context.Context, id string) error

	// SweepExpired marks pending invitations past expiry as expired.
	SweepExpired(ctx context.Context) (int64, error)
}
