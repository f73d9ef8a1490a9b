package invitation

import (
	"context"
	"time"
)

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	Create(ctx context.Context, inv Invitation) (Invitation, error)
	GetByID(ctx context.Context, id string) (Invitation, error)

	// GetPendingByTokenAndEmail looks up a pending invitation by the exact
	// (token, email) pair, with the inviter's details joined in.
	GetPendingByTokenAndEmail(ctx context.Context, token, email string) (InvitationWithDetails, error)

	// ExistsPendingByEmail checks if the email already has a pending
	// non-expired invitation.
	ExistsPendingByEmail(ctx context.Context, email string) (bool, error)

	ListByInviter(ctx context.Context, inviterID string) ([]Invitation, error)

	// MarkAccepted flips a pending invitation to accepted. The update is
	// conditional on status = pending so a concurrent acceptance of the
	// same token is detected: the loser gets ErrInvitationAlreadyUsed.
	MarkAccepted(ctx context.Context, id string, at time.Time) error

	// ExpirePending marks pending invitations past their expiry as expired
	// and returns the number of rows affected.
	ExpirePending(ctx context.Context, now time.Time) (int64, error)

	// Delete hard-deletes an invitation (admin path only).
	Delete(ctx context.Context, id string) error
}
