package invitation

import "time"

// Status represents the status of an invitation
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusExpired  Status = "expired"
)

// Invitation is a single-use employee registration link. Tokens are never
// revoked after generation except by acceptance, the expiry sweep, or an
// explicit admin delete.
type Invitation struct {
	ID         string
	Email      string
	Token      string
	InvitedBy  string
	Status     Status
	ExpiresAt  *time.Time
	AcceptedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// InvitationWithDetails carries an invitation with the inviter's display name
type InvitationWithDetails struct {
	Invitation
	InviterName string
}

// IsExpired checks if the invitation is past its expiry (query-time check)
func (i *Invitation) IsExpired() bool {
	return i.ExpiresAt != nil && time.Now().After(*i.ExpiresAt)
}

// CanBeAccepted checks if the invitation can still be consumed
func (i *Invitation) CanBeAccepted() bool {
	return i.Status == StatusPending && !i.IsExpired()
}
