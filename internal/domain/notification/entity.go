package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAccountApproved    NotificationType = "account_approved"
	TypeAccountRejected    NotificationType = "account_rejected"
	TypeAccountPending     NotificationType = "account_pending_review"
	TypeContractorAssigned NotificationType = "contractor_assigned"
	TypeContractorRemoved  NotificationType = "contractor_removed"
	TypeJobStatusChanged   NotificationType = "job_status_changed"
	TypeInvitationAccepted NotificationType = "invitation_accepted"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
