package job

import "time"

// Status of a job
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Priority of a job
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidStatus reports whether s is a known job status
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPriority reports whether s is a known priority
func ValidPriority(s string) bool {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Job ties a site, a contractor, and a service type together
type Job struct {
	ID            string
	SiteID        string
	ContractorID  *string
	ServiceType   string
	Title         string
	Description   *string
	Status        Status
	Priority      Priority
	AttachmentURL *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanTransitionTo reports whether the status change is allowed.
// Completed and cancelled are terminal.
func (j *Job) CanTransitionTo(next Status) bool {
	switch j.Status {
	case StatusPending:
		return next == StatusInProgress || next == StatusCompleted || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// ContractorRef is a contractor reference embedded in a job row, used as the
// second source of the site-contractor merge.
type ContractorRef struct {
	SiteID         string
	ContractorID   string
	ContractorName string
}
