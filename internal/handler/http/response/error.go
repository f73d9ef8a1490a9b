package response

import (
	"errors"
	"net/http"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/assignment"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/auth"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/invitation"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/notification"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/user"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, "Email already registered")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, profile.ErrNotAnApprover):
		Forbidden(w, "Only an approved business account can review accounts")
	case errors.Is(err, profile.ErrSelfApproval):
		Forbidden(w, "Cannot review your own account")
	case errors.Is(err, profile.ErrNotReviewable):
		BadRequest(w, "Business accounts do not require approval", nil)
	case errors.Is(err, profile.ErrProfileNotApproved):
		Forbidden(w, "Account is pending approval")
	case errors.Is(err, profile.ErrCannotEditApproval):
		Forbidden(w, "Approval fields can only be changed by an approver")
	case errors.Is(err, profile.ErrInvalidUserType):
		BadRequest(w, "Invalid user type", nil)

	// Contractor domain errors
	case errors.Is(err, contractor.ErrContractorNotFound):
		NotFound(w, "Contractor not found")
	case errors.Is(err, contractor.ErrServiceAreaNotFound):
		NotFound(w, "Service area not found")
	case errors.Is(err, contractor.ErrLicenseNotFound):
		NotFound(w, "License not found")
	case errors.Is(err, contractor.ErrNotContractorOwner):
		Forbidden(w, "Contractor record belongs to another account")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrRequirementNotFound):
		NotFound(w, "Site requirement not found")
	case errors.Is(err, site.ErrNotSiteOwner):
		Forbidden(w, "Site belongs to another business")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrContractorGone):
		Conflict(w, "Contractor no longer exists")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrInvalidTransition):
		Conflict(w, "Job status transition not allowed")
	case errors.Is(err, job.ErrJobSiteMismatch):
		BadRequest(w, "Job does not belong to this site", nil)
	case errors.Is(err, job.ErrContractorNotOnJob):
		Forbidden(w, "Job is not assigned to this contractor")

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Gone(w, "Invitation has expired")
	case errors.Is(err, invitation.ErrInvitationAlreadyUsed):
		Conflict(w, "Invitation has already been used")
	case errors.Is(err, invitation.ErrEmailMismatch):
		BadRequest(w, "Email does not match the invitation", nil)
	case errors.Is(err, invitation.ErrEmailAlreadyInvited):
		Conflict(w, "Email already has a pending invitation")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
