package middleware

import (
	"net/http"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

// RequireApproved gates portal routes on the server-side approval decision.
// The gate asks the approval service rather than trusting the token's
// approved claim, so a rejection takes effect without waiting for the access
// token to rotate.
func RequireApproved(approvals profile.ApprovalService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profileID := ProfileID(r)
			if profileID == "" {
				response.HandleError(w, profile.ErrProfileNotFound)
				return
			}

			approved, err := approvals.IsApproved(r.Context(), profileID)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if !approved {
				response.HandleError(w, profile.ErrProfileNotApproved)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
