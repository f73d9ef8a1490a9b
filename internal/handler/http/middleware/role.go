package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/profile"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

func claimUserType(r *http.Request) (profile.UserType, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	t, ok := claims["user_type"].(string)
	if !ok {
		return "", false
	}
	return profile.UserType(t), true
}

// RequireBusiness requires a business portal account
func RequireBusiness(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userType, ok := claimUserType(r)
		if !ok || userType != profile.TypeBusiness {
			response.Forbidden(w, "Business account required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireContractor requires a contractor portal account
func RequireContractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userType, ok := claimUserType(r)
		if !ok || userType != profile.TypeContractor {
			response.Forbidden(w, "Contractor account required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
