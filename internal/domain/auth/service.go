package auth

import (
	"context"

	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/oauth"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	// Register creates a user and its profile. Business profiles are
	// auto-approved; a registration carrying an invitation token is pinned
	// to the employee type and consumes the invitation atomically.
	Register(ctx context.Context, req RegisterRequest, sessionReq SessionTrackingRequest) (RegisterResponse, error)

	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle resolves a verified Google account to an existing user,
	// matching by provider id first and email second. Accounts are created
	// through Register; an unknown Google account is rejected.
	LoginWithGoogle(ctx context.Context, info oauth.GoogleInformation, sessionReq SessionTrackingRequest) (TokenResponse, error)
}
