package user

import "time"

// User is an authentication account. Identity and role live on the linked
// Profile; the user row only carries credentials.
type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	ProfileID *string
}
