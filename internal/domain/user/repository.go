package user

import "context"

// UserRepository defines the interface for user account data access
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByOAuth(ctx context.Context, provider, providerID string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
