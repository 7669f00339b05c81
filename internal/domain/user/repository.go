package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	// LinkGoogleAccount records the Google provider id on an existing user.
	LinkGoogleAccount(ctx context.Context, providerID string, email string) (User, error)
	// ListAdminIDs returns the user ids of all active admins.
	ListAdminIDs(ctx context.Context) ([]string, error)
}
