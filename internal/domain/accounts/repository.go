package accounts

import "context"

type Repository interface {
	// Create devuelve ErrEmailTaken si el email ya existe.
	Create(ctx context.Context, u User) error
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
}
