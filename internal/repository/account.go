package repository

import (
	"context"

	"questshare/internal/model"
)

// AccountRepository defines data access for registered accounts.
type AccountRepository interface {
	// Create inserts a new account row. The ID is the external auth identity.
	Create(ctx context.Context, a *model.Account) error

	// FindByID returns an account by its identity.
	FindByID(ctx context.Context, id string) (*model.Account, error)

	// FindByEmail returns an account by its (unique) email.
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
}
