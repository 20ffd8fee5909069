package repository

import (
	"context"

	user "github.com/MdialloC19/backend-IPDL/internal/pkg/user/domain"
)

// UserRepository defines persistence operations for user accounts. Every read
// excludes soft-deleted records.
type UserRepository interface {
	// Create persists a new account and returns its id. Duplicate phone or
	// email yields user.ErrDuplicate.
	Create(ctx context.Context, u user.User) (string, error)

	// GetByID/GetByEmail/GetByPhone return user.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByPhone(ctx context.Context, phone string) (user.User, error)

	List(ctx context.Context) ([]user.User, error)

	// SetConfirmed marks the account matching the phone as verified.
	SetConfirmed(ctx context.Context, phone string) error
}
