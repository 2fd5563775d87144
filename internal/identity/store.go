package identity

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("identity: user not found")
	ErrAlreadyExists = errors.New("identity: user already exists")
)

// Store is the narrow surface the rest of the service uses to reach the
// user store. Implementations must be safe for concurrent callers.
type Store interface {
	// FindByEmail looks a user up by normalized email, case-insensitively.
	// Returns ErrNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts a new user. Returns ErrAlreadyExists when the
	// normalized email or username is already taken.
	Create(ctx context.Context, u User) error

	// Count reports how many users the store holds.
	Count(ctx context.Context) (int, error)
}
