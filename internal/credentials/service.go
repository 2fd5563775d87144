package credentials

import (
	"context"
	"errors"

	"github.com/pedroQM1/MrService/internal/identity"
)

var (
	// ErrInvalidCredentials is returned for unknown users and wrong
	// passwords alike, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("credentials: invalid username or password")

	ErrAlreadyRegistered = errors.New("credentials: account already exists")
)

// Service validates and registers password credentials against the
// user store. It never mutates existing identities.
type Service struct {
	store identity.Store
}

func NewService(store identity.Store) *Service {
	return &Service{store: store}
}

// FindUser looks a user up by email. The plaintext password never
// reaches this method.
func (s *Service) FindUser(ctx context.Context, email string) (*identity.User, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, identity.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// VerifyPassword reports whether plaintext matches the user's stored
// hash. A nil user always fails, keeping the unknown-user and
// wrong-password branches indistinguishable upstream.
func (s *Service) VerifyPassword(user *identity.User, plaintext string) bool {
	if user == nil {
		return false
	}
	return VerifyHash(user.PasswordHash, plaintext)
}

// Register creates a new identity with the given email as both email
// and username, hashing the password before storage.
func (s *Service) Register(ctx context.Context, email, password string) (*identity.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := identity.NewUser(email, email, "", hash)
	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, identity.ErrAlreadyExists) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	return &u, nil
}
