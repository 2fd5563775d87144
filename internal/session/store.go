package session

import (
	"context"
	"time"
)

// LocalIdentityProvider is the IdentityProvider value for sessions
// established with password credentials rather than a federated scheme.
const LocalIdentityProvider = "local"

// Session represents an authenticated user session.
// It intentionally stores only identity pointers, not auth state.
type Session struct {
	SessionID        string    // unique session identifier
	UserID           string    // references users.id
	Email            string    // remembered for re-rendering flows
	IdentityProvider string    // scheme that authenticated this session
	Persistent       bool      // remember-me sessions survive the browser
	CreatedAt        time.Time
	ExpiresAt        time.Time // absolute expiry time
}

// Federated reports whether the session was established through an
// external identity provider.
func (s Session) Federated() bool {
	return s.IdentityProvider != "" && s.IdentityProvider != LocalIdentityProvider
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
