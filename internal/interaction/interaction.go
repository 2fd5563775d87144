package interaction

import "context"

// AuthorizationContext describes the authorization request a login
// flow was entered from. Derived per request, never persisted.
type AuthorizationContext struct {
	ClientID  string
	IdP       string // non-empty when the request demands a specific external provider
	LoginHint string
	ReturnURL string
}

// LogoutContext describes one logout round-trip, addressed by a
// correlation id minted by the protocol engine.
type LogoutContext struct {
	LogoutID              string
	ShowSignoutPrompt     bool
	PostLogoutRedirectURI string
}

// Client is the protocol engine's record of a registered relying party.
type Client struct {
	ID                     string
	Name                   string
	EnableLocalLogin       bool
	RedirectURIs           []string
	PostLogoutRedirectURIs []string
}

// Service is the narrow surface of the external authorization engine
// the login and logout flows depend on.
type Service interface {
	// ResolveAuthorizationContext parses a return URL back into the
	// authorization request it encodes. Returns nil (no error) when the
	// URL is not an authorization request.
	ResolveAuthorizationContext(ctx context.Context, returnURL string) (*AuthorizationContext, error)

	// ResolveLogoutContext returns the logout round-trip state for the
	// given correlation id. An empty or unknown id yields a context with
	// engine defaults rather than an error.
	ResolveLogoutContext(ctx context.Context, logoutID string) (*LogoutContext, error)

	// CreateLogoutContext mints a new logout correlation id for flows
	// that enter termination without one.
	CreateLogoutContext(ctx context.Context) (string, error)

	// IsKnownReturnTarget reports whether the engine recognizes the URL
	// as a registered redirect target.
	IsKnownReturnTarget(returnURL string) bool

	// FindEnabledClient looks a registered client up by id.
	FindEnabledClient(clientID string) (*Client, bool)
}
