package interaction

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// AuthorizeCallbackPath is the local path return URLs point back into
// after the engine finishes an authorization request.
const AuthorizeCallbackPath = "/connect/authorize/callback"

// ErrNoPostLogoutTarget signals a client configured without any
// post-logout redirect URI and no engine default to fall back to.
var ErrNoPostLogoutTarget = errors.New("interaction: no post-logout redirect target configured")

// InMemoryService is a protocol engine backed by a static client
// table, in the spirit of an in-memory IdentityServer configuration.
// Logout contexts are held per correlation id for the duration of the
// round trip.
type InMemoryService struct {
	clients              map[string]Client
	defaultPostLogoutURI string

	mu      sync.Mutex
	logouts map[string]LogoutContext
}

// NewInMemoryService registers the given clients by id. The default
// post-logout URI is used when a resolved client declares none.
func NewInMemoryService(defaultPostLogoutURI string, clients ...Client) *InMemoryService {
	m := make(map[string]Client, len(clients))
	for _, c := range clients {
		m[c.ID] = c
	}
	return &InMemoryService{
		clients:              m,
		defaultPostLogoutURI: defaultPostLogoutURI,
		logouts:              make(map[string]LogoutContext),
	}
}

func (s *InMemoryService) ResolveAuthorizationContext(_ context.Context, returnURL string) (*AuthorizationContext, error) {
	u, err := url.Parse(returnURL)
	if err != nil || !strings.HasPrefix(u.Path, AuthorizeCallbackPath) {
		return nil, nil
	}

	q := u.Query()
	clientID := q.Get("client_id")
	if _, ok := s.clients[clientID]; !ok {
		return nil, nil
	}

	actx := &AuthorizationContext{
		ClientID:  clientID,
		LoginHint: q.Get("login_hint"),
		ReturnURL: returnURL,
	}

	// acr_values may carry an idp:<scheme> directive selecting an
	// external provider for this request.
	for _, v := range strings.Fields(q.Get("acr_values")) {
		if scheme, ok := strings.CutPrefix(v, "idp:"); ok {
			actx.IdP = scheme
		}
	}

	return actx, nil
}

func (s *InMemoryService) ResolveLogoutContext(_ context.Context, logoutID string) (*LogoutContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lctx, ok := s.logouts[logoutID]; ok {
		return &lctx, nil
	}

	if s.defaultPostLogoutURI == "" {
		return nil, ErrNoPostLogoutTarget
	}

	return &LogoutContext{
		LogoutID:              logoutID,
		ShowSignoutPrompt:     true,
		PostLogoutRedirectURI: s.defaultPostLogoutURI,
	}, nil
}

func (s *InMemoryService) CreateLogoutContext(_ context.Context) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	s.logouts[id] = LogoutContext{
		LogoutID:              id,
		ShowSignoutPrompt:     false,
		PostLogoutRedirectURI: s.defaultPostLogoutURI,
	}
	s.mu.Unlock()

	return id, nil
}

// RegisterLogoutContext records a logout round trip initiated by a
// client's end-session request.
func (s *InMemoryService) RegisterLogoutContext(lctx LogoutContext) {
	s.mu.Lock()
	s.logouts[lctx.LogoutID] = lctx
	s.mu.Unlock()
}

// IsKnownReturnTarget accepts local authorization callbacks for
// registered clients and absolute URLs that exactly match a registered
// redirect URI. Everything else is unknown.
func (s *InMemoryService) IsKnownReturnTarget(returnURL string) bool {
	if returnURL == "" {
		return false
	}

	u, err := url.Parse(returnURL)
	if err != nil {
		return false
	}

	// exact match against a registered redirect URI
	for _, c := range s.clients {
		for _, reg := range c.RedirectURIs {
			if returnURL == reg {
				return true
			}
		}
	}

	// local authorization callback for a registered client
	if u.Scheme == "" && u.Host == "" && strings.HasPrefix(u.Path, AuthorizeCallbackPath) {
		_, ok := s.clients[u.Query().Get("client_id")]
		return ok
	}

	return false
}

func (s *InMemoryService) FindEnabledClient(clientID string) (*Client, bool) {
	c, ok := s.clients[clientID]
	if !ok {
		return nil, false
	}
	return &c, true
}
