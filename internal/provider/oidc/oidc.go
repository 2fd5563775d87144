package oidc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/pedroQM1/MrService/internal/logger"
)

// Terminator performs RP-initiated logout against an OIDC provider
// using the end_session_endpoint from discovery. Some providers reject
// programmatic sign-out; callers must treat SignOut failure as
// non-fatal.
type Terminator struct {
	scheme        string
	oauthConfig   *oauth2.Config
	endSessionURL string
}

// New discovers the provider's endpoints and builds a terminator for
// the given scheme. issuer must be the provider's issuer URL.
func New(ctx context.Context, scheme, issuer, clientID string) (*Terminator, error) {
	if scheme == "" || issuer == "" || clientID == "" {
		return nil, errors.New("oidc terminator config missing required fields")
	}

	oidcProvider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to init oidc provider for %s: %w", scheme, err)
	}

	var claims struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := oidcProvider.Claims(&claims); err != nil {
		return nil, fmt.Errorf("oidc discovery claims for %s: %w", scheme, err)
	}
	if claims.EndSessionEndpoint == "" {
		return nil, fmt.Errorf("provider %s does not advertise an end_session_endpoint", scheme)
	}

	oauthCfg := &oauth2.Config{
		ClientID: clientID,
		Endpoint: oidcProvider.Endpoint(),
		Scopes: []string{
			gooidc.ScopeOpenID,
		},
	}

	return &Terminator{
		scheme:        scheme,
		oauthConfig:   oauthCfg,
		endSessionURL: claims.EndSessionEndpoint,
	}, nil
}

// Scheme returns the provider scheme this terminator handles.
func (t *Terminator) Scheme() string {
	return t.scheme
}

// SignOut calls the provider's end-session endpoint with the local
// callback as the post-logout redirect.
func (t *Terminator) SignOut(ctx context.Context, logoutID string, callbackURL string) error {
	endSession, err := url.Parse(t.endSessionURL)
	if err != nil {
		return err
	}

	q := endSession.Query()
	q.Set("client_id", t.oauthConfig.ClientID)
	q.Set("post_logout_redirect_uri", callbackURL)
	if logoutID != "" {
		q.Set("state", logoutID)
	}
	endSession.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endSession.String(), nil)
	if err != nil {
		return err
	}

	// oauth2.NewClient honors a per-context HTTP client override, same
	// mechanism go-oidc uses for discovery.
	resp, err := oauth2.NewClient(ctx, nil).Do(req)
	if err != nil {
		return fmt.Errorf("end-session call to %s failed: %w", t.scheme, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("provider %s rejected sign-out: %s", t.scheme, resp.Status)
	}

	logger.Info("external sign-out completed", map[string]any{
		"scheme":    t.scheme,
		"logout_id": logoutID,
	})
	return nil
}
