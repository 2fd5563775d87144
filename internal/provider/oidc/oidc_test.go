package oidc

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves just enough OIDC discovery to build a terminator,
// plus an end-session endpoint that records what it was called with.
type fakeProvider struct {
	server        *httptest.Server
	rejectSignOut bool

	signOutCalls []url.Values
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()

	fp := &fakeProvider{}
	mux := http.NewServeMux()

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"issuer": %q,
			"authorization_endpoint": %q,
			"token_endpoint": %q,
			"jwks_uri": %q,
			"end_session_endpoint": %q
		}`, fp.server.URL, fp.server.URL+"/auth", fp.server.URL+"/token",
			fp.server.URL+"/keys", fp.server.URL+"/logout")
	})

	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		fp.signOutCalls = append(fp.signOutCalls, r.URL.Query())
		if fp.rejectSignOut {
			http.Error(w, "forbidden", http.StatusForbidden)
		}
	})

	fp.server = httptest.NewServer(mux)
	t.Cleanup(fp.server.Close)
	return fp
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(context.Background(), "", "http://issuer", "client")
	assert.Error(t, err)
}

func TestSignOutCallsEndSessionEndpoint(t *testing.T) {
	fp := newFakeProvider(t)

	term, err := New(context.Background(), "google", fp.server.URL, "identity-svc")
	require.NoError(t, err)
	assert.Equal(t, "google", term.Scheme())

	err = term.SignOut(context.Background(), "logout-42", "https://localhost/account/logout?logoutId=logout-42")
	require.NoError(t, err)

	require.Len(t, fp.signOutCalls, 1)
	call := fp.signOutCalls[0]
	assert.Equal(t, "identity-svc", call.Get("client_id"))
	assert.Equal(t, "logout-42", call.Get("state"))
	assert.Equal(t, "https://localhost/account/logout?logoutId=logout-42", call.Get("post_logout_redirect_uri"))
}

func TestSignOutReportsProviderRejection(t *testing.T) {
	fp := newFakeProvider(t)
	fp.rejectSignOut = true

	term, err := New(context.Background(), "google", fp.server.URL, "identity-svc")
	require.NoError(t, err)

	err = term.SignOut(context.Background(), "logout-42", "https://localhost/account/logout")
	assert.Error(t, err)
}
