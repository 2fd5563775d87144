package session

import (
	"context"
	"net/http"
	"time"

	"github.com/pedroQM1/MrService/internal/identity"
)

// Properties are the attributes of one issued session.
type Properties struct {
	ExpiresAt        time.Time
	Persistent       bool
	RedirectURI      string
	IdentityProvider string
}

// Issuer creates and destroys the local authenticated session: one
// server-side record keyed by a random cookie id. Issuing replaces any
// prior session; clearing is an idempotent no-op without one.
type Issuer struct {
	store Store
	opts  CookieOptions
}

func NewIssuer(store Store) *Issuer {
	return &Issuer{
		store: store,
		opts: CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// IssueSession creates a fresh session record for the user and sets the
// session cookie. The new cookie supersedes any previous session in a
// single write; the caller never observes a partially applied session.
func (i *Issuer) IssueSession(
	ctx context.Context,
	w http.ResponseWriter,
	user *identity.User,
	props Properties,
) (*Session, error) {

	sessionID, err := GenerateID()
	if err != nil {
		return nil, err
	}

	idp := props.IdentityProvider
	if idp == "" {
		idp = LocalIdentityProvider
	}

	sess := Session{
		SessionID:        sessionID,
		UserID:           user.ID,
		Email:            user.Email,
		IdentityProvider: idp,
		Persistent:       props.Persistent,
		CreatedAt:        time.Now(),
		ExpiresAt:        props.ExpiresAt,
	}

	if err := i.store.Create(ctx, sess); err != nil {
		return nil, err
	}

	SetCookie(w, sessionID, props.ExpiresAt, i.opts)
	return &sess, nil
}

// ClearLocalSession deletes the caller's session record and expires the
// cookie. Safe to call when no session exists.
func (i *Issuer) ClearLocalSession(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		// best-effort: an already-gone record still counts as cleared
		_ = i.store.Delete(ctx, cookie.Value)
	}

	ClearCookie(w, i.opts)
}

// ClearSchemeSession clears the named authentication scheme. Only the
// local scheme carries state in this service; external schemes are
// handled by their terminators, so anything else is a no-op.
func (i *Issuer) ClearSchemeSession(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	scheme string,
) {
	if scheme != LocalIdentityProvider {
		return
	}
	i.ClearLocalSession(ctx, w, r)
}
